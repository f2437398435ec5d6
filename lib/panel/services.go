// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

// serviceInfo is the display metadata for one known backend service.
type serviceInfo struct {
	key         string
	displayName string
	description string
}

// serviceCatalog lists the backend services the panel knows how to
// describe, in display order. The health endpoint's key set is
// server-determined; keys outside the catalog still render, with the
// raw key standing in for the display name.
var serviceCatalog = []serviceInfo{
	{
		key:         "browser_service",
		displayName: "Browser",
		description: "Web browsing and scraping",
	},
	{
		key:         "document_service",
		displayName: "Documents",
		description: "Document generation and parsing",
	},
	{
		key:         "communication_service",
		displayName: "Communication",
		description: "Email and messaging",
	},
	{
		key:         "media_service",
		displayName: "Media",
		description: "Image and video processing",
	},
	{
		key:         "bot_builder_service",
		displayName: "Bot Builder",
		description: "Conversational bot construction",
	},
}

// describeService returns the display metadata for a service key,
// falling back to the raw key for services the catalog doesn't know.
func describeService(key string) serviceInfo {
	for _, info := range serviceCatalog {
		if info.key == key {
			return info
		}
	}
	return serviceInfo{key: key, displayName: key}
}
