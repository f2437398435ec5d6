// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import "testing"

func TestDescribeKnownService(t *testing.T) {
	t.Parallel()

	info := describeService("browser_service")
	if info.displayName != "Browser" {
		t.Errorf("displayName = %q, want Browser", info.displayName)
	}
	if info.description == "" {
		t.Error("catalog entries should carry a description")
	}
}

func TestDescribeUnknownServiceFallsBackToKey(t *testing.T) {
	t.Parallel()

	info := describeService("quantum_service")
	if info.displayName != "quantum_service" {
		t.Errorf("displayName = %q, want the raw key", info.displayName)
	}
}

func TestServiceCatalogKeysAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, info := range serviceCatalog {
		if seen[info.key] {
			t.Errorf("duplicate catalog key %q", info.key)
		}
		seen[info.key] = true
	}
}
