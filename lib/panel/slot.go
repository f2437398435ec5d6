// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

// slot tracks one refresh target: its current value plus the request
// bookkeeping that makes overlapping responses safe. Every request
// issued for the target takes a fresh sequence number; a response is
// applied only when its sequence still matches the latest issued one,
// so a response overtaken by a newer request is discarded and the
// newest snapshot always wins.
//
// The zero value is an empty slot with nothing loaded and nothing in
// flight.
type slot[T any] struct {
	sequence uint64
	inFlight bool
	value    T
	loaded   bool
}

// begin registers a new request for this target and returns its
// sequence number. Any response carrying an older sequence becomes
// stale the moment begin returns.
func (s *slot[T]) begin() uint64 {
	s.sequence++
	s.inFlight = true
	return s.sequence
}

// settle records the arrival of the response with the given sequence.
// It reports whether the response is current; stale responses leave the
// slot untouched, including its in-flight flag, which still belongs to
// the newer request.
func (s *slot[T]) settle(sequence uint64) bool {
	if sequence != s.sequence {
		return false
	}
	s.inFlight = false
	return true
}

// apply settles the response and, when current, replaces the slot's
// value with the new snapshot. Partial merges never happen; the
// snapshot replaces the previous value wholesale.
func (s *slot[T]) apply(sequence uint64, value T) bool {
	if !s.settle(sequence) {
		return false
	}
	s.value = value
	s.loaded = true
	return true
}
