// Copyright (c) 2024 The patriciaradix Authors
// SPDX-License-Identifier: MIT

package radix

import "errors"

// Sentinel errors for the five observable failure kinds. Callers
// should compare with errors.Is, since call sites wrap these with
// additional detail via fmt.Errorf("%w: ...").
var (
	// ErrInvalidArgument is returned for a malformed textual prefix, a
	// prefixlen outside the family's valid range, or a prefix whose
	// family doesn't match a Trie already committed to the other family.
	ErrInvalidArgument = errors.New("radix: invalid argument")

	// ErrNotFound is returned by Delete when no real node matches the
	// given prefix exactly.
	ErrNotFound = errors.New("radix: prefix not found")

	// ErrKeyNotFound is returned when reading a missing user-data key
	// from a NodeHandle's Data.
	ErrKeyNotFound = errors.New("radix: key not found")

	// ErrAttributeNotFound is returned by NodeHandle.Attr for any name
	// other than "prefix", "network", "prefixlen", "family" or "data".
	ErrAttributeNotFound = errors.New("radix: attribute not found")

	// ErrConcurrentModification is returned by Iterator.Next when the
	// Trie was structurally mutated since the iterator was created.
	ErrConcurrentModification = errors.New("radix: concurrent modification during iteration")
)
