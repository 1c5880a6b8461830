// Copyright (c) 2024 The patriciaradix Authors
// SPDX-License-Identifier: MIT

package radix

import "fmt"

// NodeHandle is a caller-visible reference to a real trie node. A
// handle is created once per stored prefix and the same *NodeHandle is
// returned from every subsequent Add/SearchExact/SearchBest call that
// finds it, so pointer equality between handles reflects identity of
// the underlying stored prefix (mirroring the "is" identity check on
// the original library's node objects).
//
// A handle remains valid and keeps reporting its attributes after the
// node has been deleted from its Trie, and after the Trie itself has
// gone out of scope: see the package doc comment.
type NodeHandle struct {
	payload *nodePayload
}

// Prefix returns the canonical "network/prefixlen" textual form.
func (h *NodeHandle) Prefix() string { return h.payload.prefix.String() }

// Network returns the canonical network address, without "/prefixlen".
func (h *NodeHandle) Network() string { return h.payload.prefix.Network() }

// PrefixLen returns the stored prefix length.
func (h *NodeHandle) PrefixLen() int { return h.payload.prefix.prefixlen }

// Family returns the stored prefix's address family.
func (h *NodeHandle) Family() Family { return h.payload.prefix.family }

// Data returns the handle's mutable user-data mapping.
func (h *NodeHandle) Data() *NodeData { return &NodeData{payload: h.payload} }

// Attr provides dynamic access to a handle's documented attributes by
// name: "prefix", "network", "prefixlen", "family", "data". Any other
// name fails with ErrAttributeNotFound.
func (h *NodeHandle) Attr(name string) (any, error) {
	switch name {
	case "prefix":
		return h.Prefix(), nil
	case "network":
		return h.Network(), nil
	case "prefixlen":
		return h.PrefixLen(), nil
	case "family":
		return h.Family(), nil
	case "data":
		return h.Data(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, name)
	}
}

// NodeData is a string-keyed, arbitrary-valued mapping attached to a
// NodeHandle. Its lifetime is tied to the handle, not to the Trie.
type NodeData struct {
	payload *nodePayload
}

// Get returns the value stored under key, or ErrKeyNotFound if absent.
func (d *NodeData) Get(key string) (any, error) {
	v, ok := d.payload.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// Set stores val under key, creating or overwriting it.
func (d *NodeData) Set(key string, val any) {
	d.payload.data[key] = val
}

// Delete removes key, or returns ErrKeyNotFound if it was absent.
func (d *NodeData) Delete(key string) error {
	if _, ok := d.payload.data[key]; !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	delete(d.payload.data, key)
	return nil
}

// Len reports the number of stored keys.
func (d *NodeData) Len() int { return len(d.payload.data) }

// Keys returns the stored keys in unspecified order.
func (d *NodeData) Keys() []string {
	keys := make([]string, 0, len(d.payload.data))
	for k := range d.payload.data {
		keys = append(keys, k)
	}
	return keys
}
