// Copyright (c) 2024 The patriciaradix Authors
// SPDX-License-Identifier: MIT

// Package radix provides a longest-prefix-match Patricia trie for IPv4
// and IPv6 prefixes.
//
// A Trie answers the classic routing/ACL question: given an address or
// prefix, find the stored prefix that best covers it. Internally it is
// a bit-indexed binary trie in the classic Patricia style, with glue
// nodes splitting subtrees only where two stored prefixes actually
// diverge, rather than a byte- or stride-indexed multibit trie.
//
// A Trie commits to one address family (IPv4 or IPv6) on its first
// insertion; mixing families in a single Trie fails with
// ErrInvalidArgument.
//
// The zero value of Trie is ready to use.
//
// Every stored prefix is represented by a *NodeHandle returned from
// Add, SearchExact or SearchBest. A handle stays valid and keeps
// reporting its prefix, network, prefixlen, family and user data after
// the node has been deleted from the Trie, and after the Trie itself
// has been dropped: the handle holds the node's payload directly, not
// a reference into the trie's structural tree, so Go's garbage
// collector keeps the payload alive for as long as any handle does.
//
// Trie is not safe for concurrent use by multiple goroutines without
// external synchronization. Independent Tries share no state and may
// be used freely from different goroutines.
package radix
