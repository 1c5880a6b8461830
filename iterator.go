// Copyright (c) 2024 The patriciaradix Authors
// SPDX-License-Identifier: MIT

package radix

import "iter"

// Iterator yields the Trie's stored prefixes in ascending bit-order,
// depth-first, left-before-right, skipping glue nodes. An Iterator is
// invalidated by any structural mutation (Add/Delete) of the Trie that
// created it; Next reports ErrConcurrentModification once that happens.
type Iterator struct {
	t       *Trie
	version uint64
	stack   []*trieNode
}

// Iter returns a fresh Iterator over t's current contents.
func (t *Trie) Iter() *Iterator {
	it := &Iterator{t: t, version: t.version}
	if t.root != nil {
		it.stack = []*trieNode{t.root}
	}
	return it
}

// Next returns the next handle in traversal order, (nil, nil) once
// exhausted, or ErrConcurrentModification if t was structurally
// mutated since the Iterator was created.
func (it *Iterator) Next() (*NodeHandle, error) {
	if it.version != it.t.version {
		return nil, ErrConcurrentModification
	}

	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if n.right != nil {
			it.stack = append(it.stack, n.right)
		}
		if n.left != nil {
			it.stack = append(it.stack, n.left)
		}

		if n.role == roleReal {
			return n.payload.handle, nil
		}
	}
	return nil, nil
}

// All returns a range-over-func iterator suitable for "for h, err :=
// range t.All()"-style loops. Iteration stops as soon as a non-nil
// error (ErrConcurrentModification) is yielded.
func (t *Trie) All() iter.Seq2[*NodeHandle, error] {
	return func(yield func(*NodeHandle, error) bool) {
		it := t.Iter()
		for {
			h, err := it.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if h == nil {
				return
			}
			if !yield(h, nil) {
				return
			}
		}
	}
}
