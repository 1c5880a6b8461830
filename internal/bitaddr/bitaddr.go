// Copyright (c) 2024 The patriciaradix Authors
// SPDX-License-Identifier: MIT

// Package bitaddr provides a fixed-width, MSB-first bit vector for
// canonicalized IPv4/IPv6 network addresses, and the bit-level
// primitives a Patricia trie is built on: indexed bit access, prefix
// masking, and first-differing-bit comparison.
package bitaddr

import "github.com/bits-and-blooms/bitset"

// Address is an immutable, fixed-width, MSB-first bit vector: bit 0 is
// the most significant bit of the first address byte, matching the
// bit-index convention of the trie itself.
type Address struct {
	bits  *bitset.BitSet
	width int
}

// FromBytes builds an Address from network-order bytes (4 bytes for
// IPv4, 16 for IPv6).
func FromBytes(b []byte) *Address {
	width := len(b) * 8
	bs := bitset.New(uint(width))
	for byteIdx, by := range b {
		for bitIdx := 0; bitIdx < 8; bitIdx++ {
			if by&(0x80>>uint(bitIdx)) != 0 {
				bs.Set(uint(byteIdx*8 + bitIdx))
			}
		}
	}
	return &Address{bits: bs, width: width}
}

// Width reports the address width in bits (32 or 128).
func (a *Address) Width() int {
	return a.width
}

// Bit returns the bit at index i (0 == most significant), 0 or 1.
func (a *Address) Bit(i int) int {
	if a.bits.Test(uint(i)) {
		return 1
	}
	return 0
}

// Masked returns a new Address with every bit at index >= prefixlen
// cleared, i.e. the canonical network address for that prefix length.
func (a *Address) Masked(prefixlen int) *Address {
	out := a.bits.Clone()
	for i := prefixlen; i < a.width; i++ {
		out.Clear(uint(i))
	}
	return &Address{bits: out, width: a.width}
}

// Equal reports whether a and b hold the same bits over their (equal) width.
func (a *Address) Equal(b *Address) bool {
	return a.width == b.width && a.bits.Equal(b.bits)
}

// Bytes renders the address back into network-order bytes.
func (a *Address) Bytes() []byte {
	n := a.width / 8
	out := make([]byte, n)
	for byteIdx := 0; byteIdx < n; byteIdx++ {
		var by byte
		for bitIdx := 0; bitIdx < 8; bitIdx++ {
			if a.bits.Test(uint(byteIdx*8 + bitIdx)) {
				by |= 0x80 >> uint(bitIdx)
			}
		}
		out[byteIdx] = by
	}
	return out
}

// FirstDifferingBit returns the lowest index in [0, limit) at which a
// and b hold different bits, and true. If a and b agree over the whole
// range, it returns (limit, false).
func FirstDifferingBit(a, b *Address, limit int) (int, bool) {
	for i := 0; i < limit; i++ {
		if a.Bit(i) != b.Bit(i) {
			return i, true
		}
	}
	return limit, false
}
