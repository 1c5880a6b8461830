// Copyright (c) 2024 The patriciaradix Authors
// SPDX-License-Identifier: MIT

package radix

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/patriciaradix/radix/internal/bitaddr"
)

// Prefix is an immutable (family, network address, prefixlen) value,
// canonical in the sense that every bit at index >= prefixlen is zero.
type Prefix struct {
	family    Family
	addr      *bitaddr.Address
	prefixlen int
}

// ParsePrefix parses a textual prefix: "A.B.C.D", "A.B.C.D/len" for
// IPv4, or standard colon-hex ("addr" or "addr/len") for IPv6. When no
// "/len" is given, prefixlen defaults to the family's maximum (32 or
// 128). The returned Prefix is canonicalized: bits at or above
// prefixlen are masked to zero.
func ParsePrefix(text string) (Prefix, error) {
	if network, lenPart, ok := strings.Cut(text, "/"); ok {
		n, err := strconv.Atoi(lenPart)
		if err != nil {
			return Prefix{}, fmt.Errorf("%w: bad prefix length in %q", ErrInvalidArgument, text)
		}
		return newPrefix(network, n, true)
	}
	return newPrefix(text, 0, false)
}

// newPrefix parses the network part and applies masklen if hasLen,
// otherwise defaults prefixlen to the family maximum.
func newPrefix(network string, masklen int, hasLen bool) (Prefix, error) {
	addr, err := netip.ParseAddr(network)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	family := IPv4
	if addr.Is6() && !addr.Is4In6() {
		family = IPv6
	}
	addr = addr.Unmap()

	prefixlen := family.maxPrefixLen()
	if hasLen {
		prefixlen = masklen
	}
	if prefixlen < 0 || prefixlen > family.maxPrefixLen() {
		return Prefix{}, fmt.Errorf("%w: prefixlen %d out of range for %s", ErrInvalidArgument, prefixlen, family)
	}

	var raw []byte
	if family == IPv4 {
		b := addr.As4()
		raw = b[:]
	} else {
		b := addr.As16()
		raw = b[:]
	}

	return Prefix{
		family:    family,
		addr:      bitaddr.FromBytes(raw).Masked(prefixlen),
		prefixlen: prefixlen,
	}, nil
}

// Family reports the prefix's address family.
func (p Prefix) Family() Family { return p.family }

// PrefixLen reports the prefix length.
func (p Prefix) PrefixLen() int { return p.prefixlen }

// bit returns bit i (0 == most significant) of the canonical address.
func (p Prefix) bit(i int) int { return p.addr.Bit(i) }

// Equal reports whether p and other denote the same (family, masked
// address, prefixlen) tuple.
func (p Prefix) Equal(other Prefix) bool {
	return p.family == other.family && p.prefixlen == other.prefixlen && p.addr.Equal(other.addr)
}

// isPrefixOf reports whether p's stored bits match other's bits over
// p's own prefixlen, i.e. p covers other (p.prefixlen <= other's bits
// are only meaningfully compared up to p.prefixlen).
func (p Prefix) isPrefixOf(other Prefix) bool {
	if p.family != other.family || p.prefixlen > other.prefixlen {
		return false
	}
	_, differs := bitaddr.FirstDifferingBit(p.addr, other.addr, p.prefixlen)
	return !differs
}

// prefixBitDiff returns the first bit index in [0, limit) at which a
// and b's addresses differ, or (limit, false) if they agree throughout.
func prefixBitDiff(a, b Prefix, limit int) (int, bool) {
	return bitaddr.FirstDifferingBit(a.addr, b.addr, limit)
}

func (p Prefix) netipAddr() netip.Addr {
	raw := p.addr.Bytes()
	if p.family == IPv4 {
		return netip.AddrFrom4([4]byte(raw))
	}
	return netip.AddrFrom16([16]byte(raw))
}

// Network returns the canonical textual network address, without "/prefixlen".
func (p Prefix) Network() string {
	return p.netipAddr().String()
}

// String returns the canonical "network/prefixlen" textual form.
func (p Prefix) String() string {
	return fmt.Sprintf("%s/%d", p.Network(), p.prefixlen)
}
