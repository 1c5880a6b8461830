package bitaddr

import "testing"

func TestFromBytesAndBit(t *testing.T) {
	a := FromBytes([]byte{0b10000000, 0x00, 0x00, 0x00})
	if a.Bit(0) != 1 {
		t.Fatalf("bit 0 = %d, want 1", a.Bit(0))
	}
	if a.Bit(1) != 0 {
		t.Fatalf("bit 1 = %d, want 0", a.Bit(1))
	}
}

func TestMaskedClearsTrailingBits(t *testing.T) {
	a := FromBytes([]byte{0xff, 0xff, 0xff, 0xff})
	masked := a.Masked(8)

	for i := 0; i < 8; i++ {
		if masked.Bit(i) != 1 {
			t.Fatalf("bit %d = %d, want 1", i, masked.Bit(i))
		}
	}
	for i := 8; i < 32; i++ {
		if masked.Bit(i) != 0 {
			t.Fatalf("bit %d = %d, want 0", i, masked.Bit(i))
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	raw := []byte{192, 168, 1, 1}
	a := FromBytes(raw)
	got := a.Bytes()
	for i := range raw {
		if got[i] != raw[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], raw[i])
		}
	}
}

func TestFirstDifferingBit(t *testing.T) {
	a := FromBytes([]byte{0b11110000})
	b := FromBytes([]byte{0b11100000})

	idx, found := FirstDifferingBit(a, b, 8)
	if !found || idx != 3 {
		t.Fatalf("FirstDifferingBit = (%d, %v), want (3, true)", idx, found)
	}

	idx, found = FirstDifferingBit(a, b, 3)
	if found || idx != 3 {
		t.Fatalf("FirstDifferingBit = (%d, %v), want (3, false)", idx, found)
	}
}
