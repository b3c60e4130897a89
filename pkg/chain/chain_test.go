package chain

import (
	"errors"
	"testing"
)

func TestParseAddress_PadsShortInput(t *testing.T) {
	a, err := ParseAddress("0x00000000000000000000000000000000000000ff")
	if err != nil {
		t.Fatalf("ParseAddress() failed: %v", err)
	}
	if a[31] != 0xff {
		t.Errorf("Expected last byte 0xff, got %#x", a[31])
	}
	for i := 0; i < 31; i++ {
		if a[i] != 0 {
			t.Fatalf("Expected zero padding at byte %d, got %#x", i, a[i])
		}
	}
}

func TestParseAddress_Invalid(t *testing.T) {
	cases := []string{"", "0x", "ff", "0xzz", "0x0102030405060708091011121314151617181920212223242526272829303132ff"}
	for _, c := range cases {
		if _, err := ParseAddress(c); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("ParseAddress(%q): expected ErrInvalidAddress, got %v", c, err)
		}
	}
}

func TestAddress_TextRoundTrip(t *testing.T) {
	want := DeriveAddress(ZeroAddress, []byte("roundtrip"))
	text, err := want.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	var got Address
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestDeriveAddress_Deterministic(t *testing.T) {
	program := MustParseAddress("0x01")
	a := DeriveAddress(program, []byte("sent"), Uint64Seed(7))
	b := DeriveAddress(program, []byte("sent"), Uint64Seed(7))
	if a != b {
		t.Fatalf("Expected identical derivations, got %s and %s", a, b)
	}
	if a.IsZero() {
		t.Fatal("Expected non-zero derived address")
	}
}

func TestDeriveAddress_SeedBoundaries(t *testing.T) {
	program := MustParseAddress("0x01")
	a := DeriveAddress(program, []byte("ab"), []byte("c"))
	b := DeriveAddress(program, []byte("a"), []byte("bc"))
	if a == b {
		t.Fatal("Expected seed boundaries to change the derived address")
	}
	other := DeriveAddress(MustParseAddress("0x02"), []byte("ab"), []byte("c"))
	if a == other {
		t.Fatal("Expected program id to change the derived address")
	}
}

func TestParseHash(t *testing.T) {
	h := Keccak256([]byte("payload"))
	parsed, err := ParseHash(h.Hex())
	if err != nil {
		t.Fatalf("ParseHash() failed: %v", err)
	}
	if parsed != h {
		t.Errorf("Expected %s, got %s", h, parsed)
	}
	if _, err := ParseHash("0x0102"); err == nil {
		t.Error("Expected error for short hash")
	}
}
