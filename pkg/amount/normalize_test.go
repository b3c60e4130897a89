package amount

import (
	"errors"
	"math"
	"testing"
)

func TestNormalize_NineDecimals(t *testing.T) {
	wire, err := Normalize(1_500_000_000, 9)
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	if wire.String() != "150000000" {
		t.Fatalf("Expected 150000000, got %s", wire)
	}

	native, err := Denormalize(wire, 9)
	if err != nil {
		t.Fatalf("Denormalize() failed: %v", err)
	}
	if native != 1_500_000_000 {
		t.Errorf("Expected 1500000000, got %d", native)
	}
}

func TestNormalize_NineDecimalsDropsDust(t *testing.T) {
	wire, err := Normalize(1_500_000_005, 9)
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	if wire.String() != "150000000" {
		t.Fatalf("Expected 150000000, got %s", wire)
	}
	if d := Dust(1_500_000_005, 9); d != 5 {
		t.Errorf("Expected dust 5, got %d", d)
	}
}

func TestNormalize_RoundTripExactUpToEightDecimals(t *testing.T) {
	values := []uint64{0, 1, 7, 999, 1_000_000, math.MaxUint32, math.MaxUint64 / 100_000_000}
	for d := uint8(0); d <= WireDecimals; d++ {
		for _, v := range values {
			wire, err := Normalize(v, d)
			if err != nil {
				t.Fatalf("Normalize(%d, %d) failed: %v", v, d, err)
			}
			back, err := Denormalize(wire, d)
			if err != nil {
				t.Fatalf("Denormalize(%s, %d) failed: %v", wire, d, err)
			}
			if back != v {
				t.Errorf("decimals %d: expected %d, got %d", d, v, back)
			}
		}
	}
}

func TestNormalize_BoundedLossAboveEightDecimals(t *testing.T) {
	values := []uint64{0, 1, 9, 10, 123_456_789_012, math.MaxUint64}
	for d := uint8(9); d <= 18; d++ {
		unit, err := pow10(d - WireDecimals)
		if err != nil {
			t.Fatalf("pow10 failed: %v", err)
		}
		for _, v := range values {
			wire, err := Normalize(v, d)
			if err != nil {
				t.Fatalf("Normalize(%d, %d) failed: %v", v, d, err)
			}
			back, err := Denormalize(wire, d)
			if err != nil {
				t.Fatalf("Denormalize(%s, %d) failed: %v", wire, d, err)
			}
			if back > v {
				t.Fatalf("decimals %d: round trip grew %d to %d", d, v, back)
			}
			if v-back >= unit.Uint64() {
				t.Errorf("decimals %d: loss %d not below %s", d, v-back, unit.Dec())
			}
			if v-back != Dust(v, d) {
				t.Errorf("decimals %d: expected loss to equal dust %d, got %d", d, Dust(v, d), v-back)
			}
		}
	}
}

func TestNormalize_ZeroDecimalsMaxValue(t *testing.T) {
	wire, err := Normalize(math.MaxUint64, 0)
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	if _, err := wire.Uint64(); !errors.Is(err, ErrOverflow) {
		t.Errorf("Expected wire value to exceed 64 bits, got %v", err)
	}
}

func TestDenormalize_DowncastOverflow(t *testing.T) {
	wire, err := ParseWide("18446744073709551616") // 2^64
	if err != nil {
		t.Fatalf("ParseWide() failed: %v", err)
	}
	if _, err := Denormalize(wire, 8); !errors.Is(err, ErrOverflow) {
		t.Errorf("Expected ErrOverflow, got %v", err)
	}

	small := NewWide(math.MaxUint64 / 10)
	if _, err := Denormalize(small, 18); !errors.Is(err, ErrOverflow) {
		t.Errorf("Expected ErrOverflow when scaling up, got %v", err)
	}
}

func TestNormalize_ExponentOutOfRange(t *testing.T) {
	if _, err := Normalize(1, 200); !errors.Is(err, ErrOverflow) {
		t.Errorf("Expected ErrOverflow for 200 decimals, got %v", err)
	}
	if _, err := Denormalize(NewWide(1), 200); !errors.Is(err, ErrOverflow) {
		t.Errorf("Expected ErrOverflow for 200 decimals, got %v", err)
	}
}

func TestWide_Bytes32RoundTrip(t *testing.T) {
	w, err := ParseWide("340282366920938463463374607431768211457")
	if err != nil {
		t.Fatalf("ParseWide() failed: %v", err)
	}
	b := w.Bytes32()
	if b[15] != 1 || b[31] != 1 {
		t.Fatalf("Expected big-endian layout, got %x", b)
	}
	if got := WideFromBytes32(b); got.Cmp(w) != 0 {
		t.Errorf("Expected %s, got %s", w, got)
	}
}

func TestFormatAndParse(t *testing.T) {
	if got := Format(1_500_000_000, 9); got != "1.5" {
		t.Errorf("Expected 1.5, got %s", got)
	}
	if got := Format(42, 0); got != "42" {
		t.Errorf("Expected 42, got %s", got)
	}

	n, err := Parse("1.5", 9)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if n != 1_500_000_000 {
		t.Errorf("Expected 1500000000, got %d", n)
	}

	if _, err := Parse("0.123", 2); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for excess precision, got %v", err)
	}
	if _, err := Parse("-1", 2); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for negative amount, got %v", err)
	}
	if _, err := Parse("abc", 2); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for garbage, got %v", err)
	}
	if _, err := Parse("18446744073709551616", 0); !errors.Is(err, ErrOverflow) {
		t.Errorf("Expected ErrOverflow, got %v", err)
	}
}
