// Package amount implements the 256-bit wire amount and the conversion
// between a token's native precision and the bridge's 8-decimal wire precision.
package amount

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

var (
	// ErrOverflow is returned when a result does not fit its target width.
	ErrOverflow = errors.New("amount overflow")
	// ErrInvalid is returned for unparsable amount text.
	ErrInvalid = errors.New("invalid amount")
)

// Wide is an unsigned 256-bit integer. The zero value is 0.
type Wide struct {
	v uint256.Int
}

// NewWide widens a native amount.
func NewWide(n uint64) Wide {
	var w Wide
	w.v.SetUint64(n)
	return w
}

// WideFromBytes32 decodes a 32-byte big-endian integer.
func WideFromBytes32(b [32]byte) Wide {
	var w Wide
	w.v.SetBytes32(b[:])
	return w
}

// ParseWide parses a base-10 integer string.
func ParseWide(s string) (Wide, error) {
	var w Wide
	if err := w.v.SetFromDecimal(s); err != nil {
		return Wide{}, fmt.Errorf("%w: %q: %v", ErrInvalid, s, err)
	}
	return w, nil
}

// Bytes32 encodes w as 32 bytes big-endian.
func (w Wide) Bytes32() [32]byte {
	return w.v.Bytes32()
}

// Uint64 narrows w to the native width, failing when it does not fit.
func (w Wide) Uint64() (uint64, error) {
	if !w.v.IsUint64() {
		return 0, fmt.Errorf("%w: %s exceeds 64 bits", ErrOverflow, w.v.Dec())
	}
	return w.v.Uint64(), nil
}

func (w Wide) IsZero() bool {
	return w.v.IsZero()
}

// Cmp returns -1, 0 or +1.
func (w Wide) Cmp(o Wide) int {
	return w.v.Cmp(&o.v)
}

func (w Wide) String() string {
	return w.v.Dec()
}

func (w Wide) MarshalText() ([]byte, error) {
	return []byte(w.v.Dec()), nil
}

func (w *Wide) UnmarshalText(text []byte) error {
	parsed, err := ParseWide(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

func (w Wide) mul(o *uint256.Int) (Wide, error) {
	var out Wide
	if _, overflow := out.v.MulOverflow(&w.v, o); overflow {
		return Wide{}, fmt.Errorf("%w: %s * %s", ErrOverflow, w.v.Dec(), o.Dec())
	}
	return out, nil
}

func (w Wide) div(o *uint256.Int) Wide {
	var out Wide
	out.v.Div(&w.v, o)
	return out
}

// maxPow10 is the largest n with 10^n < 2^256.
const maxPow10 = 77

func pow10(n uint8) (*uint256.Int, error) {
	if n > maxPow10 {
		return nil, fmt.Errorf("%w: 10^%d exceeds 256 bits", ErrOverflow, n)
	}
	ten := uint256.NewInt(10)
	return new(uint256.Int).Exp(ten, uint256.NewInt(uint64(n))), nil
}
