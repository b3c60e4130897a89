package amount

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// WireDecimals is the precision of every amount carried in a bridge payload.
const WireDecimals uint8 = 8

// Normalize converts a native amount with the given decimals to wire precision.
// Tokens with more than 8 decimals lose the sub-wire remainder (see Dust).
func Normalize(native uint64, decimals uint8) (Wide, error) {
	w := NewWide(native)
	if decimals > WireDecimals {
		p, err := pow10(decimals - WireDecimals)
		if err != nil {
			return Wide{}, err
		}
		return w.div(p), nil
	}
	p, err := pow10(WireDecimals - decimals)
	if err != nil {
		return Wide{}, err
	}
	return w.mul(p)
}

// Denormalize converts a wire amount back to native precision and narrows it
// to 64 bits.
func Denormalize(wire Wide, decimals uint8) (uint64, error) {
	var native Wide
	switch {
	case decimals > WireDecimals:
		p, err := pow10(decimals - WireDecimals)
		if err != nil {
			return 0, err
		}
		if native, err = wire.mul(p); err != nil {
			return 0, err
		}
	case decimals < WireDecimals:
		p, err := pow10(WireDecimals - decimals)
		if err != nil {
			return 0, err
		}
		native = wire.div(p)
	default:
		native = wire
	}
	return native.Uint64()
}

// Dust returns the part of native that Normalize truncates.
func Dust(native uint64, decimals uint8) uint64 {
	if decimals <= WireDecimals {
		return 0
	}
	p, err := pow10(decimals - WireDecimals)
	if err != nil || !p.IsUint64() {
		return native
	}
	return native % p.Uint64()
}

// Format renders a native amount as a decimal string, e.g. 1500000000 with
// 9 decimals is "1.5".
func Format(native uint64, decimals uint8) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(native), -int32(decimals)).String()
}

// Parse converts a decimal string to native units. Inputs with more
// fractional digits than decimals are rejected rather than rounded.
func Parse(text string, decimals uint8) (uint64, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, text)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: negative amount %q", ErrInvalid, text)
	}
	shifted := d.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalid, text, decimals)
	}
	bi := shifted.BigInt()
	if !bi.IsUint64() {
		return 0, fmt.Errorf("%w: %q exceeds 64 bits", ErrOverflow, text)
	}
	return bi.Uint64(), nil
}
