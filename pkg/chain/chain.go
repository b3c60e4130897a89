// Package chain holds the identifiers shared by every bridge component:
// chain ids, 32-byte account addresses and deterministic address derivation.
package chain

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// AddressLength is the width of every address on the wire and in storage.
const AddressLength = 32

// ID identifies a chain in the messaging protocol's numbering.
type ID uint64

// HomeChainID is the default home chain id.
const HomeChainID ID = 1

// Address is a 32-byte account, program or token address.
type Address [AddressLength]byte

// ZeroAddress is the all-zero address.
var ZeroAddress Address

var ErrInvalidAddress = errors.New("invalid address")

// BytesToAddress left-pads b to 32 bytes. Longer inputs keep the trailing 32 bytes.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// ParseAddress decodes a 0x-prefixed hex string. Inputs shorter than
// 32 bytes (e.g. 20-byte EVM addresses) are left-padded.
func ParseAddress(s string) (Address, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return ZeroAddress, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(b) == 0 || len(b) > AddressLength {
		return ZeroAddress, fmt.Errorf("%w: length %d", ErrInvalidAddress, len(b))
	}
	return BytesToAddress(b), nil
}

// MustParseAddress is ParseAddress that panics; intended for constants and tests.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) Hex() string {
	return hexutil.Encode(a[:])
}

func (a Address) String() string {
	return a.Hex()
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Hash is a Keccak-256 digest.
type Hash [32]byte

func (h Hash) Hex() string {
	return hexutil.Encode(h[:])
}

func (h Hash) String() string {
	return h.Hex()
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHash decodes a 0x-prefixed 32-byte hex digest.
func ParseHash(s string) (Hash, error) {
	var h Hash
	b, err := hexutil.Decode(s)
	if err != nil {
		return h, fmt.Errorf("invalid hash: %w", err)
	}
	if len(b) != len(h) {
		return h, fmt.Errorf("invalid hash: length %d", len(b))
	}
	copy(h[:], b)
	return h, nil
}

// Keccak256 hashes the concatenation of data.
func Keccak256(data ...[]byte) Hash {
	return Hash(crypto.Keccak256Hash(data...))
}

// DeriveAddress returns the address owned by program for the given seeds.
// The same (program, seeds) pair always yields the same address, so derived
// addresses double as exclusive keys for singleton resources.
func DeriveAddress(program Address, seeds ...[]byte) Address {
	parts := make([][]byte, 0, len(seeds)*2+2)
	for _, seed := range seeds {
		var l [2]byte
		binary.BigEndian.PutUint16(l[:], uint16(len(seed)))
		parts = append(parts, l[:], seed)
	}
	parts = append(parts, program[:], []byte("derived_address"))
	return Address(Keccak256(parts...))
}

// Uint64Seed encodes n as an 8-byte little-endian seed.
func Uint64Seed(n uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], n)
	return b[:]
}
