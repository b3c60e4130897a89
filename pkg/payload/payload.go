// Package payload implements the bridge's wire format.
//
// A payload is a one-byte variant tag followed by the variant's fixed-size
// body. The only variant today is Transfer (tag 0):
//
//	offset size field
//	0      1    tag
//	1      32   amount (8 decimals, big-endian)
//	33     1    token decimals
//	34     32   source token address
//	66     32   source account address
//	98     32   source chain id (big-endian)
//	130    32   destination token address
//	162    32   destination account address
//	194    32   destination chain id (big-endian)
package payload

import (
	"errors"
	"fmt"

	"github.com/chainsafe/cat-bridge/pkg/amount"
	"github.com/chainsafe/cat-bridge/pkg/chain"
)

// Tag discriminates payload variants on the wire.
type Tag uint8

const (
	TagTransfer Tag = 0
)

// TransferSize is the encoded length of a Transfer payload.
const TransferSize = 1 + 32 + 1 + 32 + 32 + 32 + 32 + 32 + 32

var (
	ErrMalformed      = errors.New("malformed payload")
	ErrUnknownVariant = errors.New("unknown payload variant")
)

// Message is a decoded payload variant.
type Message interface {
	Tag() Tag
	Encode() []byte
}

// Transfer moves amount of a token from an account on the source chain to an
// account on the destination chain.
type Transfer struct {
	Amount             amount.Wide
	TokenDecimals      uint8
	SourceToken        chain.Address
	SourceAccount      chain.Address
	SourceChainID      chain.ID
	DestinationToken   chain.Address
	DestinationAccount chain.Address
	DestinationChainID chain.ID
}

func (*Transfer) Tag() Tag {
	return TagTransfer
}

// Encode returns the tagged wire form.
func (t *Transfer) Encode() []byte {
	w := newWriter(TransferSize)
	w.putByte(byte(TagTransfer))
	w.putWord(t.Amount.Bytes32())
	w.putByte(t.TokenDecimals)
	w.putWord(t.SourceToken)
	w.putWord(t.SourceAccount)
	w.putWord(chainWord(t.SourceChainID))
	w.putWord(t.DestinationToken)
	w.putWord(t.DestinationAccount)
	w.putWord(chainWord(t.DestinationChainID))
	return w.buf
}

// Decode parses a tagged payload into its variant.
func Decode(b []byte) (Message, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformed)
	}
	switch Tag(b[0]) {
	case TagTransfer:
		return decodeTransfer(b)
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownVariant, b[0])
	}
}

// DecodeTransfer parses b and requires it to be a Transfer.
func DecodeTransfer(b []byte) (*Transfer, error) {
	msg, err := Decode(b)
	if err != nil {
		return nil, err
	}
	t, ok := msg.(*Transfer)
	if !ok {
		return nil, fmt.Errorf("%w: expected transfer, got tag %d", ErrUnknownVariant, msg.Tag())
	}
	return t, nil
}

func decodeTransfer(b []byte) (*Transfer, error) {
	if len(b) != TransferSize {
		return nil, fmt.Errorf("%w: transfer is %d bytes, got %d", ErrMalformed, TransferSize, len(b))
	}
	r := reader{buf: b[1:]}
	t := &Transfer{}
	t.Amount = amount.WideFromBytes32(r.readWord())
	t.TokenDecimals = r.readByte()
	t.SourceToken = r.readWord()
	t.SourceAccount = r.readWord()
	src, err := wordChain(r.readWord())
	if err != nil {
		return nil, fmt.Errorf("source chain: %w", err)
	}
	t.SourceChainID = src
	t.DestinationToken = r.readWord()
	t.DestinationAccount = r.readWord()
	dst, err := wordChain(r.readWord())
	if err != nil {
		return nil, fmt.Errorf("destination chain: %w", err)
	}
	t.DestinationChainID = dst
	return t, nil
}

func chainWord(id chain.ID) [32]byte {
	return amount.NewWide(uint64(id)).Bytes32()
}

func wordChain(w [32]byte) (chain.ID, error) {
	n, err := amount.WideFromBytes32(w).Uint64()
	if err != nil {
		return 0, fmt.Errorf("%w: chain id exceeds 64 bits", ErrMalformed)
	}
	return chain.ID(n), nil
}

type writer struct {
	buf []byte
}

func newWriter(size int) *writer {
	return &writer{buf: make([]byte, 0, size)}
}

func (w *writer) putByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *writer) putWord(b [32]byte) {
	w.buf = append(w.buf, b[:]...)
}

// reader assumes the caller has checked the total length.
type reader struct {
	buf []byte
	off int
}

func (r *reader) readByte() byte {
	b := r.buf[r.off]
	r.off++
	return b
}

func (r *reader) readWord() [32]byte {
	var out [32]byte
	copy(out[:], r.buf[r.off:r.off+32])
	r.off += 32
	return out
}
