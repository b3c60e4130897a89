// Package messaging is the in-process rendition of the attested messaging
// protocol the bridge publishes to and consumes from. Attestation itself
// happens elsewhere; Deliver accepts envelopes that have already been verified.
package messaging

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/chainsafe/cat-bridge/pkg/chain"
)

var (
	ErrNotFound       = errors.New("messaging record not found")
	ErrNotInitialized = errors.New("messaging protocol not initialized")
	ErrFeeNotPaid     = errors.New("message fee not paid")
	ErrMessageExists  = errors.New("message account already in use")
	ErrEmptyPayload   = errors.New("empty payload")
)

// Finality is the consistency level requested for a posted message.
type Finality uint8

const (
	FinalityConfirmed Finality = 0
	FinalityFinalized Finality = 1
)

func (f Finality) String() string {
	switch f {
	case FinalityConfirmed:
		return "confirmed"
	case FinalityFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("finality(%d)", uint8(f))
	}
}

// ParseFinality accepts "confirmed" or "finalized".
func ParseFinality(s string) (Finality, error) {
	switch strings.ToLower(s) {
	case "", "confirmed":
		return FinalityConfirmed, nil
	case "finalized":
		return FinalityFinalized, nil
	default:
		return 0, fmt.Errorf("unknown finality %q", s)
	}
}

// State is the protocol's global account.
type State struct {
	Bridge       chain.Address `json:"bridge"`
	FeeCollector chain.Address `json:"fee_collector"`
	Fee          uint64        `json:"fee"`
}

// PostedMessage is an outbound message accepted for attestation.
type PostedMessage struct {
	Account      chain.Address `json:"account"`
	SignerSeeds  [][]byte      `json:"signer_seeds"`
	Emitter      chain.Address `json:"emitter"`
	EmitterChain chain.ID      `json:"emitter_chain"`
	Sequence     uint64        `json:"sequence"`
	BatchID      uint32        `json:"batch_id"`
	Finality     Finality      `json:"finality"`
	Payload      hexutil.Bytes `json:"payload"`
	FeePaid      uint64        `json:"fee_paid"`
	PostedAt     time.Time     `json:"posted_at"`
}

// Envelope is an attested message as seen by the receiving side.
type Envelope struct {
	EmitterChain   chain.ID      `json:"emitter_chain"`
	EmitterAddress chain.Address `json:"emitter_address"`
	Sequence       uint64        `json:"sequence"`
	BatchID        uint32        `json:"batch_id"`
	Finality       Finality      `json:"finality"`
	Payload        hexutil.Bytes `json:"payload"`
}

// Hash identifies the envelope. It covers every field.
func (e *Envelope) Hash() chain.Hash {
	var hdr [4 + 8 + 32 + 8 + 1]byte
	binary.BigEndian.PutUint32(hdr[0:4], e.BatchID)
	binary.BigEndian.PutUint64(hdr[4:12], uint64(e.EmitterChain))
	copy(hdr[12:44], e.EmitterAddress[:])
	binary.BigEndian.PutUint64(hdr[44:52], e.Sequence)
	hdr[52] = byte(e.Finality)
	return chain.Keccak256(hdr[:], e.Payload)
}

// Envelope returns the envelope the receiving side would see for m.
func (m *PostedMessage) Envelope() *Envelope {
	return &Envelope{
		EmitterChain:   m.EmitterChain,
		EmitterAddress: m.Emitter,
		Sequence:       m.Sequence,
		BatchID:        m.BatchID,
		Finality:       m.Finality,
		Payload:        m.Payload,
	}
}

// Store persists protocol state. ReserveSequence must return the emitter's
// next sequence and advance it in the same unit of work.
type Store interface {
	GetProtocolState(ctx context.Context) (*State, error)
	PutProtocolState(ctx context.Context, st *State) error
	ReserveSequence(ctx context.Context, emitter chain.Address) (uint64, error)
	PeekSequence(ctx context.Context, emitter chain.Address) (uint64, error)
	PutPosted(ctx context.Context, m *PostedMessage) error
	GetPosted(ctx context.Context, account chain.Address) (*PostedMessage, error)
	PutEnvelope(ctx context.Context, hash chain.Hash, e *Envelope) error
	GetEnvelope(ctx context.Context, hash chain.Hash) (*Envelope, error)
}
