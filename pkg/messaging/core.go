package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainsafe/cat-bridge/pkg/chain"
)

// SentSeed prefixes the derivation of a posted message's account.
const SentSeed = "sent"

// Core publishes outbound messages and serves delivered inbound envelopes.
type Core struct {
	programID chain.Address
	chainID   chain.ID
	now       func() time.Time
}

// NewCore creates a core for the chain identified by chainID.
func NewCore(programID chain.Address, chainID chain.ID) *Core {
	return &Core{programID: programID, chainID: chainID, now: time.Now}
}

// WithClock replaces the clock used to stamp posted messages.
func (c *Core) WithClock(now func() time.Time) *Core {
	c.now = now
	return c
}

func (c *Core) ProgramID() chain.Address {
	return c.programID
}

func (c *Core) ChainID() chain.ID {
	return c.chainID
}

// BridgeAddress is the derived address of the protocol's global state.
func (c *Core) BridgeAddress() chain.Address {
	return chain.DeriveAddress(c.programID, []byte("Bridge"))
}

// FeeCollectorAddress is where message fees are paid.
func (c *Core) FeeCollectorAddress() chain.Address {
	return chain.DeriveAddress(c.programID, []byte("fee_collector"))
}

// SequenceAddress is the derived sequence counter of an emitter.
func (c *Core) SequenceAddress(emitter chain.Address) chain.Address {
	return chain.DeriveAddress(c.programID, []byte("Sequence"), emitter[:])
}

// MessageAccount is the account a posted message of sequence seq lives at.
// It is derived under the posting program so that the same sequence always
// maps to the same account.
func MessageAccount(program chain.Address, seq uint64) chain.Address {
	return chain.DeriveAddress(program, SignerSeeds(seq)...)
}

// SignerSeeds is the seed material that derives the message account of seq.
func SignerSeeds(seq uint64) [][]byte {
	return [][]byte{[]byte(SentSeed), chain.Uint64Seed(seq)}
}

// Bootstrap creates the protocol state with the given fee, or updates the fee
// when the state already exists.
func (c *Core) Bootstrap(ctx context.Context, s Store, fee uint64) (*State, error) {
	st, err := s.GetProtocolState(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		st = &State{
			Bridge:       c.BridgeAddress(),
			FeeCollector: c.FeeCollectorAddress(),
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load protocol state: %w", err)
	}
	st.Fee = fee
	if err := s.PutProtocolState(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to store protocol state: %w", err)
	}
	return st, nil
}

// State returns the protocol state.
func (c *Core) State(ctx context.Context, s Store) (*State, error) {
	st, err := s.GetProtocolState(ctx)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load protocol state: %w", err)
	}
	return st, nil
}

// Fee is the flat fee charged per posted message.
func (c *Core) Fee(ctx context.Context, s Store) (uint64, error) {
	st, err := c.State(ctx, s)
	if err != nil {
		return 0, err
	}
	return st.Fee, nil
}

// PostRequest is an outbound message submission.
type PostRequest struct {
	// Emitter is the address messages are attributed to.
	Emitter chain.Address
	// Program derives the message account from the reserved sequence.
	Program  chain.Address
	Payload  []byte
	BatchID  uint32
	Finality Finality
	FeePaid  uint64
}

// Post reserves the emitter's next sequence and records the message under the
// account derived from it. The sequence is read exactly once.
func (c *Core) Post(ctx context.Context, s Store, req PostRequest) (*PostedMessage, error) {
	if len(req.Payload) == 0 {
		return nil, ErrEmptyPayload
	}
	st, err := c.State(ctx, s)
	if err != nil {
		return nil, err
	}
	if req.FeePaid < st.Fee {
		return nil, fmt.Errorf("%w: paid %d, fee %d", ErrFeeNotPaid, req.FeePaid, st.Fee)
	}

	seq, err := s.ReserveSequence(ctx, req.Emitter)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve sequence: %w", err)
	}
	seeds := SignerSeeds(seq)
	account := chain.DeriveAddress(req.Program, seeds...)
	if _, err := s.GetPosted(ctx, account); err == nil {
		return nil, fmt.Errorf("%w: %s (sequence %d)", ErrMessageExists, account, seq)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	msg := &PostedMessage{
		Account:      account,
		SignerSeeds:  seeds,
		Emitter:      req.Emitter,
		EmitterChain: c.chainID,
		Sequence:     seq,
		BatchID:      req.BatchID,
		Finality:     req.Finality,
		Payload:      append([]byte(nil), req.Payload...),
		FeePaid:      req.FeePaid,
		PostedAt:     c.now().UTC(),
	}
	if err := s.PutPosted(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store posted message: %w", err)
	}
	return msg, nil
}

// Posted returns a previously posted message by account.
func (c *Core) Posted(ctx context.Context, s Store, account chain.Address) (*PostedMessage, error) {
	return s.GetPosted(ctx, account)
}

// NextSequence reports the sequence the emitter's next post will get.
func (c *Core) NextSequence(ctx context.Context, s Store, emitter chain.Address) (uint64, error) {
	return s.PeekSequence(ctx, emitter)
}

// Deliver records an attested envelope and returns its hash. Delivering the
// same envelope twice is a no-op.
func (c *Core) Deliver(ctx context.Context, s Store, e *Envelope) (chain.Hash, error) {
	if len(e.Payload) == 0 {
		return chain.Hash{}, ErrEmptyPayload
	}
	hash := e.Hash()
	if _, err := s.GetEnvelope(ctx, hash); err == nil {
		return hash, nil
	} else if !errors.Is(err, ErrNotFound) {
		return chain.Hash{}, err
	}
	if err := s.PutEnvelope(ctx, hash, e); err != nil {
		return chain.Hash{}, fmt.Errorf("failed to store envelope: %w", err)
	}
	return hash, nil
}

// Delivered returns the envelope with the given hash.
func (c *Core) Delivered(ctx context.Context, s Store, hash chain.Hash) (*Envelope, error) {
	return s.GetEnvelope(ctx, hash)
}
