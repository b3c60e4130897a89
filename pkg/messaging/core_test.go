package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chainsafe/cat-bridge/pkg/chain"
)

var (
	coreProgram   = chain.BytesToAddress([]byte{0xc0})
	bridgeProgram = chain.BytesToAddress([]byte{0xb0})
	testEmitter   = chain.DeriveAddress(bridgeProgram, []byte("emitter"))
)

func newTestCore(t *testing.T, fee uint64) (context.Context, *Core, *mapStore) {
	t.Helper()
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	c := NewCore(coreProgram, chain.HomeChainID).WithClock(func() time.Time { return fixed })
	s := newMapStore()
	if _, err := c.Bootstrap(ctx, s, fee); err != nil {
		t.Fatalf("Bootstrap() failed: %v", err)
	}
	return ctx, c, s
}

func TestBootstrap_UpdatesFee(t *testing.T) {
	ctx, c, s := newTestCore(t, 10)

	st, err := c.Bootstrap(ctx, s, 25)
	if err != nil {
		t.Fatalf("Bootstrap() failed: %v", err)
	}
	if st.Fee != 25 {
		t.Fatalf("Expected fee 25, got %d", st.Fee)
	}
	if st.Bridge != c.BridgeAddress() || st.FeeCollector != c.FeeCollectorAddress() {
		t.Fatalf("Expected derived protocol addresses, got %+v", st)
	}
}

func TestState_NotInitialized(t *testing.T) {
	c := NewCore(coreProgram, chain.HomeChainID)
	_, err := c.State(context.Background(), newMapStore())
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestPost_ReservesDistinctSequences(t *testing.T) {
	ctx, c, s := newTestCore(t, 0)

	seen := map[uint64]chain.Address{}
	for i := 0; i < 3; i++ {
		msg, err := c.Post(ctx, s, PostRequest{Emitter: testEmitter, Program: bridgeProgram, Payload: []byte{byte(i)}})
		if err != nil {
			t.Fatalf("Post() #%d failed: %v", i, err)
		}
		if msg.Sequence != uint64(i) {
			t.Fatalf("Expected sequence %d, got %d", i, msg.Sequence)
		}
		if msg.Account != MessageAccount(bridgeProgram, msg.Sequence) {
			t.Fatalf("Expected account derived from sequence %d", msg.Sequence)
		}
		seen[msg.Sequence] = msg.Account
	}
	if len(seen) != 3 {
		t.Fatalf("Expected 3 distinct sequences, got %d", len(seen))
	}
	if s.reserved != 3 {
		t.Fatalf("Expected one reservation per post, got %d", s.reserved)
	}

	next, err := c.NextSequence(ctx, s, testEmitter)
	if err != nil || next != 3 {
		t.Fatalf("Expected next sequence 3, got %d (%v)", next, err)
	}
}

func TestPost_SignerSeedsMatchAccount(t *testing.T) {
	ctx, c, s := newTestCore(t, 0)

	var accounts []chain.Address
	for i := 0; i < 2; i++ {
		msg, err := c.Post(ctx, s, PostRequest{Emitter: testEmitter, Program: bridgeProgram, Payload: []byte{byte(i)}})
		if err != nil {
			t.Fatalf("Post() #%d failed: %v", i, err)
		}
		if len(msg.SignerSeeds) != 2 || string(msg.SignerSeeds[0]) != SentSeed {
			t.Fatalf("Expected sent seed and sequence seed, got %x", msg.SignerSeeds)
		}
		if got := chain.DeriveAddress(bridgeProgram, msg.SignerSeeds...); got != msg.Account {
			t.Fatalf("Expected signer seeds to derive %s, got %s", msg.Account, got)
		}
		if string(msg.SignerSeeds[1]) != string(chain.Uint64Seed(msg.Sequence)) {
			t.Fatalf("Expected sequence seed for %d, got %x", msg.Sequence, msg.SignerSeeds[1])
		}
		accounts = append(accounts, msg.Account)
	}
	if accounts[0] == accounts[1] {
		t.Fatal("Expected back-to-back posts to use distinct accounts")
	}
}

func TestPost_Rejections(t *testing.T) {
	ctx, c, s := newTestCore(t, 100)

	_, err := c.Post(ctx, s, PostRequest{Emitter: testEmitter, Program: bridgeProgram})
	if !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("Expected ErrEmptyPayload, got %v", err)
	}
	_, err = c.Post(ctx, s, PostRequest{Emitter: testEmitter, Program: bridgeProgram, Payload: []byte{1}, FeePaid: 99})
	if !errors.Is(err, ErrFeeNotPaid) {
		t.Fatalf("Expected ErrFeeNotPaid, got %v", err)
	}
	if s.reserved != 0 {
		t.Fatalf("Expected no sequence reserved on rejection, got %d", s.reserved)
	}

	// an account squatted at the next sequence
	s.posted[MessageAccount(bridgeProgram, 0)] = PostedMessage{}
	_, err = c.Post(ctx, s, PostRequest{Emitter: testEmitter, Program: bridgeProgram, Payload: []byte{1}, FeePaid: 100})
	if !errors.Is(err, ErrMessageExists) {
		t.Fatalf("Expected ErrMessageExists, got %v", err)
	}
}

func TestDeliver_Idempotent(t *testing.T) {
	ctx, c, s := newTestCore(t, 0)
	env := &Envelope{
		EmitterChain:   2,
		EmitterAddress: chain.BytesToAddress([]byte{0xee}),
		Sequence:       5,
		Payload:        []byte{1, 2, 3},
	}

	h1, err := c.Deliver(ctx, s, env)
	if err != nil {
		t.Fatalf("Deliver() failed: %v", err)
	}
	h2, err := c.Deliver(ctx, s, env)
	if err != nil {
		t.Fatalf("second Deliver() failed: %v", err)
	}
	if h1 != h2 || len(s.envelopes) != 1 {
		t.Fatalf("Expected one stored envelope under one hash")
	}

	got, err := c.Delivered(ctx, s, h1)
	if err != nil {
		t.Fatalf("Delivered() failed: %v", err)
	}
	if got.Sequence != 5 {
		t.Fatalf("Expected sequence 5, got %d", got.Sequence)
	}

	if _, err := c.Deliver(ctx, s, &Envelope{EmitterChain: 2}); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("Expected ErrEmptyPayload, got %v", err)
	}
}

func TestEnvelopeHash_CoversEveryField(t *testing.T) {
	base := Envelope{EmitterChain: 2, EmitterAddress: chain.BytesToAddress([]byte{1}), Sequence: 1, BatchID: 1, Payload: []byte{1}}
	h := base.Hash()

	variants := []func(e *Envelope){
		func(e *Envelope) { e.EmitterChain = 3 },
		func(e *Envelope) { e.EmitterAddress = chain.BytesToAddress([]byte{2}) },
		func(e *Envelope) { e.Sequence = 2 },
		func(e *Envelope) { e.BatchID = 2 },
		func(e *Envelope) { e.Finality = FinalityFinalized },
		func(e *Envelope) { e.Payload = []byte{2} },
	}
	for i, mutate := range variants {
		e := base
		mutate(&e)
		if e.Hash() == h {
			t.Errorf("variant %d: expected a different hash", i)
		}
	}
}

func TestParseFinality(t *testing.T) {
	for _, f := range []Finality{FinalityConfirmed, FinalityFinalized} {
		got, err := ParseFinality(f.String())
		if err != nil || got != f {
			t.Fatalf("ParseFinality(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFinality("instant"); err == nil {
		t.Fatal("Expected error for unknown finality")
	}
}
