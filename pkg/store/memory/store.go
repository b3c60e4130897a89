// Package memory is an in-process bridge.Store. Each unit of work runs
// under a single writer lock against a private copy of the mutable state;
// the copy replaces the state only when the unit of work succeeds.
// Append-only records (received, posted, delivered) are not copied: a unit
// of work buffers its inserts and merges them on commit.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/chainsafe/cat-bridge/pkg/bridge"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/replay"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

var _ bridge.Store = (*Store)(nil)

// Store is safe for concurrent use. RunInTx must not be called from inside fn.
type Store struct {
	mu    sync.Mutex
	state *state
	logs  *logs
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: newState(), logs: newLogs()}
}

// RunInTx runs fn against a snapshot and commits it when fn returns nil.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx bridge.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{st: s.state.clone(), committed: s.logs, pending: newLogs()}
	if err := fn(ctx, t); err != nil {
		return err
	}
	s.state = t.st
	s.logs.merge(t.pending)
	return nil
}

type state struct {
	config    *bridge.Config
	emitters  map[chain.ID]emitter.Record
	mints     map[chain.Address]token.Mint
	accounts  map[chain.Address]token.Account
	native    map[chain.Address]uint64
	protocol  *messaging.State
	sequences map[chain.Address]uint64
}

func newState() *state {
	return &state{
		emitters:  map[chain.ID]emitter.Record{},
		mints:     map[chain.Address]token.Mint{},
		accounts:  map[chain.Address]token.Account{},
		native:    map[chain.Address]uint64{},
		sequences: map[chain.Address]uint64{},
	}
}

// clone copies every map.
func (st *state) clone() *state {
	out := &state{
		emitters:  cloneMap(st.emitters),
		mints:     cloneMap(st.mints),
		accounts:  cloneMap(st.accounts),
		native:    cloneMap(st.native),
		sequences: cloneMap(st.sequences),
	}
	if st.config != nil {
		c := *st.config
		out.config = &c
	}
	if st.protocol != nil {
		p := *st.protocol
		out.protocol = &p
	}
	return out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// logs holds the append-only records. Stored byte slices are never mutated
// in place.
type logs struct {
	received  map[replay.Key]replay.Record
	posted    map[chain.Address]messaging.PostedMessage
	envelopes map[chain.Hash]messaging.Envelope
}

func newLogs() *logs {
	return &logs{
		received:  map[replay.Key]replay.Record{},
		posted:    map[chain.Address]messaging.PostedMessage{},
		envelopes: map[chain.Hash]messaging.Envelope{},
	}
}

func (l *logs) merge(from *logs) {
	for k, v := range from.received {
		l.received[k] = v
	}
	for k, v := range from.posted {
		l.posted[k] = v
	}
	for k, v := range from.envelopes {
		l.envelopes[k] = v
	}
}

// lookup reads the pending inserts first, then the committed ones.
func lookup[K comparable, V any](pending, committed map[K]V, key K) (V, bool) {
	if v, ok := pending[key]; ok {
		return v, true
	}
	v, ok := committed[key]
	return v, ok
}

type tx struct {
	st        *state
	committed *logs
	pending   *logs
}

func (t *tx) GetConfig(_ context.Context) (*bridge.Config, error) {
	if t.st.config == nil {
		return nil, bridge.ErrNotInitialized
	}
	c := *t.st.config
	return &c, nil
}

func (t *tx) PutConfig(_ context.Context, cfg *bridge.Config) error {
	c := *cfg
	t.st.config = &c
	return nil
}

func (t *tx) GetEmitter(_ context.Context, chainID chain.ID) (*emitter.Record, error) {
	rec, ok := t.st.emitters[chainID]
	if !ok {
		return nil, emitter.ErrNotFound
	}
	return &rec, nil
}

func (t *tx) PutEmitter(_ context.Context, r *emitter.Record) error {
	t.st.emitters[r.ChainID] = *r
	return nil
}

func (t *tx) ListEmitters(_ context.Context) ([]*emitter.Record, error) {
	out := make([]*emitter.Record, 0, len(t.st.emitters))
	for _, rec := range t.st.emitters {
		rec := rec
		out = append(out, &rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })
	return out, nil
}

func (t *tx) InsertReceived(_ context.Context, r *replay.Record) error {
	if _, ok := lookup(t.pending.received, t.committed.received, r.Key); ok {
		return replay.ErrAlreadyClaimed
	}
	rec := *r
	rec.Payload = append([]byte(nil), r.Payload...)
	t.pending.received[r.Key] = rec
	return nil
}

func (t *tx) GetReceived(_ context.Context, key replay.Key) (*replay.Record, error) {
	rec, ok := lookup(t.pending.received, t.committed.received, key)
	if !ok {
		return nil, replay.ErrNotFound
	}
	return &rec, nil
}

func (t *tx) GetMint(_ context.Context, addr chain.Address) (*token.Mint, error) {
	m, ok := t.st.mints[addr]
	if !ok {
		return nil, token.ErrNotFound
	}
	return &m, nil
}

func (t *tx) PutMint(_ context.Context, m *token.Mint) error {
	t.st.mints[m.Address] = *m
	return nil
}

func (t *tx) GetAccount(_ context.Context, addr chain.Address) (*token.Account, error) {
	a, ok := t.st.accounts[addr]
	if !ok {
		return nil, token.ErrNotFound
	}
	return &a, nil
}

func (t *tx) PutAccount(_ context.Context, a *token.Account) error {
	t.st.accounts[a.Address] = *a
	return nil
}

func (t *tx) ListAccounts(_ context.Context, owner chain.Address) ([]*token.Account, error) {
	var out []*token.Account
	for _, a := range t.st.accounts {
		if a.Owner == owner {
			a := a
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address.Hex() < out[j].Address.Hex() })
	return out, nil
}

func (t *tx) GetNativeBalance(_ context.Context, addr chain.Address) (uint64, error) {
	return t.st.native[addr], nil
}

func (t *tx) PutNativeBalance(_ context.Context, addr chain.Address, balance uint64) error {
	t.st.native[addr] = balance
	return nil
}

func (t *tx) GetProtocolState(_ context.Context) (*messaging.State, error) {
	if t.st.protocol == nil {
		return nil, messaging.ErrNotFound
	}
	p := *t.st.protocol
	return &p, nil
}

func (t *tx) PutProtocolState(_ context.Context, p *messaging.State) error {
	c := *p
	t.st.protocol = &c
	return nil
}

func (t *tx) ReserveSequence(_ context.Context, emitterAddr chain.Address) (uint64, error) {
	seq := t.st.sequences[emitterAddr]
	t.st.sequences[emitterAddr] = seq + 1
	return seq, nil
}

func (t *tx) PeekSequence(_ context.Context, emitterAddr chain.Address) (uint64, error) {
	return t.st.sequences[emitterAddr], nil
}

func (t *tx) PutPosted(_ context.Context, m *messaging.PostedMessage) error {
	msg := *m
	msg.Payload = append([]byte(nil), m.Payload...)
	msg.SignerSeeds = append([][]byte(nil), m.SignerSeeds...)
	t.pending.posted[m.Account] = msg
	return nil
}

func (t *tx) GetPosted(_ context.Context, account chain.Address) (*messaging.PostedMessage, error) {
	m, ok := lookup(t.pending.posted, t.committed.posted, account)
	if !ok {
		return nil, messaging.ErrNotFound
	}
	return &m, nil
}

func (t *tx) PutEnvelope(_ context.Context, hash chain.Hash, e *messaging.Envelope) error {
	env := *e
	env.Payload = append([]byte(nil), e.Payload...)
	t.pending.envelopes[hash] = env
	return nil
}

func (t *tx) GetEnvelope(_ context.Context, hash chain.Hash) (*messaging.Envelope, error) {
	e, ok := lookup(t.pending.envelopes, t.committed.envelopes, hash)
	if !ok {
		return nil, messaging.ErrNotFound
	}
	return &e, nil
}
