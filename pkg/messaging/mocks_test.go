package messaging

import (
	"context"

	"github.com/chainsafe/cat-bridge/pkg/chain"
)

type mapStore struct {
	state     *State
	sequences map[chain.Address]uint64
	posted    map[chain.Address]PostedMessage
	envelopes map[chain.Hash]Envelope
	reserved  int
}

func newMapStore() *mapStore {
	return &mapStore{
		sequences: map[chain.Address]uint64{},
		posted:    map[chain.Address]PostedMessage{},
		envelopes: map[chain.Hash]Envelope{},
	}
}

func (s *mapStore) GetProtocolState(context.Context) (*State, error) {
	if s.state == nil {
		return nil, ErrNotFound
	}
	st := *s.state
	return &st, nil
}

func (s *mapStore) PutProtocolState(_ context.Context, st *State) error {
	c := *st
	s.state = &c
	return nil
}

func (s *mapStore) ReserveSequence(_ context.Context, emitter chain.Address) (uint64, error) {
	s.reserved++
	seq := s.sequences[emitter]
	s.sequences[emitter] = seq + 1
	return seq, nil
}

func (s *mapStore) PeekSequence(_ context.Context, emitter chain.Address) (uint64, error) {
	return s.sequences[emitter], nil
}

func (s *mapStore) PutPosted(_ context.Context, m *PostedMessage) error {
	s.posted[m.Account] = *m
	return nil
}

func (s *mapStore) GetPosted(_ context.Context, account chain.Address) (*PostedMessage, error) {
	m, ok := s.posted[account]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *mapStore) PutEnvelope(_ context.Context, hash chain.Hash, e *Envelope) error {
	s.envelopes[hash] = *e
	return nil
}

func (s *mapStore) GetEnvelope(_ context.Context, hash chain.Hash) (*Envelope, error) {
	e, ok := s.envelopes[hash]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}
