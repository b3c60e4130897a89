package token

import (
	"context"

	"github.com/chainsafe/cat-bridge/pkg/chain"
)

// mapStore is a minimal in-memory Store for program tests.
type mapStore struct {
	mints    map[chain.Address]Mint
	accounts map[chain.Address]Account
	native   map[chain.Address]uint64
}

func newMapStore() *mapStore {
	return &mapStore{
		mints:    map[chain.Address]Mint{},
		accounts: map[chain.Address]Account{},
		native:   map[chain.Address]uint64{},
	}
}

func (s *mapStore) GetMint(_ context.Context, addr chain.Address) (*Mint, error) {
	m, ok := s.mints[addr]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *mapStore) PutMint(_ context.Context, m *Mint) error {
	s.mints[m.Address] = *m
	return nil
}

func (s *mapStore) GetAccount(_ context.Context, addr chain.Address) (*Account, error) {
	a, ok := s.accounts[addr]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *mapStore) PutAccount(_ context.Context, a *Account) error {
	s.accounts[a.Address] = *a
	return nil
}

func (s *mapStore) ListAccounts(_ context.Context, owner chain.Address) ([]*Account, error) {
	var out []*Account
	for _, a := range s.accounts {
		if a.Owner == owner {
			a := a
			out = append(out, &a)
		}
	}
	return out, nil
}

func (s *mapStore) GetNativeBalance(_ context.Context, addr chain.Address) (uint64, error) {
	return s.native[addr], nil
}

func (s *mapStore) PutNativeBalance(_ context.Context, addr chain.Address, balance uint64) error {
	s.native[addr] = balance
	return nil
}
