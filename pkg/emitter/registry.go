// Package emitter keeps the allow-list of trusted counter-party contracts,
// one per foreign chain.
package emitter

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainsafe/cat-bridge/pkg/chain"
)

var (
	ErrNotFound     = errors.New("foreign emitter not registered")
	ErrNotOwner     = errors.New("caller is not the owner")
	ErrInvalidChain = errors.New("invalid emitter chain")
	ErrZeroAddress  = errors.New("emitter address is zero")
)

// Record is the trusted emitter of one foreign chain.
type Record struct {
	ChainID chain.ID      `json:"chain_id"`
	Address chain.Address `json:"address"`
}

// Store persists emitter records. GetEmitter returns ErrNotFound for unknown chains.
type Store interface {
	GetEmitter(ctx context.Context, chainID chain.ID) (*Record, error)
	PutEmitter(ctx context.Context, r *Record) error
	ListEmitters(ctx context.Context) ([]*Record, error)
}

// Registry validates and answers trust questions against a Store.
type Registry struct {
	homeChainID chain.ID
}

// NewRegistry creates a registry for a bridge living on homeChainID.
func NewRegistry(homeChainID chain.ID) *Registry {
	return &Registry{homeChainID: homeChainID}
}

// Register sets the trusted emitter for a foreign chain, replacing any
// previous record. Only owner may register.
func (r *Registry) Register(ctx context.Context, s Store, caller, owner chain.Address, rec Record) error {
	if caller != owner {
		return ErrNotOwner
	}
	if rec.ChainID == 0 || rec.ChainID == r.homeChainID {
		return fmt.Errorf("%w: %d", ErrInvalidChain, rec.ChainID)
	}
	if rec.Address.IsZero() {
		return ErrZeroAddress
	}
	if err := s.PutEmitter(ctx, &rec); err != nil {
		return fmt.Errorf("failed to store emitter: %w", err)
	}
	return nil
}

// Verify reports whether address is the registered emitter of chainID.
func (r *Registry) Verify(ctx context.Context, s Store, chainID chain.ID, address chain.Address) (bool, error) {
	rec, err := s.GetEmitter(ctx, chainID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return rec.Address == address, nil
}

// Exists reports whether chainID has a registered emitter.
func (r *Registry) Exists(ctx context.Context, s Store, chainID chain.ID) (bool, error) {
	_, err := s.GetEmitter(ctx, chainID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the registered emitter of chainID.
func (r *Registry) Get(ctx context.Context, s Store, chainID chain.ID) (*Record, error) {
	return s.GetEmitter(ctx, chainID)
}

// List returns every registered emitter ordered by chain id.
func (r *Registry) List(ctx context.Context, s Store) ([]*Record, error) {
	return s.ListEmitters(ctx)
}
