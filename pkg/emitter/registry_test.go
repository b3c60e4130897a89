package emitter

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/chainsafe/cat-bridge/pkg/chain"
)

type mapStore map[chain.ID]Record

func (s mapStore) GetEmitter(_ context.Context, id chain.ID) (*Record, error) {
	r, ok := s[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (s mapStore) PutEmitter(_ context.Context, r *Record) error {
	s[r.ChainID] = *r
	return nil
}

func (s mapStore) ListEmitters(context.Context) ([]*Record, error) {
	out := make([]*Record, 0, len(s))
	for _, r := range s {
		r := r
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })
	return out, nil
}

var (
	owner    = chain.BytesToAddress([]byte{0x0a})
	stranger = chain.BytesToAddress([]byte{0x0b})
	remote   = chain.BytesToAddress([]byte{0xee})
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(chain.HomeChainID)

	tests := []struct {
		name   string
		caller chain.Address
		rec    Record
		want   error
	}{
		{"not owner", stranger, Record{ChainID: 2, Address: remote}, ErrNotOwner},
		{"zero chain", owner, Record{ChainID: 0, Address: remote}, ErrInvalidChain},
		{"home chain", owner, Record{ChainID: chain.HomeChainID, Address: remote}, ErrInvalidChain},
		{"zero address", owner, Record{ChainID: 2}, ErrZeroAddress},
		{"ok", owner, Record{ChainID: 2, Address: remote}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mapStore{}
			err := r.Register(ctx, s, tt.caller, owner, tt.rec)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if tt.want != nil && len(s) != 0 {
				t.Fatalf("Expected nothing stored on rejection")
			}
		})
	}
}

func TestRegister_ReplacesAndVerifies(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(chain.HomeChainID)
	s := mapStore{}
	replacement := chain.BytesToAddress([]byte{0xef})

	if err := r.Register(ctx, s, owner, owner, Record{ChainID: 2, Address: remote}); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := r.Register(ctx, s, owner, owner, Record{ChainID: 2, Address: remote}); err != nil {
		t.Fatalf("repeated Register() failed: %v", err)
	}
	if ok, _ := r.Verify(ctx, s, 2, remote); !ok {
		t.Fatal("Expected registered emitter to verify")
	}

	if err := r.Register(ctx, s, owner, owner, Record{ChainID: 2, Address: replacement}); err != nil {
		t.Fatalf("replacing Register() failed: %v", err)
	}
	if ok, _ := r.Verify(ctx, s, 2, remote); ok {
		t.Fatal("Expected replaced emitter to stop verifying")
	}
	if ok, _ := r.Verify(ctx, s, 2, replacement); !ok {
		t.Fatal("Expected replacement emitter to verify")
	}
	if ok, _ := r.Verify(ctx, s, 3, replacement); ok {
		t.Fatal("Expected unregistered chain to fail verification")
	}

	exists, err := r.Exists(ctx, s, 2)
	if err != nil || !exists {
		t.Fatalf("Expected chain 2 to exist, got %v (%v)", exists, err)
	}
	list, _ := r.List(ctx, s)
	if len(list) != 1 {
		t.Fatalf("Expected one record, got %d", len(list))
	}
	if _, err := r.Get(ctx, s, 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
