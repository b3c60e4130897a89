// Package replay records which inbound messages have been processed so that
// none is honored twice.
package replay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/chainsafe/cat-bridge/pkg/chain"
)

var (
	ErrAlreadyClaimed = errors.New("message already processed")
	ErrNotFound       = errors.New("received message not found")
)

// Key identifies an inbound message.
type Key struct {
	ChainID  chain.ID `json:"chain_id"`
	Sequence uint64   `json:"sequence"`
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%d", k.ChainID, k.Sequence)
}

// Record is the proof that a message was processed.
type Record struct {
	Key
	BatchID     uint32        `json:"batch_id"`
	MessageHash chain.Hash    `json:"message_hash"`
	Payload     hexutil.Bytes `json:"payload"`
	ReceivedAt  time.Time     `json:"received_at"`
}

// Store persists claims. InsertReceived must fail with ErrAlreadyClaimed when
// the key exists; it never overwrites.
type Store interface {
	InsertReceived(ctx context.Context, r *Record) error
	GetReceived(ctx context.Context, key Key) (*Record, error)
}

// Claim creates the record for rec.Key, failing with ErrAlreadyClaimed when
// the message was processed before.
func Claim(ctx context.Context, s Store, rec *Record) error {
	if err := s.InsertReceived(ctx, rec); err != nil {
		if errors.Is(err, ErrAlreadyClaimed) {
			return fmt.Errorf("%w: %s", ErrAlreadyClaimed, rec.Key)
		}
		return fmt.Errorf("failed to claim %s: %w", rec.Key, err)
	}
	return nil
}

// IsClaimed reports whether key has been processed.
func IsClaimed(ctx context.Context, s Store, key Key) (bool, error) {
	_, err := s.GetReceived(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
