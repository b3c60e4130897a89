package bridge

import (
	"context"
	"errors"

	"github.com/chainsafe/cat-bridge/pkg/amount"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/replay"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

// Read-only lookups. They return the lower-level not-found sentinels
// (ErrNotInitialized, emitter.ErrNotFound, replay.ErrNotFound,
// messaging.ErrNotFound) unwrapped so callers can map them to "absent".

func (e *Engine) Config(ctx context.Context) (*Config, error) {
	var cfg *Config
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		cfg, err = tx.GetConfig(ctx)
		return err
	})
	return cfg, err
}

func (e *Engine) Emitter(ctx context.Context, chainID chain.ID) (*emitter.Record, error) {
	var rec *emitter.Record
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		rec, err = e.registry.Get(ctx, tx, chainID)
		return err
	})
	return rec, err
}

func (e *Engine) Emitters(ctx context.Context) ([]*emitter.Record, error) {
	var recs []*emitter.Record
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		recs, err = e.registry.List(ctx, tx)
		return err
	})
	return recs, err
}

func (e *Engine) Received(ctx context.Context, key replay.Key) (*replay.Record, error) {
	var rec *replay.Record
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		rec, err = tx.GetReceived(ctx, key)
		return err
	})
	return rec, err
}

// Posted returns the outbound message published with sequence.
func (e *Engine) Posted(ctx context.Context, sequence uint64) (*messaging.PostedMessage, error) {
	var msg *messaging.PostedMessage
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		msg, err = e.core.Posted(ctx, tx, messaging.MessageAccount(e.params.ProgramID, sequence))
		return err
	})
	return msg, err
}

// Balances reports owner's home token and native balances. A missing token
// account reads as zero.
func (e *Engine) Balances(ctx context.Context, owner chain.Address) (*Balances, error) {
	var out *Balances
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		cfg, err := tx.GetConfig(ctx)
		if err != nil {
			return err
		}
		mint, err := tx.GetMint(ctx, cfg.HomeToken)
		if err != nil {
			return err
		}
		b := &Balances{Owner: owner, Account: token.AssociatedAccount(owner, cfg.HomeToken)}
		acc, err := tx.GetAccount(ctx, b.Account)
		switch {
		case err == nil:
			b.Token = acc.Balance
		case !errors.Is(err, token.ErrNotFound):
			return err
		}
		if b.Native, err = tx.GetNativeBalance(ctx, owner); err != nil {
			return err
		}
		b.Display = amount.Format(b.Token, mint.Decimals)
		out = b
		return nil
	})
	return out, err
}
