package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainsafe/cat-bridge/internal/metrics"
	"github.com/chainsafe/cat-bridge/pkg/amount"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/payload"
	"github.com/chainsafe/cat-bridge/pkg/replay"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

// BridgeIn redeems a delivered message.
//
// 1. Load the envelope and decode its payload
// 2. Check the envelope's emitter is the registered one for its chain
// 3. Check the destination account matches the payload's recipient
// 4. Denormalize the wire amount to native precision
// 5. Credit the recipient (release from the vault, or mint)
// 6. Claim the (chain, sequence) replay slot, last
//
// Every step runs in one unit of work; a failure before the claim leaves the
// slot unclaimed and the balances untouched.
func (e *Engine) BridgeIn(ctx context.Context, caller chain.Address, req *InRequest) (*InReceipt, error) {
	const op = "bridge_in"
	start := time.Now()

	receipt, err := e.bridgeIn(ctx, req)
	if err != nil {
		if errors.Is(err, ErrReplay) {
			metrics.ReplayRejections.Inc()
		}
		metrics.TransfersTotal.WithLabelValues("in", string(e.mode.Mode()), "failed").Inc()
		metrics.ErrorsTotal.WithLabelValues(op, KindOf(err).String()).Inc()
		return nil, err
	}

	metrics.TransfersTotal.WithLabelValues("in", string(e.mode.Mode()), "completed").Inc()
	metrics.TransferDuration.WithLabelValues("in").Observe(time.Since(start).Seconds())
	metrics.TransferAmount.WithLabelValues("in").Observe(wireFloat(receipt.WireAmount))
	return receipt, nil
}

func (e *Engine) bridgeIn(ctx context.Context, req *InRequest) (*InReceipt, error) {
	const op = "bridge_in"
	if req == nil {
		return nil, validation(op, ErrMessageNotDelivered)
	}

	var receipt *InReceipt
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		cfg, err := e.loadConfig(ctx, op, tx)
		if err != nil {
			return err
		}

		env, err := e.core.Delivered(ctx, tx, req.MessageHash)
		if errors.Is(err, messaging.ErrNotFound) {
			return validation(op, fmt.Errorf("%w: %s", ErrMessageNotDelivered, req.MessageHash))
		}
		if err != nil {
			return collaborator(op, err)
		}

		p, err := payload.DecodeTransfer(env.Payload)
		if err != nil {
			return payloadErr(op, err)
		}

		trusted, err := e.registry.Verify(ctx, tx, env.EmitterChain, env.EmitterAddress)
		if err != nil {
			return collaborator(op, err)
		}
		if !trusted {
			return trust(op, fmt.Errorf("%w: chain %d emitter %s", ErrUntrustedEmitter, env.EmitterChain, env.EmitterAddress))
		}

		key := replay.Key{ChainID: env.EmitterChain, Sequence: env.Sequence}
		claimed, err := replay.IsClaimed(ctx, tx, key)
		if err != nil {
			return collaborator(op, err)
		}
		if claimed {
			return replayErr(op, fmt.Errorf("%w: %s", replay.ErrAlreadyClaimed, key))
		}

		if p.DestinationChainID != e.params.HomeChainID {
			return validation(op, fmt.Errorf("%w: chain %d", ErrWrongDestinationChain, p.DestinationChainID))
		}

		mint, err := tx.GetMint(ctx, cfg.HomeToken)
		if err != nil {
			return collaborator(op, fmt.Errorf("home token: %w", err))
		}

		expected := token.AssociatedAccount(p.DestinationAccount, cfg.HomeToken)
		switch {
		case e.mode.Mode() == ModeWrapped && req.DestinationAccount != expected:
			return validation(op, fmt.Errorf("%w: expected %s, got %s", ErrDestinationMismatch, expected, req.DestinationAccount))
		case !req.DestinationAccount.IsZero() && req.DestinationAccount != expected:
			return validation(op, fmt.Errorf("%w: expected %s, got %s", ErrDestinationMismatch, expected, req.DestinationAccount))
		}

		native, err := amount.Denormalize(p.Amount, mint.Decimals)
		if err != nil {
			return arithmetic(op, err)
		}

		if err := e.mode.Credit(ctx, tx, cfg, p.DestinationAccount, native); err != nil {
			return err
		}

		err = replay.Claim(ctx, tx, &replay.Record{
			Key:         key,
			BatchID:     env.BatchID,
			MessageHash: req.MessageHash,
			Payload:     env.Payload,
			ReceivedAt:  e.now().UTC(),
		})
		if errors.Is(err, replay.ErrAlreadyClaimed) {
			return replayErr(op, err)
		}
		if err != nil {
			return collaborator(op, err)
		}

		receipt = &InReceipt{
			SourceChainID:      env.EmitterChain,
			Sequence:           env.Sequence,
			Recipient:          p.DestinationAccount,
			DestinationAccount: expected,
			Credited:           native,
			WireAmount:         p.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}
