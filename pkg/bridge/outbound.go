package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/cat-bridge/internal/metrics"
	"github.com/chainsafe/cat-bridge/pkg/amount"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/payload"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

// BridgeOut sends tokens to an account on a registered foreign chain.
//
// 1. Check the destination chain has a registered emitter (before any side effect)
// 2. Pay the protocol fee to the fee collector
// 3. Debit the caller (lock into the vault, or burn)
// 4. Normalize the debited amount to wire precision
// 5. Encode the payload and post it under a freshly reserved sequence
//
// Every step runs in one unit of work; any failure leaves no trace.
func (e *Engine) BridgeOut(ctx context.Context, caller chain.Address, req *OutRequest) (*OutReceipt, error) {
	const op = "bridge_out"
	start := time.Now()

	receipt, err := e.bridgeOut(ctx, caller, req)
	if err != nil {
		metrics.TransfersTotal.WithLabelValues("out", string(e.mode.Mode()), "failed").Inc()
		metrics.ErrorsTotal.WithLabelValues(op, KindOf(err).String()).Inc()
		return nil, err
	}

	metrics.TransfersTotal.WithLabelValues("out", string(e.mode.Mode()), "completed").Inc()
	metrics.TransferDuration.WithLabelValues("out").Observe(time.Since(start).Seconds())
	metrics.TransferAmount.WithLabelValues("out").Observe(wireFloat(receipt.WireAmount))
	metrics.LastSequence.Set(float64(receipt.Sequence))
	if receipt.Dust > 0 {
		metrics.DustTotal.WithLabelValues(string(e.mode.Mode())).Add(float64(receipt.Dust))
		e.logger.Debug("Outbound amount truncated",
			zap.Uint64("sequence", receipt.Sequence),
			zap.Uint64("dust", receipt.Dust),
		)
	}
	return receipt, nil
}

func (e *Engine) bridgeOut(ctx context.Context, caller chain.Address, req *OutRequest) (*OutReceipt, error) {
	const op = "bridge_out"
	if req == nil || req.Amount == 0 {
		return nil, validation(op, ErrZeroAmount)
	}
	if caller.IsZero() {
		return nil, validation(op, fmt.Errorf("%w: caller", ErrZeroAddress))
	}
	if req.RecipientAccount.IsZero() {
		return nil, validation(op, fmt.Errorf("%w: recipient account", ErrZeroAddress))
	}
	if e.mode.Mode() == ModeWrapped && req.RecipientContract.IsZero() {
		return nil, validation(op, fmt.Errorf("%w: recipient contract", ErrZeroAddress))
	}

	var receipt *OutReceipt
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		cfg, err := e.loadConfig(ctx, op, tx)
		if err != nil {
			return err
		}

		registered, err := e.registry.Exists(ctx, tx, req.RecipientChainID)
		if err != nil {
			return collaborator(op, err)
		}
		if !registered {
			return validation(op, fmt.Errorf("%w: %d", ErrUnregisteredChain, req.RecipientChainID))
		}

		state, err := e.core.State(ctx, tx)
		if err != nil {
			return collaborator(op, err)
		}
		if state.Bridge != cfg.Protocol.Bridge ||
			state.FeeCollector != cfg.Protocol.FeeCollector ||
			e.core.SequenceAddress(cfg.Emitter) != cfg.Protocol.Sequence {
			return collaborator(op, ErrProtocolMismatch)
		}

		mint, err := tx.GetMint(ctx, cfg.HomeToken)
		if err != nil {
			return collaborator(op, fmt.Errorf("home token: %w", err))
		}

		if state.Fee > 0 {
			if err := token.TransferNative(ctx, tx, caller, state.FeeCollector, state.Fee); err != nil {
				return collaborator(op, fmt.Errorf("pay message fee: %w", err))
			}
		}

		debited, err := e.mode.Debit(ctx, tx, cfg, caller, req.Amount)
		if err != nil {
			return err
		}

		wire, err := amount.Normalize(debited, mint.Decimals)
		if err != nil {
			return arithmetic(op, err)
		}
		if wire.IsZero() {
			return validation(op, fmt.Errorf("%w: %d with %d decimals", ErrAmountTooSmall, debited, mint.Decimals))
		}
		dust := amount.Dust(debited, mint.Decimals)
		if dust > 0 && e.params.DustPolicy == DustReject {
			return validation(op, fmt.Errorf("%w: %d", ErrDustRejected, dust))
		}

		p := &payload.Transfer{
			Amount:             wire,
			TokenDecimals:      mint.Decimals,
			SourceToken:        cfg.Emitter,
			SourceAccount:      token.AssociatedAccount(caller, cfg.HomeToken),
			SourceChainID:      e.params.HomeChainID,
			DestinationToken:   req.RecipientContract,
			DestinationAccount: req.RecipientAccount,
			DestinationChainID: req.RecipientChainID,
		}
		msg, err := e.core.Post(ctx, tx, messaging.PostRequest{
			Emitter:  cfg.Emitter,
			Program:  e.params.ProgramID,
			Payload:  p.Encode(),
			BatchID:  cfg.BatchID,
			Finality: cfg.Finality,
			FeePaid:  state.Fee,
		})
		if err != nil {
			if errors.Is(err, messaging.ErrFeeNotPaid) {
				return validation(op, err)
			}
			return collaborator(op, err)
		}

		receipt = &OutReceipt{
			Sequence:       msg.Sequence,
			MessageAccount: msg.Account,
			Emitter:        msg.Emitter,
			EmitterChainID: msg.EmitterChain,
			Debited:        debited,
			WireAmount:     wire,
			Dust:           dust,
			FeePaid:        msg.FeePaid,
			Payload:        msg.Payload,
			MessageHash:    msg.Envelope().Hash(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// wireFloat converts a wire amount to whole tokens for metrics.
func wireFloat(w amount.Wide) float64 {
	n, err := w.Uint64()
	if err != nil {
		return 0
	}
	return float64(n) / 1e8
}
