package bridge

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/chainsafe/cat-bridge/internal/metrics"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

// Initialize creates the bridge configuration. It can run only once; the
// caller becomes the owner.
//
// 1. Reject a second initialization
// 2. Link the messaging protocol's addresses
// 3. Let the transfer mode take custody of the home token
// 4. Store the configuration
func (e *Engine) Initialize(ctx context.Context, caller chain.Address, req *InitializeRequest) (*Config, error) {
	const op = "initialize"
	if caller.IsZero() {
		return nil, validation(op, fmt.Errorf("%w: owner", ErrZeroAddress))
	}
	if req == nil {
		req = &InitializeRequest{}
	}

	var cfg *Config
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		if _, err := tx.GetConfig(ctx); err == nil {
			return validation(op, ErrAlreadyInitialized)
		} else if !errors.Is(err, ErrNotInitialized) {
			return collaborator(op, err)
		}

		state, err := e.core.State(ctx, tx)
		if err != nil {
			return collaborator(op, err)
		}

		emitterAddr := e.EmitterAddress()
		c := &Config{
			Owner: caller,
			Protocol: ProtocolAddresses{
				Bridge:       state.Bridge,
				FeeCollector: state.FeeCollector,
				Sequence:     e.core.SequenceAddress(emitterAddr),
			},
			BatchID:       req.BatchID,
			Finality:      req.Finality,
			Mode:          e.mode.Mode(),
			Emitter:       emitterAddr,
			HomeChainID:   e.params.HomeChainID,
			InitializedAt: e.now().UTC(),
		}
		if err := e.mode.Setup(ctx, tx, c, req); err != nil {
			return err
		}
		if err := tx.PutConfig(ctx, c); err != nil {
			return collaborator(op, err)
		}
		cfg = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.logger.Info("Bridge initialized",
		zap.String("mode", string(cfg.Mode)),
		zap.Stringer("owner", cfg.Owner),
		zap.Stringer("home_token", cfg.HomeToken),
	)
	return cfg, nil
}

// TransferOwnership hands the owner role to newOwner.
func (e *Engine) TransferOwnership(ctx context.Context, caller, newOwner chain.Address) (*Config, error) {
	const op = "transfer_ownership"
	var cfg *Config
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		c, err := e.loadConfig(ctx, op, tx)
		if err != nil {
			return err
		}
		if err := e.requireOwner(op, c, caller); err != nil {
			return err
		}
		if newOwner.IsZero() {
			return validation(op, fmt.Errorf("%w: new owner", ErrZeroAddress))
		}
		c.Owner = newOwner
		if err := tx.PutConfig(ctx, c); err != nil {
			return collaborator(op, err)
		}
		cfg = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// RegisterEmitter sets the trusted counter-party contract of a foreign chain.
// Re-registering a chain replaces its address.
func (e *Engine) RegisterEmitter(ctx context.Context, caller chain.Address, rec emitter.Record) error {
	const op = "register_emitter"
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		cfg, err := e.loadConfig(ctx, op, tx)
		if err != nil {
			return err
		}
		err = e.registry.Register(ctx, tx, caller, cfg.Owner, rec)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, emitter.ErrNotOwner):
			return authorization(op, err)
		case errors.Is(err, emitter.ErrInvalidChain), errors.Is(err, emitter.ErrZeroAddress):
			return validation(op, err)
		default:
			return collaborator(op, err)
		}
	})
	if err != nil {
		return err
	}
	metrics.EmitterRegistrations.WithLabelValues(strconv.FormatUint(uint64(rec.ChainID), 10)).Inc()
	return nil
}

// MintTokens mints new canonical supply. Owner only; bounded by max supply.
func (e *Engine) MintTokens(ctx context.Context, caller chain.Address, req *MintRequest) (*token.Account, error) {
	const op = "mint_tokens"
	canonical, ok := e.mode.(*Canonical)
	if !ok {
		return nil, validation(op, ErrWrongMode)
	}
	if req == nil || req.Amount == 0 {
		return nil, validation(op, ErrZeroAmount)
	}
	if req.Recipient.IsZero() {
		return nil, validation(op, fmt.Errorf("%w: recipient", ErrZeroAddress))
	}

	var out *token.Account
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		cfg, err := e.loadConfig(ctx, op, tx)
		if err != nil {
			return err
		}
		if err := e.requireOwner(op, cfg, caller); err != nil {
			return err
		}
		acc, err := token.OpenAssociated(ctx, tx, req.Recipient, cfg.HomeToken)
		if err != nil {
			return collaborator(op, err)
		}
		err = token.MintTo(ctx, tx, cfg.HomeToken, acc.Address, canonical.MintAuthority(), req.Amount)
		if errors.Is(err, token.ErrSupplyCap) {
			return validation(op, err)
		}
		if err != nil {
			return collaborator(op, err)
		}
		if out, err = tx.GetAccount(ctx, acc.Address); err != nil {
			return collaborator(op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeliverMessage hands an attested envelope to the messaging core so that it
// can be redeemed with BridgeIn.
func (e *Engine) DeliverMessage(ctx context.Context, env *messaging.Envelope) (chain.Hash, error) {
	const op = "deliver_message"
	if env == nil {
		return chain.Hash{}, validation(op, messaging.ErrEmptyPayload)
	}
	var hash chain.Hash
	err := e.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		h, err := e.core.Deliver(ctx, tx, env)
		if errors.Is(err, messaging.ErrEmptyPayload) {
			return validation(op, err)
		}
		if err != nil {
			return collaborator(op, err)
		}
		hash = h
		return nil
	})
	if err != nil {
		return chain.Hash{}, err
	}
	return hash, nil
}
