// Package bridge is the transfer engine: administrative operations on the
// bridge configuration, outbound transfers (debit, normalize, publish) and
// inbound transfers (verify, denormalize, credit, claim).
package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
)

// Params fixes the engine's identity and policies.
type Params struct {
	ProgramID   chain.Address
	HomeChainID chain.ID
	Mode        Mode
	DustPolicy  DustPolicy
}

var _ Service = (*Engine)(nil)

// Engine implements Service on top of a transactional Store.
type Engine struct {
	store    Store
	core     *messaging.Core
	registry *emitter.Registry
	mode     TransferMode
	params   Params
	logger   *zap.Logger
	now      func() time.Time
}

// NewEngine creates an engine. The core must belong to the same home chain.
func NewEngine(store Store, core *messaging.Core, params Params, logger *zap.Logger) (*Engine, error) {
	if store == nil {
		return nil, errors.New("nil store")
	}
	if core == nil {
		return nil, errors.New("nil messaging core")
	}
	if params.ProgramID.IsZero() {
		return nil, errors.New("program id is required")
	}
	if params.HomeChainID == 0 {
		params.HomeChainID = chain.HomeChainID
	}
	if core.ChainID() != params.HomeChainID {
		return nil, fmt.Errorf("messaging core chain %d does not match home chain %d", core.ChainID(), params.HomeChainID)
	}
	if params.DustPolicy == "" {
		params.DustPolicy = DustAccept
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var mode TransferMode
	switch params.Mode {
	case ModeWrapped:
		mode = NewWrapped(params.ProgramID)
	case ModeCanonical:
		mode = NewCanonical(params.ProgramID)
	default:
		return nil, fmt.Errorf("unknown bridge mode %q", params.Mode)
	}

	return &Engine{
		store:    store,
		core:     core,
		registry: emitter.NewRegistry(params.HomeChainID),
		mode:     mode,
		params:   params,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// WithClock replaces the engine's clock.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// TransferMode returns the mode the engine was built with.
func (e *Engine) TransferMode() TransferMode {
	return e.mode
}

// EmitterAddress is the address the bridge's outbound messages are attributed to.
func (e *Engine) EmitterAddress() chain.Address {
	return chain.DeriveAddress(e.params.ProgramID, []byte("emitter"))
}

// loadConfig reads the singleton inside a unit of work.
func (e *Engine) loadConfig(ctx context.Context, op string, tx Tx) (*Config, error) {
	cfg, err := tx.GetConfig(ctx)
	if errors.Is(err, ErrNotInitialized) {
		return nil, validation(op, ErrNotInitialized)
	}
	if err != nil {
		return nil, collaborator(op, err)
	}
	return cfg, nil
}

func (e *Engine) requireOwner(op string, cfg *Config, caller chain.Address) error {
	if caller != cfg.Owner {
		return authorization(op, ErrNotOwner)
	}
	return nil
}
