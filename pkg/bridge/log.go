package bridge

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/replay"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

const serviceName = "BridgeService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the bridge Service.
// State-changing methods log entry and exit at info level; lookups log at debug.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		fields = append(fields, zap.String("kind", KindOf(err).String()), zap.Error(err))
		ls.logger.Error(method+" failed", fields...)
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

func (ls *logService) started(method string, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
	)
	ls.logger.Info(method+" started", fields...)
}

func (ls *logService) Initialize(ctx context.Context, caller chain.Address, req *InitializeRequest) (cfg *Config, err error) {
	start := time.Now()
	ls.started("Initialize", zap.Stringer("caller", caller))
	defer func() {
		if err != nil {
			ls.done("Initialize", start, err)
			return
		}
		ls.done("Initialize", start, nil,
			zap.String("mode", string(cfg.Mode)),
			zap.Stringer("home_token", cfg.HomeToken),
			zap.Stringer("emitter", cfg.Emitter),
		)
	}()
	return ls.svc.Initialize(ctx, caller, req)
}

func (ls *logService) TransferOwnership(ctx context.Context, caller, newOwner chain.Address) (cfg *Config, err error) {
	start := time.Now()
	ls.started("TransferOwnership", zap.Stringer("caller", caller), zap.Stringer("new_owner", newOwner))
	defer func() {
		ls.done("TransferOwnership", start, err)
	}()
	return ls.svc.TransferOwnership(ctx, caller, newOwner)
}

func (ls *logService) RegisterEmitter(ctx context.Context, caller chain.Address, rec emitter.Record) (err error) {
	start := time.Now()
	ls.started("RegisterEmitter",
		zap.Stringer("caller", caller),
		zap.Uint64("chain_id", uint64(rec.ChainID)),
		zap.Stringer("emitter", rec.Address),
	)
	defer func() {
		ls.done("RegisterEmitter", start, err)
	}()
	return ls.svc.RegisterEmitter(ctx, caller, rec)
}

func (ls *logService) MintTokens(ctx context.Context, caller chain.Address, req *MintRequest) (acc *token.Account, err error) {
	start := time.Now()
	var recipient chain.Address
	var amt uint64
	if req != nil {
		recipient, amt = req.Recipient, req.Amount
	}
	ls.started("MintTokens",
		zap.Stringer("caller", caller),
		zap.Stringer("recipient", recipient),
		zap.Uint64("amount", amt),
	)
	defer func() {
		if err != nil {
			ls.done("MintTokens", start, err)
			return
		}
		ls.done("MintTokens", start, nil, zap.Uint64("balance", acc.Balance))
	}()
	return ls.svc.MintTokens(ctx, caller, req)
}

func (ls *logService) BridgeOut(ctx context.Context, caller chain.Address, req *OutRequest) (r *OutReceipt, err error) {
	start := time.Now()
	fields := []zap.Field{zap.Stringer("caller", caller)}
	if req != nil {
		fields = append(fields,
			zap.Uint64("amount", req.Amount),
			zap.Uint64("recipient_chain_id", uint64(req.RecipientChainID)),
			zap.Stringer("recipient_account", req.RecipientAccount),
		)
	}
	ls.started("BridgeOut", fields...)
	defer func() {
		if err != nil {
			ls.done("BridgeOut", start, err)
			return
		}
		ls.done("BridgeOut", start, nil,
			zap.Uint64("sequence", r.Sequence),
			zap.Uint64("debited", r.Debited),
			zap.Stringer("wire_amount", r.WireAmount),
			zap.Uint64("dust", r.Dust),
			zap.Uint64("fee_paid", r.FeePaid),
			zap.Stringer("message_hash", r.MessageHash),
		)
	}()
	return ls.svc.BridgeOut(ctx, caller, req)
}

func (ls *logService) BridgeIn(ctx context.Context, caller chain.Address, req *InRequest) (r *InReceipt, err error) {
	start := time.Now()
	fields := []zap.Field{zap.Stringer("caller", caller)}
	if req != nil {
		fields = append(fields, zap.Stringer("message_hash", req.MessageHash))
	}
	ls.started("BridgeIn", fields...)
	defer func() {
		if err != nil {
			ls.done("BridgeIn", start, err)
			return
		}
		ls.done("BridgeIn", start, nil,
			zap.Uint64("source_chain_id", uint64(r.SourceChainID)),
			zap.Uint64("sequence", r.Sequence),
			zap.Stringer("recipient", r.Recipient),
			zap.Uint64("credited", r.Credited),
		)
	}()
	return ls.svc.BridgeIn(ctx, caller, req)
}

func (ls *logService) DeliverMessage(ctx context.Context, env *messaging.Envelope) (hash chain.Hash, err error) {
	start := time.Now()
	fields := []zap.Field{}
	if env != nil {
		fields = append(fields,
			zap.Uint64("emitter_chain", uint64(env.EmitterChain)),
			zap.Stringer("emitter", env.EmitterAddress),
			zap.Uint64("sequence", env.Sequence),
		)
	}
	ls.started("DeliverMessage", fields...)
	defer func() {
		ls.done("DeliverMessage", start, err, zap.Stringer("message_hash", hash))
	}()
	return ls.svc.DeliverMessage(ctx, env)
}

func (ls *logService) debug(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	ls.logger.Debug(method, fields...)
}

func (ls *logService) Config(ctx context.Context) (cfg *Config, err error) {
	defer func(start time.Time) { ls.debug("Config", start, err) }(time.Now())
	return ls.svc.Config(ctx)
}

func (ls *logService) Emitter(ctx context.Context, chainID chain.ID) (rec *emitter.Record, err error) {
	defer func(start time.Time) {
		ls.debug("Emitter", start, err, zap.Uint64("chain_id", uint64(chainID)))
	}(time.Now())
	return ls.svc.Emitter(ctx, chainID)
}

func (ls *logService) Emitters(ctx context.Context) (recs []*emitter.Record, err error) {
	defer func(start time.Time) {
		ls.debug("Emitters", start, err, zap.Int("count", len(recs)))
	}(time.Now())
	return ls.svc.Emitters(ctx)
}

func (ls *logService) Received(ctx context.Context, key replay.Key) (rec *replay.Record, err error) {
	defer func(start time.Time) {
		ls.debug("Received", start, err, zap.Stringer("key", key))
	}(time.Now())
	return ls.svc.Received(ctx, key)
}

func (ls *logService) Posted(ctx context.Context, sequence uint64) (msg *messaging.PostedMessage, err error) {
	defer func(start time.Time) {
		ls.debug("Posted", start, err, zap.Uint64("sequence", sequence))
	}(time.Now())
	return ls.svc.Posted(ctx, sequence)
}

func (ls *logService) Balances(ctx context.Context, owner chain.Address) (b *Balances, err error) {
	defer func(start time.Time) {
		ls.debug("Balances", start, err, zap.Stringer("owner", owner))
	}(time.Now())
	return ls.svc.Balances(ctx, owner)
}
