package bridge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/cat-bridge/pkg/bridge"
	"github.com/chainsafe/cat-bridge/pkg/bridge/mocks"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
)

func TestLogService_Success(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := mocks.NewService(t)
	want := &bridge.OutReceipt{Sequence: 4, Debited: 10}
	req := &bridge.OutRequest{Amount: 10, RecipientChainID: foreignChain, RecipientAccount: bob}
	svc.On("BridgeOut", mock.Anything, alice, req).Return(want, nil)

	got, err := bridge.NewLog(svc, zap.New(core)).BridgeOut(context.Background(), alice, req)
	require.NoError(t, err)
	require.Same(t, want, got)

	entries := logs.FilterField(zap.String("method", "BridgeOut")).All()
	require.Len(t, entries, 2)
	require.Equal(t, "BridgeOut started", entries[0].Message)
	require.Equal(t, "BridgeOut completed", entries[1].Message)
	require.Equal(t, zapcore.InfoLevel, entries[1].Level)
	require.Equal(t, uint64(4), entries[1].ContextMap()["sequence"])
}

func TestLogService_Failure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := mocks.NewService(t)
	rec := emitter.Record{ChainID: foreignChain, Address: chain.Address{}}
	svc.On("RegisterEmitter", mock.Anything, owner, rec).Return(&bridge.Error{Kind: bridge.KindValidation, Op: "register_emitter", Err: emitter.ErrZeroAddress})

	err := bridge.NewLog(svc, zap.New(core)).RegisterEmitter(context.Background(), owner, rec)
	require.ErrorIs(t, err, bridge.ErrValidation)

	failed := logs.FilterMessage("RegisterEmitter failed").All()
	require.Len(t, failed, 1)
	require.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	require.Equal(t, "ValidationError", failed[0].ContextMap()["kind"])
}

func TestLogService_LookupsLogAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := mocks.NewService(t)
	svc.On("Emitters", mock.Anything).Return([]*emitter.Record{{ChainID: foreignChain, Address: foreignEmitter}}, nil)

	recs, err := bridge.NewLog(svc, zap.New(core)).Emitters(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, "Emitters", entries[0].Message)
}
