package bridged

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/cat-bridge/pkg/api"
	"github.com/chainsafe/cat-bridge/pkg/bridge"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/config"
	"github.com/chainsafe/cat-bridge/pkg/store/memory"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

const testConfig = `
bridge:
  program_id: "0x0a"
messaging:
  program_id: "0x0b"
  fee: 100
auth:
  jwt_secret: "0123456789abcdef0123"
monitoring:
  enabled: true
`

func loadTestConfig(t *testing.T, doc string) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	return cfg
}

func call(t *testing.T, h http.Handler, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_EndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg := loadTestConfig(t, testConfig)
	store := memory.NewStore()

	svc, err := NewService(ctx, cfg, store, zap.NewNop())
	require.NoError(t, err)
	router := NewRouter(cfg, svc, zap.NewNop())

	authn := api.NewAuthenticator(&cfg.Auth)
	owner := chain.BytesToAddress([]byte("owner"))
	ownerToken, err := authn.Issue(owner, time.Minute)
	require.NoError(t, err)

	rec := call(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, router, http.MethodGet, "/api/v1/config", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(t, router, http.MethodPost, "/api/v1/initialize", ownerToken, map[string]any{
		"decimals":       9,
		"initial_supply": "5000000000",
		"finality":       "finalized",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(t, router, http.MethodPost, "/api/v1/emitters", ownerToken, map[string]any{
		"chain_id": 2,
		"address":  chain.BytesToAddress([]byte("foreign")).Hex(),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.NoError(t, store.RunInTx(ctx, func(ctx context.Context, tx bridge.Tx) error {
		return token.Airdrop(ctx, tx, owner, 1_000)
	}))

	rec = call(t, router, http.MethodPost, "/api/v1/bridge/out", ownerToken, map[string]any{
		"amount":             "1500000005",
		"recipient_chain_id": 2,
		"recipient_account":  chain.BytesToAddress([]byte("bob")).Hex(),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var receipt bridge.OutReceipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	require.Equal(t, uint64(5), receipt.Dust)
	require.Equal(t, "150000000", receipt.WireAmount.String())
	require.Equal(t, uint64(100), receipt.FeePaid)

	rec = call(t, router, http.MethodGet, "/api/v1/messages/0", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, router, http.MethodGet, "/api/v1/balances/"+owner.Hex(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var b bridge.Balances
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	require.Equal(t, uint64(5_000_000_000-1_500_000_005), b.Token)
	require.Equal(t, uint64(900), b.Native)

	rec = call(t, router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewService_WrappedTokenBootstrap(t *testing.T) {
	ctx := context.Background()
	cfg := loadTestConfig(t, `
bridge:
  mode: wrapped
  program_id: "0x0a"
  wrapped_token:
    address: "0x11"
    authority: "0x12"
    decimals: 6
messaging:
  program_id: "0x0b"
auth:
  jwt_secret: "0123456789abcdef0123"
`)
	store := memory.NewStore()

	svc, err := NewService(ctx, cfg, store, zap.NewNop())
	require.NoError(t, err)
	// a restart finds the token already present
	_, err = NewService(ctx, cfg, store, zap.NewNop())
	require.NoError(t, err)

	owner := chain.BytesToAddress([]byte("owner"))
	bridgeCfg, err := svc.Initialize(ctx, owner, &bridge.InitializeRequest{Token: chain.MustParseAddress("0x11")})
	require.NoError(t, err)
	require.Equal(t, bridge.ModeWrapped, bridgeCfg.Mode)
	require.False(t, bridgeCfg.Vault.IsZero())
}

func TestNewService_InvalidProgramID(t *testing.T) {
	cfg := loadTestConfig(t, testConfig)
	cfg.Bridge.ProgramID = "not-hex"

	_, err := NewService(context.Background(), cfg, memory.NewStore(), zap.NewNop())
	require.Error(t, err)
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := loadTestConfig(t, testConfig)
	store, closeStore, err := OpenStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, store)
	closeStore()

	cfg.Storage.Driver = "redis"
	_, _, err = OpenStore(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
}

func TestServer_RunNilConfig(t *testing.T) {
	require.Error(t, NewServer(nil).Run())
}
