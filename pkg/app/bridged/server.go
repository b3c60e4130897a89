// Package bridged implements app.Runner for the bridge daemon.
package bridged

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/cat-bridge/pkg/api"
	apphttp "github.com/chainsafe/cat-bridge/pkg/app/http"
	"github.com/chainsafe/cat-bridge/pkg/bridge"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/config"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/pgutil"
	"github.com/chainsafe/cat-bridge/pkg/store/memory"
	"github.com/chainsafe/cat-bridge/pkg/store/pg"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

const defaultHTTPMiddlewareTimeout = 60 * time.Second

// Server holds configuration for the bridge daemon.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new bridge daemon Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run opens the ledger, assembles the engine and serves the API.
// It blocks until an OS shutdown signal is received or a fatal server error occurs.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting CAT bridge",
		zap.String("mode", cfg.Bridge.Mode),
		zap.String("storage", cfg.Storage.Driver),
	)

	store, closeStore, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, err := NewService(ctx, cfg, store, logger)
	if err != nil {
		return err
	}

	return apphttp.ServeAndWait(ctx, NewRouter(cfg, svc, logger), logger, &cfg.Server)
}

// OpenStore selects the ledger backend named by the storage section.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (bridge.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := pgutil.ConnectDB(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connection established", zap.String("database", cfg.Database.Database))
		return pg.NewStore(db), func() { _ = db.Close() }, nil
	case config.StorageMemory, "":
		logger.Warn("Using in-memory ledger; state is lost on restart")
		return memory.NewStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// NewService bootstraps the messaging protocol state, creates the configured
// wrapped token if it is missing and returns the logged engine.
func NewService(ctx context.Context, cfg *config.Config, store bridge.Store, logger *zap.Logger) (bridge.Service, error) {
	programID, err := chain.ParseAddress(cfg.Bridge.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("bridge program id: %w", err)
	}
	coreID, err := chain.ParseAddress(cfg.Messaging.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("messaging program id: %w", err)
	}
	mode, err := bridge.ParseMode(cfg.Bridge.Mode)
	if err != nil {
		return nil, err
	}
	dust, err := bridge.ParseDustPolicy(cfg.Bridge.DustPolicy)
	if err != nil {
		return nil, err
	}

	homeChain := chain.ID(cfg.Bridge.HomeChainID)
	core := messaging.NewCore(coreID, homeChain)

	err = store.RunInTx(ctx, func(ctx context.Context, tx bridge.Tx) error {
		st, err := core.Bootstrap(ctx, tx, cfg.Messaging.Fee)
		if err != nil {
			return err
		}
		logger.Info("Messaging protocol ready",
			zap.Stringer("bridge", st.Bridge),
			zap.Stringer("fee_collector", st.FeeCollector),
			zap.Uint64("fee", st.Fee),
		)
		if cfg.Bridge.WrappedToken == nil {
			return nil
		}
		return ensureWrappedToken(ctx, tx, cfg.Bridge.WrappedToken, logger)
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap ledger: %w", err)
	}

	engine, err := bridge.NewEngine(store, core, bridge.Params{
		ProgramID:   programID,
		HomeChainID: homeChain,
		Mode:        mode,
		DustPolicy:  dust,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return bridge.NewLog(engine, logger), nil
}

func ensureWrappedToken(ctx context.Context, tx bridge.Tx, wt *config.WrappedTokenConfig, logger *zap.Logger) error {
	addr, err := chain.ParseAddress(wt.Address)
	if err != nil {
		return fmt.Errorf("wrapped token address: %w", err)
	}
	authority, err := chain.ParseAddress(wt.Authority)
	if err != nil {
		return fmt.Errorf("wrapped token authority: %w", err)
	}
	err = token.CreateMint(ctx, tx, &token.Mint{
		Address:   addr,
		Decimals:  wt.Decimals,
		MaxSupply: wt.MaxSupply,
		Authority: authority,
	})
	if errors.Is(err, token.ErrAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create wrapped token: %w", err)
	}
	logger.Info("Wrapped token created", zap.Stringer("mint", addr), zap.Uint8("decimals", wt.Decimals))
	return nil
}

// NewRouter mounts health, metrics and the bridge API.
func NewRouter(cfg *config.Config, svc bridge.Service, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultHTTPMiddlewareTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	api.RegisterRoutes(r, svc, api.NewAuthenticator(&cfg.Auth), logger)
	return r
}
