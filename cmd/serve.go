package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/ai"
	"github.com/jeevibe/engine/internal/catalog"
	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/config"
	"github.com/jeevibe/engine/internal/httpapi"
	"github.com/jeevibe/engine/internal/jobs"
	"github.com/jeevibe/engine/internal/quota"
	"github.com/jeevibe/engine/internal/selection"
	"github.com/jeevibe/engine/internal/session"
	"github.com/jeevibe/engine/internal/snapshot"
	"github.com/jeevibe/engine/internal/spacedrep"
	"github.com/jeevibe/engine/internal/store"
)

const catalogCacheTTL = 5 * time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// app holds the wired service graph shared by serve, job and seed.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	st       *store.Store
	importer *catalog.Importer
	runner   *jobs.Runner
	server   *httpapi.Server
}

func (a *app) Close() {
	if err := a.st.Close(); err != nil {
		a.log.Warn("store close failed", zap.Error(err))
	}
	_ = a.log.Sync()
}

// buildApp opens the store and wires every service. The AI assistant is
// optional: when no provider is configured the engine serves catalog
// questions only.
func buildApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	if cfg.DB.Path != ":memory:" {
		if err := store.EnsureDir(cfg.DB.Path); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}
	st, err := store.Open(cfg.DB.Path, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := seedTiers(ctx, st.Tiers()); err != nil {
		st.Close()
		return nil, fmt.Errorf("seed tiers: %w", err)
	}

	clk := clock.System()
	index := catalog.NewIndex(st.Questions(), catalogCacheTTL, log)
	importer, err := catalog.NewImporter(st.Questions())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("build importer: %w", err)
	}
	reviews := spacedrep.NewScheduler(st.Reviews(), clk)
	gate := quota.NewGate(st.Quotas(), st.Tiers(), clk, log)
	snaps := snapshot.NewService(st.Snapshots(), clk, log)
	selector := selection.New(index, reviews, st.Sessions(), log)

	var assistant *ai.Assistant
	if cfg.AI.Provider != "" {
		provider, perr := ai.NewProvider(ctx, cfg.AI, log)
		if perr != nil {
			log.Warn("AI provider unavailable, generation and tutoring disabled", zap.Error(perr))
		} else {
			assistant = ai.NewAssistant(provider)
		}
	}

	coord := session.NewCoordinator(session.Deps{
		Users:     st.Users(),
		Sessions:  st.Sessions(),
		Responses: st.Responses(),
		Questions: st.Questions(),
		Selector:  selector,
		Reviews:   reviews,
		Gate:      gate,
		Snapshots: snaps,
		Assistant: assistant,
		Clock:     clk,
		Log:       log,
	})

	runner := jobs.NewRunner(st.Users(), st.Questions(), st.Tiers(), snaps, nil, clk, log)

	server := httpapi.NewServer(
		httpapi.Config{CronSecret: cfg.Auth.CronSecret, AdminUIDs: cfg.Auth.AdminUIDs},
		coord, st.Users(), st.Questions(), st.Tiers(), snaps, gate, assistant, runner, importer, index, clk, log,
	)

	return &app{cfg: cfg, log: log, st: st, importer: importer, runner: runner, server: server}, nil
}

// seedTiers writes the default tier configs for any tier not yet present,
// so a fresh database serves without an admin bootstrap step.
func seedTiers(ctx context.Context, tiers store.TierRepo) error {
	for _, t := range quota.DefaultTiers() {
		if _, err := tiers.Get(ctx, t.Name); err == nil {
			continue
		}
		if err := tiers.Upsert(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           a.server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	a.log.Info("listening", zap.String("addr", a.cfg.Server.Addr))

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		a.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
