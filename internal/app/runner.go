// internal/app/runner.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/pumpcurve-monitor/internal/blockchain"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/blockchain/solbc"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/config"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/dex/pumpfun"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/metrics"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/monitor"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/pricefeed"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/ui/style"
)

// Dependencies lets callers replace the network-facing components.
// Nil fields are built from the configuration.
type Dependencies struct {
	Chain     blockchain.Client
	PriceFeed pricefeed.Feed
	Output    io.Writer
}

// Runner owns the wired monitor and its lifecycle.
type Runner struct {
	logger   *zap.Logger
	config   *config.Config
	poller   *monitor.Poller
	metrics  *metrics.Collector
	shutdown *ShutdownHandler
	signals  chan os.Signal
}

// NewRunner wires the monitor for the token named in cfg.
func NewRunner(cfg *config.Config, logger *zap.Logger, deps Dependencies) (*Runner, error) {
	pf := pumpfun.GetDefaultConfig()
	if err := pf.SetupForToken(cfg.TokenAddress, cfg.PumpProgram, logger); err != nil {
		return nil, fmt.Errorf("failed to configure token: %w", err)
	}
	pda, err := pf.BondingCurveAddress()
	if err != nil {
		return nil, err
	}
	logger.Info("Watching bonding curve",
		zap.String("bonding_curve", pda.Address.String()),
		zap.Uint8("bump", pda.Bump))

	shutdown := NewShutdownHandler(logger.Named("shutdown"), 0)
	collector := metrics.NewCollector()

	chain := deps.Chain
	if chain == nil {
		client := solbc.NewClient(cfg.RPCEndpoint, logger)
		client.SetLatencyRecorder(collector)
		shutdown.Add("rpc", client)
		shutdown.AddFunc("rpc-stats", func() error {
			success, failures, latency := client.GetMetrics()
			logger.Info("RPC statistics",
				zap.Uint64("success", success),
				zap.Uint64("errors", failures),
				zap.Duration("avg_latency", latency))
			return nil
		})
		chain = client
	}

	feed := deps.PriceFeed
	if feed == nil {
		cg := pricefeed.NewCoinGecko(cfg.PriceFeedURL, cfg.PriceFeedTimeout, logger)
		shutdown.Add("price-feed", cg)
		feed = cg
	}

	out := deps.Output
	if out == nil {
		out = os.Stdout
	}

	service, err := monitor.NewTokenService(monitor.TokenServiceConfig{
		Mint:      pf.Mint,
		ProgramID: pf.ContractAddress,
		Chain:     chain,
		PriceFeed: feed,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	poller := monitor.NewPoller(monitor.PollerConfig{
		Source:       service,
		Reporter:     style.NewReportWriter(out),
		Interval:     cfg.PollInterval,
		CycleTimeout: cfg.CycleTimeout,
		Recorder:     collector,
		Logger:       logger,
	})

	return &Runner{
		logger:   logger,
		config:   cfg,
		poller:   poller,
		metrics:  collector,
		shutdown: shutdown,
		signals:  make(chan os.Signal, 1),
	}, nil
}

// Run polls until ctx is cancelled or SIGINT/SIGTERM arrives.
func (r *Runner) Run(ctx context.Context) error {
	signal.Notify(r.signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(r.signals)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case sig := <-r.signals:
			r.logger.Info("Signal received", zap.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	g.Go(func() error {
		err := r.poller.Run(gCtx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if r.config.MetricsAddr != "" {
		g.Go(func() error {
			return r.metrics.Serve(gCtx, r.config.MetricsAddr, r.logger.Named("metrics"))
		})
	}

	err := g.Wait()
	if shutdownErr := r.shutdown.Shutdown(context.Background()); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	r.logger.Info("Monitor stopped")
	return err
}
