package monitor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 10 * time.Second
	DefaultCycleTimeout = 10 * time.Second
)

// StateSource produces one token state per call.
type StateSource interface {
	GetTokenState(ctx context.Context) (*TokenState, error)
}

// Reporter receives the outcome of every poll cycle.
type Reporter interface {
	Report(state *TokenState)
	ReportError(err error)
}

// CycleRecorder collects per-cycle metrics.
type CycleRecorder interface {
	RecordCycle(duration time.Duration, err error)
	ObserveToken(priceUSD, marketCapUSD, solUSD float64, complete bool, state string)
}

// PollerConfig configures a Poller.
type PollerConfig struct {
	Source       StateSource
	Reporter     Reporter
	Interval     time.Duration // Pause between the end of one cycle and the start of the next
	CycleTimeout time.Duration // Deadline applied to every cycle
	Recorder     CycleRecorder // Optional
	Logger       *zap.Logger
}

// Poller runs the token state pipeline on a fixed cadence.
// Cycles never overlap: the next one is scheduled only after the previous one finished.
type Poller struct {
	source       StateSource
	reporter     Reporter
	interval     time.Duration
	cycleTimeout time.Duration
	recorder     CycleRecorder
	logger       *zap.Logger
}

// NewPoller creates a poller, filling in default durations.
func NewPoller(cfg PollerConfig) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	if cfg.CycleTimeout <= 0 {
		cfg.CycleTimeout = DefaultCycleTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Poller{
		source:       cfg.Source,
		reporter:     cfg.Reporter,
		interval:     cfg.Interval,
		cycleTimeout: cfg.CycleTimeout,
		recorder:     cfg.Recorder,
		logger:       cfg.Logger.Named("poller"),
	}
}

// Run polls until ctx is cancelled. The first cycle starts immediately.
// Cycle failures are reported and never stop the loop; Run returns ctx.Err() on shutdown.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("Starting token monitor",
		zap.Duration("interval", p.interval),
		zap.Duration("cycle_timeout", p.cycleTimeout))

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("Token monitor stopped")
			return ctx.Err()
		case <-timer.C:
			p.RunOnce(ctx)
			if ctx.Err() != nil {
				p.logger.Debug("Token monitor stopped")
				return ctx.Err()
			}
			timer.Reset(p.interval)
		}
	}
}

// RunOnce executes a single cycle and reports its outcome.
func (p *Poller) RunOnce(ctx context.Context) {
	cycleID := uuid.New().String()
	logger := p.logger.With(zap.String("cycle_id", cycleID))

	cycleCtx, cancel := context.WithTimeout(ctx, p.cycleTimeout)
	defer cancel()

	start := time.Now()
	state, err := p.source.GetTokenState(cycleCtx)
	elapsed := time.Since(start)
	if err != nil {
		// Shutdown in the middle of a cycle is not a cycle failure.
		if ctx.Err() != nil {
			p.record(elapsed, ctx.Err(), nil)
			return
		}
		p.record(elapsed, err, nil)
		logger.Error("Poll cycle failed",
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		if p.reporter != nil {
			p.reporter.ReportError(err)
		}
		return
	}

	p.record(elapsed, nil, state)
	logger.Debug("Poll cycle completed",
		zap.Duration("elapsed", elapsed),
		zap.Float64("price_usd", state.Price),
		zap.Float64("market_cap_usd", state.MarketCap),
		zap.String("state", string(state.State)))
	if p.reporter != nil {
		p.reporter.Report(state)
	}
}

func (p *Poller) record(elapsed time.Duration, err error, state *TokenState) {
	if p.recorder == nil {
		return
	}
	p.recorder.RecordCycle(elapsed, err)
	if state != nil {
		complete := state.Curve != nil && state.Curve.Complete
		p.recorder.ObserveToken(state.Price, state.MarketCap, state.SolPrice, complete, string(state.State))
	}
}
