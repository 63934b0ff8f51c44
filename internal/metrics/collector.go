// internal/metrics/collector.go
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pumpcurve"

// Cycle outcome labels
const (
	StatusSuccess   = "success"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// Collector owns the monitor's Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	cycles        *prometheus.CounterVec
	cycleDuration prometheus.Histogram
	rpcLatency    *prometheus.HistogramVec
	tokenPrice    prometheus.Gauge
	marketCap     prometheus.Gauge
	solPrice      prometheus.Gauge
	curveComplete prometheus.Gauge
	lifecycle     *prometheus.GaugeVec
}

// NewCollector creates a collector backed by its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		cycles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "poll_cycles_total",
				Help:      "Total number of poll cycles by outcome",
			},
			[]string{"status"},
		),
		cycleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "poll_cycle_duration_seconds",
				Help:      "Poll cycle duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
			},
		),
		rpcLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpc_latency_seconds",
				Help:      "RPC request latency in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"method", "status"},
		),
		tokenPrice: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "token_price_usd",
			Help:      "Last computed token price in USD",
		}),
		marketCap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "token_market_cap_usd",
			Help:      "Last computed token market cap in USD",
		}),
		solPrice: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sol_price_usd",
			Help:      "Last SOL/USD reference price",
		}),
		curveComplete: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bonding_curve_complete",
			Help:      "1 when the bonding curve reports completion",
		}),
		lifecycle: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "token_lifecycle",
				Help:      "1 for the current lifecycle state of the token",
			},
			[]string{"state"},
		),
	}

	c.registry.MustRegister(
		c.cycles,
		c.cycleDuration,
		c.rpcLatency,
		c.tokenPrice,
		c.marketCap,
		c.solPrice,
		c.curveComplete,
		c.lifecycle,
	)
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the metrics in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordCycle records the outcome of one poll cycle.
func (c *Collector) RecordCycle(duration time.Duration, err error) {
	status := StatusSuccess
	switch {
	case errors.Is(err, context.Canceled):
		status = StatusCancelled
	case err != nil:
		status = StatusFailed
	}
	c.cycles.WithLabelValues(status).Inc()
	c.cycleDuration.Observe(duration.Seconds())
}

// ObserveToken publishes the latest computed values.
func (c *Collector) ObserveToken(priceUSD, marketCapUSD, solUSD float64, complete bool, state string) {
	c.tokenPrice.Set(priceUSD)
	c.marketCap.Set(marketCapUSD)
	c.solPrice.Set(solUSD)
	if complete {
		c.curveComplete.Set(1)
	} else {
		c.curveComplete.Set(0)
	}
	c.lifecycle.Reset()
	c.lifecycle.WithLabelValues(state).Set(1)
}

// RecordRPCLatency records one RPC round trip.
func (c *Collector) RecordRPCLatency(method string, duration time.Duration, success bool) {
	status := StatusSuccess
	if !success {
		status = StatusFailed
	}
	c.rpcLatency.WithLabelValues(method, status).Observe(duration.Seconds())
}
