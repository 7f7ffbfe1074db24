// Package metrics exposes game counters to prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics holds the game counters on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Ticks         prometheus.Counter
	Transitions   *prometheus.CounterVec
	Interactions  *prometheus.CounterVec
	ScansComplete prometheus.Counter
	InventorySize prometheus.Gauge
}

// New creates the counters under the given namespace
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Number of game loop ticks",
		}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scene_transitions_total",
			Help:      "Scene transitions by source and target scene",
		}, []string{"from", "to"}),
		Interactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interactions_total",
			Help:      "Overworld interactions by kind",
		}, []string{"kind"}),
		ScansComplete: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_completed_total",
			Help:      "Number of scanner minigames completed",
		}),
		InventorySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inventory_items",
			Help:      "Items currently carried",
		}),
	}

	m.registry.MustRegister(
		m.Ticks,
		m.Transitions,
		m.Interactions,
		m.ScansComplete,
		m.InventorySize,
		collectors.NewGoCollector(),
	)
	return m
}

// Tick counts one loop tick
func (m *Metrics) Tick() {
	if m == nil {
		return
	}
	m.Ticks.Inc()
}

// Transition counts a scene change
func (m *Metrics) Transition(from, to string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(from, to).Inc()
}

// Interaction counts an overworld interaction
func (m *Metrics) Interaction(kind string) {
	if m == nil {
		return
	}
	m.Interactions.WithLabelValues(kind).Inc()
}

// ScanCompleted counts a finished scan
func (m *Metrics) ScanCompleted() {
	if m == nil {
		return
	}
	m.ScansComplete.Inc()
}

// SetInventorySize records the number of carried items
func (m *Metrics) SetInventorySize(n int) {
	if m == nil {
		return
	}
	m.InventorySize.Set(float64(n))
}

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done
func (m *Metrics) Serve(ctx context.Context, addr string, logger *zap.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		logger.Info("metrics server started", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
	return nil
}
