// Package metrics counts switch access activity with prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
)

const namespace = "switchscan"

const shutdownTimeout = 5 * time.Second

// Recorder implements port.Metrics on its own registry.
type Recorder struct {
	registry *prometheus.Registry
	menus    *prometheus.CounterVec
	actions  *prometheus.CounterVec
	ticks    prometheus.Counter
	errors   *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		menus: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "menus_opened_total",
				Help:      "Total number of action menus opened",
			},
			[]string{"menu"},
		),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_performed_total",
				Help:      "Total number of actions performed",
			},
			[]string{"action"},
		),
		ticks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auto_scan_ticks_total",
				Help:      "Total number of automatic scan moves",
			},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of recorded errors",
			},
			[]string{"type"},
		),
	}
	r.registry.MustRegister(r.menus, r.actions, r.ticks, r.errors)
	return r
}

func (r *Recorder) RecordMenuOpened(menu entity.MenuType) {
	r.menus.WithLabelValues(menu.String()).Inc()
}

func (r *Recorder) RecordAction(action entity.MenuAction) {
	r.actions.WithLabelValues(string(action)).Inc()
}

func (r *Recorder) RecordAutoScanTick() {
	r.ticks.Inc()
}

func (r *Recorder) RecordError(errType entity.ErrorType) {
	r.errors.WithLabelValues(string(errType)).Inc()
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	log := logging.FromContext(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("serving metrics")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown: %w", err)
		}
		return nil
	}
}
