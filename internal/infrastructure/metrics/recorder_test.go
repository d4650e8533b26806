package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
)

func TestRecorder_Counts(t *testing.T) {
	r := NewRecorder()

	r.RecordMenuOpened(entity.MenuMain)
	r.RecordMenuOpened(entity.MenuMain)
	r.RecordMenuOpened(entity.MenuPointScan)
	r.RecordAction(entity.ActionCopy)
	r.RecordAutoScanTick()
	r.RecordAutoScanTick()
	r.RecordError(entity.ErrorInvalidColor)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.menus.WithLabelValues("main")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.menus.WithLabelValues("point_scan")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.actions.WithLabelValues("copy")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.ticks))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errors.WithLabelValues(string(entity.ErrorInvalidColor))))
}

func TestRecorder_Exposition(t *testing.T) {
	r := NewRecorder()
	r.RecordAutoScanTick()

	expected := `
# HELP switchscan_auto_scan_ticks_total Total number of automatic scan moves
# TYPE switchscan_auto_scan_ticks_total counter
switchscan_auto_scan_ticks_total 1
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "switchscan_auto_scan_ticks_total"))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.RecordError(entity.ErrorMissingLocation)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `switchscan_errors_total{type="missing_location"} 1`)
}

func TestRecorder_ServeStopsWithContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console")))
	done := make(chan error, 1)
	go func() { done <- NewRecorder().Serve(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
