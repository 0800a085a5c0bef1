package monitoring

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartMonitoringReportsEveryResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu      sync.Mutex
		results []error
	)

	errDown := errors.New("down")
	calls := 0

	check := func(context.Context) error {
		calls++
		if calls == 2 {
			return errDown
		}

		return nil
	}

	report := func(err error) {
		mu.Lock()
		defer mu.Unlock()

		results = append(results, err)
	}

	m := NewMonitor(MonitorConfig{Interval: 10 * time.Millisecond})
	done := make(chan struct{})

	go func() {
		defer close(done)
		m.StartMonitoring(ctx, check, report)
	}()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(results) >= 3
	}, 2*time.Second, 5*time.Millisecond)

	m.Stop(ctx)
	m.Stop(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop")
	}

	mu.Lock()
	defer mu.Unlock()

	require.GreaterOrEqual(t, len(results), 3)
	assert.NoError(t, results[0])
	require.ErrorIs(t, results[1], errDown)
	assert.NoError(t, results[2])
}

func TestStartMonitoringStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewMonitor(MonitorConfig{Interval: time.Hour})
	done := make(chan struct{})

	go func() {
		defer close(done)
		m.StartMonitoring(ctx, func(context.Context) error { return nil }, func(error) {})
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestHTTPProbe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			http.NotFound(w, r)
			return
		}

		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	addr := ts.Listener.Addr()

	require.NoError(t, HTTPProbe(addr, "/healthz")(context.Background()))

	err := HTTPProbe(addr, "/missing")(context.Background())
	require.ErrorIs(t, err, errProbeStatus)
	assert.Contains(t, err.Error(), "404")
}

func TestProbeHost(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"0.0.0.0:5000", "127.0.0.1:5000"},
		{"[::]:5000", "[::1]:5000"},
		{"10.1.2.3:8080", "10.1.2.3:8080"},
	}

	for _, tt := range tests {
		addr, err := net.ResolveTCPAddr("tcp", tt.addr)
		require.NoError(t, err)

		assert.Equal(t, tt.want, probeHost(addr), tt.addr)
	}
}
