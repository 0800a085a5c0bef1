package lifecycle

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/mfreeman451/networkhub/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func testConfig() *config.ServerConfig {
	cfg := config.Default()
	cfg.ListenAddr = "127.0.0.1:0"
	cfg.ShutdownTimeout = config.Duration(2 * time.Second)

	return &cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

type ready struct {
	httpAddr, grpcAddr net.Addr
}

func runInBackground(ctx context.Context, opts *ServerOptions) (<-chan ready, <-chan error) {
	readyCh := make(chan ready, 1)
	done := make(chan error, 1)

	opts.OnReady = func(h, g net.Addr) { readyCh <- ready{h, g} }

	go func() { done <- RunServer(ctx, opts) }()

	return readyCh, done
}

func waitReady(t *testing.T, readyCh <-chan ready, done <-chan error) ready {
	t.Helper()

	select {
	case r := <-readyCh:
		return r
	case err := <-done:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not become ready")
	}

	return ready{}
}

func TestRunServerBindFailure(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer occupied.Close()

	cfg := testConfig()
	cfg.ListenAddr = occupied.Addr().String()

	err = RunServer(context.Background(), &ServerOptions{
		ServiceName: "networkhub",
		Config:      cfg,
		Handler:     okHandler(),
	})

	require.ErrorIs(t, err, ErrBind)
	assert.Contains(t, err.Error(), occupied.Addr().String())
}

func TestRunServerGRPCBindFailure(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer occupied.Close()

	cfg := testConfig()
	cfg.GrpcAddr = occupied.Addr().String()

	err = RunServer(context.Background(), &ServerOptions{
		ServiceName: "networkhub",
		Config:      cfg,
		Handler:     okHandler(),
	})

	require.ErrorIs(t, err, ErrBind)
}

func TestRunServerServesAndStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var shutdownHooks atomic.Int32

	cfg := testConfig()
	cfg.GrpcAddr = "127.0.0.1:0"
	cfg.MaxConnections = 4

	readyCh, done := runInBackground(ctx, &ServerOptions{
		ServiceName: "networkhub",
		Config:      cfg,
		Handler:     okHandler(),
		OnShutdown:  []func(){func() { shutdownHooks.Add(1) }},
	})

	r := waitReady(t, readyCh, done)
	require.NotNil(t, r.grpcAddr)

	resp, err := http.Get("http://" + r.httpAddr.String() + "/")
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	conn, err := grpc.NewClient(r.grpcAddr.String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	defer conn.Close()

	checkCtx, checkCancel := context.WithTimeout(ctx, 5*time.Second)
	defer checkCancel()

	hc, err := healthpb.NewHealthClient(conn).Check(checkCtx, &healthpb.HealthCheckRequest{Service: "networkhub"})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, hc.GetStatus())

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Eventually(t, func() bool { return shutdownHooks.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestRunServerStopsOnSignal(t *testing.T) {
	readyCh, done := runInBackground(context.Background(), &ServerOptions{
		ServiceName: "networkhub",
		Config:      testConfig(),
		Handler:     okHandler(),
		Signals:     []os.Signal{syscall.SIGUSR1},
	})

	waitReady(t, readyCh, done)

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop on signal")
	}
}

func TestRunServerMirrorsHTTPHealthIntoGRPC(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var healthy atomic.Bool

	healthy.Store(true)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if !healthy.Load() {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}

		_, _ = w.Write([]byte("ok"))
	})

	cfg := testConfig()
	cfg.GrpcAddr = "127.0.0.1:0"

	readyCh, done := runInBackground(ctx, &ServerOptions{
		ServiceName:    "networkhub",
		Config:         cfg,
		Handler:        handler,
		HealthInterval: 20 * time.Millisecond,
	})

	r := waitReady(t, readyCh, done)

	conn, err := grpc.NewClient(r.grpcAddr.String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	defer conn.Close()

	hc := healthpb.NewHealthClient(conn)

	status := func() healthpb.HealthCheckResponse_ServingStatus {
		checkCtx, checkCancel := context.WithTimeout(ctx, time.Second)
		defer checkCancel()

		resp, err := hc.Check(checkCtx, &healthpb.HealthCheckRequest{Service: "networkhub"})
		if err != nil {
			return healthpb.HealthCheckResponse_UNKNOWN
		}

		return resp.GetStatus()
	}

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status())

	healthy.Store(false)
	assert.Eventually(t, func() bool {
		return status() == healthpb.HealthCheckResponse_NOT_SERVING
	}, 3*time.Second, 20*time.Millisecond)

	healthy.Store(true)
	assert.Eventually(t, func() bool {
		return status() == healthpb.HealthCheckResponse_SERVING
	}, 3*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
