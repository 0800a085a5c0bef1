package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfreeman451/networkhub/pkg/config"
	"github.com/mfreeman451/networkhub/pkg/grpc"
	"github.com/mfreeman451/networkhub/pkg/monitoring"
	"golang.org/x/net/netutil"
)

const (
	MaxRecvSize       = 4 * 1024 * 1024 // 4MB
	MaxSendSize       = 4 * 1024 * 1024 // 4MB
	ShutdownTimeout   = 10 * time.Second
	HealthInterval    = 15 * time.Second
	readHeaderTimeout = 5 * time.Second
	healthPath        = "/healthz"
)

// ServerOptions holds configuration for running the web server.
type ServerOptions struct {
	ServiceName string
	Config      *config.ServerConfig
	Handler     http.Handler

	// OnShutdown runs when graceful shutdown starts, before connections drain.
	OnShutdown []func()

	// OnReady, if set, receives the bound addresses once both listeners are up.
	// grpcAddr is nil when the health server is disabled.
	OnReady func(httpAddr, grpcAddr net.Addr)

	// Signals defaults to SIGINT and SIGTERM.
	Signals []os.Signal

	// HealthInterval is how often the HTTP health endpoint is probed to
	// drive the gRPC serving status. Defaults to HealthInterval.
	HealthInterval time.Duration
}

// RunServer binds the listeners, serves until a signal, context cancellation
// or server error, then shuts down within the configured timeout. Bind
// failures are returned wrapped in ErrBind before anything is served.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg := opts.Config

	log.Printf("*** Starting service %s", opts.ServiceName)

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrBind, cfg.ListenAddr, err)
	}

	if cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConnections)
	}

	grpcServer, grpcLn, err := setupGRPCServer(cfg.GrpcAddr, opts.ServiceName)
	if err != nil {
		_ = ln.Close()
		return err
	}

	httpServer := &http.Server{
		Handler:           opts.Handler,
		ReadTimeout:       time.Duration(cfg.ReadTimeout),
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      time.Duration(cfg.WriteTimeout),
	}

	for _, f := range opts.OnShutdown {
		httpServer.RegisterOnShutdown(f)
	}

	sigChan := notifySignals(opts.Signals)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 2)

	go func() {
		log.Printf("Starting HTTP server on %s", ln.Addr())

		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	var grpcAddr net.Addr

	stopHealth := func() {}

	if grpcServer != nil {
		grpcAddr = grpcLn.Addr()

		go func() {
			if err := grpcServer.Serve(grpcLn); err != nil {
				errChan <- err
			}
		}()

		stopHealth = startHealthBridge(ctx, opts, grpcServer, ln.Addr())
	}

	if opts.OnReady != nil {
		opts.OnReady(ln.Addr(), grpcAddr)
	}

	return handleShutdown(ctx, opts, httpServer, grpcServer, stopHealth, sigChan, errChan)
}

// startHealthBridge probes the HTTP health endpoint on an interval and mirrors
// the result into the gRPC health service. The returned func blocks until the
// probe loop has exited.
func startHealthBridge(ctx context.Context, opts *ServerOptions, grpcServer *grpc.HealthServer, httpAddr net.Addr) func() {
	interval := opts.HealthInterval
	if interval <= 0 {
		interval = HealthInterval
	}

	monitor := monitoring.NewMonitor(monitoring.MonitorConfig{Interval: interval})
	check := monitoring.HTTPProbe(httpAddr, healthPath)

	report := func(err error) {
		for _, name := range []string{"", opts.ServiceName} {
			if err != nil {
				grpcServer.SetNotServing(name)
			} else {
				grpcServer.SetServing(name)
			}
		}
	}

	monCtx, monCancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		monitor.StartMonitoring(monCtx, check, report)
	}()

	return func() {
		monitor.Stop(monCtx)
		monCancel()
		<-done
	}
}

func notifySignals(signals []os.Signal) chan os.Signal {
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, signals...)

	return sigChan
}

func setupGRPCServer(addr, serviceName string) (*grpc.HealthServer, net.Listener, error) {
	if addr == "" {
		return nil, nil, nil
	}

	grpcServer := grpc.NewHealthServer(addr, grpc.WithMaxMessageSize(MaxRecvSize, MaxSendSize))

	lis, err := grpcServer.Listen()
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrBind, addr, err)
	}

	grpcServer.SetServing("")
	grpcServer.SetServing(serviceName)

	return grpcServer, lis, nil
}

func handleShutdown(
	ctx context.Context,
	opts *ServerOptions,
	httpServer *http.Server,
	grpcServer *grpc.HealthServer,
	stopHealth func(),
	sigChan chan os.Signal,
	errChan chan error) error {
	var serveErr error

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, initiating shutdown", sig)
	case err := <-errChan:
		log.Printf("Received error: %v, initiating shutdown", err)
		serveErr = fmt.Errorf("%w: %w", errServe, err)
	case <-ctx.Done():
		log.Printf("Context canceled, initiating shutdown")
	}

	timeout := time.Duration(opts.Config.ShutdownTimeout)
	if timeout <= 0 {
		timeout = ShutdownTimeout
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	stopHealth()

	if grpcServer != nil {
		grpcServer.Stop(shutdownCtx)
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during HTTP server shutdown: %v", err)

		if serveErr == nil {
			serveErr = fmt.Errorf("shutdown error: %w", err)
		}
	}

	log.Printf("Service %s stopped", opts.ServiceName)

	return serveErr
}
