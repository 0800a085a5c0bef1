/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package grpc serves the standard gRPC health protocol so container
// orchestrators can probe a running networkhub.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
)

const stopGracePeriod = 5 * time.Second

// Option configures a HealthServer before the underlying grpc.Server is built.
type Option func(*HealthServer)

// HealthServer is a gRPC server whose only service is grpc.health.v1.Health.
type HealthServer struct {
	srv      *grpc.Server
	health   *health.Server
	addr     string
	opts     []grpc.ServerOption
	mu       sync.Mutex
	statuses map[string]healthpb.HealthCheckResponse_ServingStatus
}

// NewHealthServer builds the server and registers the health service.
// Every service starts out unknown until SetServing is called.
func NewHealthServer(addr string, opts ...Option) *HealthServer {
	s := &HealthServer{
		addr:     addr,
		health:   health.NewServer(),
		statuses: make(map[string]healthpb.HealthCheckResponse_ServingStatus),
		opts: []grpc.ServerOption{
			grpc.ChainUnaryInterceptor(recoverUnary, logUnaryFailures),
			grpc.KeepaliveParams(keepalive.ServerParameters{
				MaxConnectionIdle: 10 * time.Minute,
				Time:              2 * time.Minute,
				Timeout:           20 * time.Second,
			}),
			grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
				MinTime:             time.Minute,
				PermitWithoutStream: true,
			}),
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.srv = grpc.NewServer(s.opts...)
	healthpb.RegisterHealthServer(s.srv, s.health)

	return s
}

// WithServerOptions appends raw grpc.ServerOptions.
func WithServerOptions(opt ...grpc.ServerOption) Option {
	return func(s *HealthServer) {
		s.opts = append(s.opts, opt...)
	}
}

// WithMaxMessageSize caps inbound and outbound message sizes.
func WithMaxMessageSize(recv, send int) Option {
	return func(s *HealthServer) {
		s.opts = append(s.opts, grpc.MaxRecvMsgSize(recv), grpc.MaxSendMsgSize(send))
	}
}

func (s *HealthServer) Addr() string { return s.addr }

// Status reports the last status set for name.
func (s *HealthServer) Status(name string) (healthpb.HealthCheckResponse_ServingStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.statuses[name]

	return st, ok
}

// SetServing marks name as serving. The empty name is the overall status.
func (s *HealthServer) SetServing(name string) {
	s.set(name, healthpb.HealthCheckResponse_SERVING)
}

// SetNotServing marks name as not serving.
func (s *HealthServer) SetNotServing(name string) {
	s.set(name, healthpb.HealthCheckResponse_NOT_SERVING)
}

func (s *HealthServer) set(name string, st healthpb.HealthCheckResponse_ServingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.statuses[name]; ok && prev != st {
		log.Printf("Health of %q changed: %v -> %v", name, prev, st)
	}

	s.statuses[name] = st
	s.health.SetServingStatus(name, st)
}

// Listen binds the configured address.
func (s *HealthServer) Listen() (net.Listener, error) {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	return lis, nil
}

// Serve blocks until Stop is called. A clean stop returns nil.
func (s *HealthServer) Serve(lis net.Listener) error {
	log.Printf("gRPC health server listening on %s", lis.Addr())

	if err := s.srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop flips every known service to NOT_SERVING so probes fail fast, then
// drains connections. Draining is cut short when ctx ends or after
// stopGracePeriod, whichever is first.
func (s *HealthServer) Stop(ctx context.Context) {
	s.mu.Lock()
	for name := range s.statuses {
		s.statuses[name] = healthpb.HealthCheckResponse_NOT_SERVING
		s.health.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, stopGracePeriod)
	defer cancel()

	drained := make(chan struct{})

	go func() {
		s.srv.GracefulStop()
		close(drained)
	}()

	select {
	case <-drained:
		log.Printf("gRPC health server stopped")
	case <-ctx.Done():
		log.Printf("gRPC health server drain timed out, forcing stop")
		s.srv.Stop()
	}
}

// logUnaryFailures logs calls that return an error. Successful probes are
// too frequent to log.
func logUnaryFailures(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)
	if err != nil {
		log.Printf("gRPC %s failed after %v: %v", info.FullMethod, time.Since(start), status.Code(err))
	}

	return resp, err
}

// recoverUnary turns a handler panic into codes.Internal.
func recoverUnary(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in %s: %v", info.FullMethod, r)

			err = status.Error(codes.Internal, "internal error")
		}
	}()

	return handler(ctx, req)
}
