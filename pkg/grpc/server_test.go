package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startBufServer(t *testing.T, s *HealthServer) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)

	go func() {
		_ = s.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHealthServing(t *testing.T) {
	s := NewHealthServer("bufnet", WithMaxMessageSize(1024, 1024))
	s.SetServing("")
	s.SetServing("networkhub")

	client := startBufServer(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, name := range []string{"", "networkhub"} {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}

	_, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	s.Stop(context.Background())
}

func TestStopMarksNotServing(t *testing.T) {
	s := NewHealthServer("bufnet")
	s.SetServing("networkhub")

	s.Stop(context.Background())

	st, ok := s.Status("networkhub")
	require.True(t, ok)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, st)
}

func TestSetNotServingToggles(t *testing.T) {
	s := NewHealthServer("bufnet")
	client := startBufServer(t, s)

	defer s.Stop(context.Background())

	check := func() healthpb.HealthCheckResponse_ServingStatus {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "networkhub"})
		require.NoError(t, err)

		return resp.GetStatus()
	}

	s.SetNotServing("networkhub")
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check())

	s.SetServing("networkhub")
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check())

	_, ok := s.Status("other")
	assert.False(t, ok)
}

func TestListenFailsOnBadAddress(t *testing.T) {
	_, err := NewHealthServer("256.0.0.1:bad").Listen()
	assert.Error(t, err)
}

func TestUnaryInterceptors(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/test/Panic"}

	_, err := recoverUnary(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("boom")
	})
	assert.Equal(t, codes.Internal, status.Code(err))

	resp, err := logUnaryFailures(context.Background(), "req", info, func(_ context.Context, req any) (any, error) {
		return req, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "req", resp)

	_, err = logUnaryFailures(context.Background(), "req", info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Unavailable, "down")
	})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}
