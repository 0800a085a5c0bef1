package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mfreeman451/networkhub/pkg/catalog"
	"github.com/mfreeman451/networkhub/pkg/config"
	"github.com/mfreeman451/networkhub/pkg/models"
	"github.com/mfreeman451/networkhub/pkg/rng"
	"github.com/mfreeman451/networkhub/pkg/telemetry"
	"github.com/mfreeman451/networkhub/pkg/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubClient(t *testing.T) *Client {
	t.Helper()

	cfg := config.Default()
	s := web.NewServer(&cfg, catalog.New(), telemetry.NewGenerator(rng.NewSeeded(11)))
	ts := httptest.NewServer(s)

	t.Cleanup(func() {
		s.Close()
		ts.Close()
	})

	c, err := New(ts.URL+"/", WithTimeout(5*time.Second))
	require.NoError(t, err)

	return c
}

func TestNewRejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:5000", "ftp://example.com", "http://"} {
		_, err := New(raw)
		assert.ErrorIs(t, err, errInvalidBaseURL, raw)
	}
}

func TestClientEndpoints(t *testing.T) {
	c := newHubClient(t)
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	health, err := c.NetworkHealth(ctx)
	require.NoError(t, err)
	assert.Contains(t, []string{"healthy", "degraded"}, health.OverallStatus)

	traffic, err := c.TrafficAnalysis(ctx)
	require.NoError(t, err)
	assert.Len(t, traffic.TopProtocols, 4)

	alerts, err := c.Alerts(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts.RecentAlerts, 5)

	trace, err := c.TraceRoute(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(trace.Hops), trace.TotalHops)

	topo, err := c.Topology(ctx)
	require.NoError(t, err)
	assert.Len(t, topo.Nodes, 7)
	assert.Len(t, topo.Links, 6)
}

func TestClientBandwidthEstimate(t *testing.T) {
	c := newHubClient(t)

	est, err := c.BandwidthEstimate(context.Background(), 100, "streaming")
	require.NoError(t, err)
	assert.InDelta(t, 800, est.BaseRequirementMbps, 1e-9)

	est, err = c.BandwidthEstimate(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, telemetry.DefaultUsers, est.Users)
	assert.Equal(t, telemetry.DefaultAppType, est.AppType)
}

func TestClientReportsHTTPErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	_, err = c.NetworkHealth(context.Background())
	require.ErrorIs(t, err, errUnexpectedStatus)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "maintenance")

	assert.ErrorIs(t, c.Ping(context.Background()), errUnexpectedStatus)
}

func TestPingRejectsUnexpectedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("nope"))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Ping(context.Background()), errUnexpectedBody)
}

func TestFetchDashboard(t *testing.T) {
	c := newHubClient(t)

	d, err := FetchDashboard(context.Background(), c)
	require.NoError(t, err)

	assert.NotEmpty(t, d.Health.OverallStatus)
	assert.NotEmpty(t, d.Trace.Hops)
	assert.False(t, d.FetchedAt.IsZero())
}

var errBoom = errors.New("boom")

type failingSource struct {
	Client *Client
}

func (f failingSource) NetworkHealth(ctx context.Context) (models.NetworkHealth, error) {
	return f.Client.NetworkHealth(ctx)
}

func (failingSource) TrafficAnalysis(context.Context) (models.TrafficAnalysis, error) {
	return models.TrafficAnalysis{}, errBoom
}

func (f failingSource) TraceRoute(ctx context.Context) (models.TraceRoute, error) {
	return f.Client.TraceRoute(ctx)
}

func (f failingSource) Alerts(ctx context.Context) (models.AlertSummary, error) {
	return f.Client.Alerts(ctx)
}

func TestFetchDashboardFailsOnAnyError(t *testing.T) {
	d, err := FetchDashboard(context.Background(), failingSource{Client: newHubClient(t)})

	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, d)
}
