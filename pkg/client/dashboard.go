package client

import (
	"context"
	"time"

	"github.com/mfreeman451/networkhub/pkg/models"
	"golang.org/x/sync/errgroup"
)

// DashboardSource is the subset of the API the dashboard polls.
type DashboardSource interface {
	NetworkHealth(ctx context.Context) (models.NetworkHealth, error)
	TrafficAnalysis(ctx context.Context) (models.TrafficAnalysis, error)
	TraceRoute(ctx context.Context) (models.TraceRoute, error)
	Alerts(ctx context.Context) (models.AlertSummary, error)
}

// Dashboard is one consistent poll of the dashboard endpoints.
type Dashboard struct {
	Health    models.NetworkHealth
	Traffic   models.TrafficAnalysis
	Trace     models.TraceRoute
	Alerts    models.AlertSummary
	FetchedAt time.Time
}

// FetchDashboard queries all dashboard endpoints concurrently. The first
// failure cancels the remaining requests and is returned.
func FetchDashboard(ctx context.Context, src DashboardSource) (*Dashboard, error) {
	g, ctx := errgroup.WithContext(ctx)

	var d Dashboard

	g.Go(func() error {
		var err error
		d.Health, err = src.NetworkHealth(ctx)

		return err
	})

	g.Go(func() error {
		var err error
		d.Traffic, err = src.TrafficAnalysis(ctx)

		return err
	})

	g.Go(func() error {
		var err error
		d.Trace, err = src.TraceRoute(ctx)

		return err
	})

	g.Go(func() error {
		var err error
		d.Alerts, err = src.Alerts(ctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.FetchedAt = time.Now()

	return &d, nil
}
