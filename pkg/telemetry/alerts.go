package telemetry

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mfreeman451/networkhub/pkg/models"
	"github.com/mfreeman451/networkhub/pkg/rng"
)

const recentAlertCount = 5

type alertSpec struct {
	kind     string
	severity string
	lo, hi   int
}

var alertSpecs = []alertSpec{
	{"High Bandwidth Usage", "warning", 1, 5},
	{"Device Offline", "critical", 0, 3},
	{"Security Threat", "high", 0, 2},
	{"Configuration Change", "info", 2, 10},
	{"Performance Degradation", "warning", 1, 4},
}

var (
	recentAlertKinds = []string{"Bandwidth", "Security", "Performance", "Device"}
	alertSeverities  = []string{"info", "warning", "high", "critical"}
)

// Alerts returns per-type alert counts and a handful of recent alerts.
// TotalAlerts always equals the sum of the per-type counts.
func (g *Generator) Alerts() models.AlertSummary {
	types := make([]models.AlertType, len(alertSpecs))
	total := 0

	for i, s := range alertSpecs {
		count := g.intRange(s.lo, s.hi)
		total += count
		types[i] = models.AlertType{Type: s.kind, Severity: s.severity, Count: count}
	}

	now := g.now()
	recent := make([]models.Alert, recentAlertCount)

	for i := range recent {
		ts := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(),
			g.intRange(0, 59), now.Second(), 0, now.Location())

		recent[i] = models.Alert{
			ID:        g.alertID(),
			Timestamp: ts,
			Type:      rng.Choice(g.src, recentAlertKinds),
			Message:   fmt.Sprintf("Alert message %d", g.intRange(1, 100)),
			Severity:  rng.Choice(g.src, alertSeverities),
		}
	}

	return models.AlertSummary{
		TotalAlerts:  total,
		AlertTypes:   types,
		RecentAlerts: recent,
	}
}

func (g *Generator) alertID() string {
	id, err := uuid.NewRandomFromReader(rng.Reader(g.src))
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
