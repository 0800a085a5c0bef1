package web

import "github.com/mfreeman451/networkhub/pkg/models"

// CatalogSource is the read side of the content catalog.
type CatalogSource interface {
	Category(key string) (any, error)
	MustCategory(key string) any
}

// Snapshotter produces mock telemetry snapshots.
type Snapshotter interface {
	NetworkStats() models.NetworkStats
	ProtocolUsage() models.ProtocolUsage
	SecurityThreats() models.SecurityThreats
	SpeedTest() models.SpeedTest
	TraceRoute() models.TraceRoute
	Topology() models.Topology
	BandwidthEstimate(users int, appType string) models.BandwidthEstimate
	NetworkHealth() models.NetworkHealth
	TrafficAnalysis() models.TrafficAnalysis
	DeviceInventory() models.DeviceInventory
	Alerts() models.AlertSummary
	LiveSample() models.LiveSample
}
