package telemetry

import (
	"github.com/mfreeman451/networkhub/pkg/models"
	"github.com/mfreeman451/networkhub/pkg/rng"
)

var healthStatuses = []string{"healthy", "degraded"}

// NetworkHealth returns uptime, latency and loss figures for the whole network.
func (g *Generator) NetworkHealth() models.NetworkHealth {
	return models.NetworkHealth{
		OverallStatus:     rng.Choice(g.src, healthStatuses),
		UptimePct:         g.uniform(99.5, 99.99, 2),
		ResponseTimeMs:    g.intRange(10, 30),
		ThroughputMbps:    g.intRange(800, 1200),
		ErrorRatePct:      g.uniform(0.01, 0.1, 3),
		ActiveConnections: g.intRange(500, 2000),
		CPUUsagePct:       g.intRange(20, 80),
		MemoryUsagePct:    g.intRange(40, 90),
		DiskUsagePct:      g.intRange(30, 70),
	}
}

// TrafficAnalysis returns protocol and regional traffic shares plus link utilization.
func (g *Generator) TrafficAnalysis() models.TrafficAnalysis {
	return models.TrafficAnalysis{
		TotalTrafficGBDay: g.uniform(500, 1500, 1),
		PeakHour:          "14:00-15:00",
		TopProtocols: []models.ProtocolShare{
			{Protocol: "HTTP/HTTPS", Percentage: g.intRange(65, 85)},
			{Protocol: "TCP", Percentage: g.intRange(10, 20)},
			{Protocol: "UDP", Percentage: g.intRange(5, 15)},
			{Protocol: "ICMP", Percentage: g.intRange(1, 5)},
		},
		GeographicDistribution: []models.RegionShare{
			{Region: "North America", Percentage: g.intRange(40, 60)},
			{Region: "Europe", Percentage: g.intRange(20, 35)},
			{Region: "Asia", Percentage: g.intRange(15, 25)},
			{Region: "Other", Percentage: g.intRange(5, 15)},
		},
		BandwidthUtilization: models.BandwidthUtilization{
			CurrentPct: g.intRange(40, 80),
			AveragePct: g.intRange(50, 70),
			PeakPct:    g.intRange(80, 95),
		},
	}
}

// DeviceInventory returns device counts by type and operating system.
func (g *Generator) DeviceInventory() models.DeviceInventory {
	return models.DeviceInventory{
		TotalDevices: g.intRange(150, 300),
		DeviceTypes: []models.DeviceType{
			{Type: "Workstations", Count: g.intRange(80, 150), Status: "online"},
			{Type: "Servers", Count: g.intRange(10, 25), Status: "online"},
			{Type: "Network Equipment", Count: g.intRange(15, 30), Status: "online"},
			{Type: "Mobile Devices", Count: g.intRange(50, 100), Status: "online"},
			{Type: "IoT Devices", Count: g.intRange(20, 50), Status: "mixed"},
		},
		OperatingSystems: []models.OSShare{
			{OS: "Windows", Percentage: g.intRange(60, 80)},
			{OS: "macOS", Percentage: g.intRange(15, 25)},
			{OS: "Linux", Percentage: g.intRange(5, 15)},
			{OS: "Mobile OS", Percentage: g.intRange(10, 20)},
		},
		LastUpdated: g.now(),
	}
}

// LiveSample is one frame for the streaming endpoint.
func (g *Generator) LiveSample() models.LiveSample {
	return models.LiveSample{
		Timestamp:         g.now(),
		ThroughputMbps:    g.intRange(800, 1200),
		LatencyMs:         g.intRange(8, 50),
		ActiveConnections: g.intRange(500, 2000),
		UtilizationPct:    g.intRange(40, 80),
	}
}
