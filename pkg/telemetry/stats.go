package telemetry

import (
	"github.com/mfreeman451/networkhub/pkg/models"
	"github.com/mfreeman451/networkhub/pkg/rng"
)

var threatLevels = []string{"LOW", "MODERATE", "ELEVATED", "HIGH"}

const defaultTestServer = "Global CDN"

// NetworkStats returns global internet scale figures for the index page.
func (g *Generator) NetworkStats() models.NetworkStats {
	return models.NetworkStats{
		GlobalTrafficZBMonth:  g.uniform(4.5, 5.2, 1),
		InternetUsersBillion:  g.uniform(5.1, 5.3, 2),
		ConnectedDevicesBn:    g.intRange(48, 52),
		DataCentersMillion:    g.intRange(8, 12),
		SubmarineCables:       g.intRange(420, 450),
		BGPRoutesThousand:     g.intRange(920, 950),
		DNSQueriesTrillionDay: g.intRange(4, 6),
		DDoSAttacksPerMinute:  g.intRange(15, 25),
	}
}

// ProtocolUsage returns adoption percentages per protocol.
func (g *Generator) ProtocolUsage() models.ProtocolUsage {
	return models.ProtocolUsage{
		HTTPHTTPS: g.intRange(75, 85),
		TCP:       g.intRange(85, 95),
		UDP:       g.intRange(65, 75),
		IPv4:      g.intRange(92, 98),
		IPv6:      g.intRange(35, 45),
		DNS:       g.intRange(99, 100),
		TLS:       g.intRange(80, 90),
	}
}

// SecurityThreats returns threat counts and an overall threat level.
func (g *Generator) SecurityThreats() models.SecurityThreats {
	return models.SecurityThreats{
		MalwareFamilies:    g.intRange(800, 1200),
		PhishingSites:      g.intRange(50, 100),
		BotnetsActive:      g.intRange(10, 25),
		ZeroDays:           g.intRange(15, 30),
		RansomwareVariants: g.intRange(100, 200),
		ThreatLevel:        rng.Choice(g.src, threatLevels),
	}
}

// SpeedTest simulates a bandwidth test against a CDN edge.
func (g *Generator) SpeedTest() models.SpeedTest {
	return models.SpeedTest{
		DownloadMbps:  g.uniform(100, 1000, 0),
		UploadMbps:    g.uniform(50, 500, 0),
		LatencyMs:     g.intRange(8, 50),
		JitterMs:      g.uniform(1, 10, 1),
		PacketLossPct: g.uniform(0, 2, 3),
		TestServer:    defaultTestServer,
		Timestamp:     g.now(),
	}
}
