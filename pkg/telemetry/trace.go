package telemetry

import "github.com/mfreeman451/networkhub/pkg/models"

const (
	hopStatusSuccess = "success"
	hopStatusTimeout = "timeout"

	pathQualityGood     = "good"
	pathQualityDegraded = "degraded"

	hopTimeoutProbability = 0.05
	traceBaseLatencyMs    = 1
)

var traceDestinations = []string{
	"192.168.1.1 (Gateway)",
	"10.0.0.1 (ISP Router)",
	"172.16.1.1 (Regional Hub)",
	"203.0.113.1 (Backbone)",
	"198.51.100.1 (Peer Network)",
	"8.8.8.8 (Google DNS)",
}

// TraceHopCount is the fixed length of every simulated trace.
func TraceHopCount() int { return len(traceDestinations) }

// TraceRoute simulates a traceroute along a fixed path. Latency is
// cumulative, so it strictly increases hop by hop.
func (g *Generator) TraceRoute() models.TraceRoute {
	hops := make([]models.Hop, 0, len(traceDestinations))
	latency := traceBaseLatencyMs
	allOK := true

	for i, dest := range traceDestinations {
		latency += g.intRange(5, 20)

		status := hopStatusSuccess
		if g.src.Float64() < hopTimeoutProbability {
			status = hopStatusTimeout
		}

		allOK = allOK && status == hopStatusSuccess

		hops = append(hops, models.Hop{
			Hop:         i + 1,
			Destination: dest,
			LatencyMs:   latency,
			Status:      status,
		})
	}

	quality := pathQualityDegraded
	if allOK {
		quality = pathQualityGood
	}

	return models.TraceRoute{
		Hops:        hops,
		TotalHops:   len(hops),
		PathQuality: quality,
	}
}
