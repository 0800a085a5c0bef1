package telemetry

import (
	"github.com/mfreeman451/networkhub/pkg/models"
	"github.com/mfreeman451/networkhub/pkg/rng"
)

var topologyNodes = []models.TopologyNode{
	{ID: "internet", Type: "cloud", Label: "Internet"},
	{ID: "firewall", Type: "security", Label: "Firewall"},
	{ID: "router", Type: "router", Label: "Core Router"},
	{ID: "switch1", Type: "switch", Label: "Switch A"},
	{ID: "switch2", Type: "switch", Label: "Switch B"},
	{ID: "server", Type: "server", Label: "Web Server"},
	{ID: "db", Type: "database", Label: "Database"},
}

type linkSpec struct {
	source, target string
	capacityMbps   int
}

var topologyLinks = []linkSpec{
	{"internet", "firewall", 1000},
	{"firewall", "router", 10000},
	{"router", "switch1", 10000},
	{"router", "switch2", 10000},
	{"switch1", "server", 1000},
	{"switch2", "db", 1000},
}

// Topology returns the fixed network graph with freshly sampled link load.
// Node and link sets never change between calls.
func (g *Generator) Topology() models.Topology {
	nodes := make([]models.TopologyNode, len(topologyNodes))
	copy(nodes, topologyNodes)

	links := make([]models.TopologyLink, len(topologyLinks))
	for i, l := range topologyLinks {
		util := g.intRange(5, 95)
		links[i] = models.TopologyLink{
			Source:         l.source,
			Target:         l.target,
			CapacityMbps:   l.capacityMbps,
			UtilizationPct: util,
			ThroughputMbps: rng.Round(float64(l.capacityMbps)*float64(util)/100, 1),
		}
	}

	return models.Topology{Nodes: nodes, Links: links}
}
