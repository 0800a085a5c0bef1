package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mfreeman451/networkhub/pkg/catalog"
	"github.com/mfreeman451/networkhub/pkg/models"
	"github.com/mfreeman451/networkhub/pkg/telemetry"
)

// apiRoute is one telemetry endpoint. The same table drives the router and
// the OpenAPI document.
type apiRoute struct {
	path     string
	kind     string
	summary  string
	model    any
	params   []queryParam
	snapshot func(s *Server, r *http.Request) any
}

var apiRoutes = []apiRoute{
	{
		path: "/api/network-stats", kind: "network-stats",
		summary: "Global internet figures",
		model:   models.NetworkStats{},
		snapshot: func(s *Server, _ *http.Request) any {
			return s.gen.NetworkStats()
		},
	},
	{
		path: "/api/protocol-usage", kind: "protocol-usage",
		summary: "Protocol adoption percentages",
		model:   models.ProtocolUsage{},
		snapshot: func(s *Server, _ *http.Request) any {
			return s.gen.ProtocolUsage()
		},
	},
	{
		path: "/api/security-threats", kind: "security-threats",
		summary: "Threat landscape counters",
		model:   models.SecurityThreats{},
		snapshot: func(s *Server, _ *http.Request) any {
			return s.gen.SecurityThreats()
		},
	},
	{
		path: "/api/performance-test", kind: "performance-test",
		summary: "Simulated speed test",
		model:   models.SpeedTest{},
		snapshot: func(s *Server, _ *http.Request) any {
			return s.gen.SpeedTest()
		},
	},
	{
		path: "/api/bandwidth-test", kind: "bandwidth-test",
		summary: "Simulated speed test",
		model:   models.SpeedTest{},
		snapshot: func(s *Server, _ *http.Request) any {
			return s.gen.SpeedTest()
		},
	},
	{
		path: "/api/trace-route", kind: "trace-route",
		summary: "Simulated traceroute to a public resolver",
		model:   models.TraceRoute{},
		snapshot: func(s *Server, _ *http.Request) any {
			return s.gen.TraceRoute()
		},
	},
	{
		path: "/api/network-topology", kind: "network-topology",
		summary: "Fixed topology with sampled link load",
		model:   models.Topology{},
		snapshot: func(s *Server, _ *http.Request) any {
			return s.gen.Topology()
		},
	},
	{
		path: "/api/bandwidth-calculator", kind: "bandwidth-calculator",
		summary: "Bandwidth recommendation for a user count and application type",
		model:   models.BandwidthEstimate{},
		params: []queryParam{
			{
				Name: "users", Type: "integer", Default: telemetry.DefaultUsers,
				Description: "Number of users; invalid values fall back to the default",
			},
			{
				Name: "app_type", Type: "string", Default: telemetry.DefaultAppType,
				Enum:        telemetry.AppTypes(),
				Description: "Application profile; unknown profiles use the default per-user rate",
			},
		},
		snapshot: func(s *Server, r *http.Request) any {
			q := telemetry.ParseBandwidthQuery(r.URL.Query())
			return s.gen.BandwidthEstimate(q.Users, q.AppType)
		},
	},
	{
		path: "/api/network-health", kind: "network-health",
		summary: "Overall network health",
		model:   models.NetworkHealth{},
		snapshot: func(s *Server, _ *http.Request) any {
			return s.gen.NetworkHealth()
		},
	},
	{
		path: "/api/traffic-analysis", kind: "traffic-analysis",
		summary: "Traffic mix and utilization",
		model:   models.TrafficAnalysis{},
		snapshot: func(s *Server, _ *http.Request) any {
			return s.gen.TrafficAnalysis()
		},
	},
	{
		path: "/api/device-inventory", kind: "device-inventory",
		summary: "Device counts by type and operating system",
		model:   models.DeviceInventory{},
		snapshot: func(s *Server, _ *http.Request) any {
			return s.gen.DeviceInventory()
		},
	},
	{
		path: "/api/alerts", kind: "alerts",
		summary: "Alert counters and recent alerts",
		model:   models.AlertSummary{},
		snapshot: func(s *Server, _ *http.Request) any {
			return s.gen.Alerts()
		},
	},
}

func (s *Server) snapshotHandler(rt apiRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := rt.snapshot(s, r)
		s.metrics.RecordSnapshot(rt.kind)
		s.writeJSON(w, http.StatusOK, v)
	}
}

func (s *Server) getCatalogCategory(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["category"]

	v, err := s.catalog.Category(key)
	if errors.Is(err, catalog.ErrUnknownCategory) {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, v)
}
