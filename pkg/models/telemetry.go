// Package models pkg/models/telemetry.go
package models

import "time"

// NetworkStats is a snapshot of global internet figures.
type NetworkStats struct {
	GlobalTrafficZBMonth  float64 `json:"global_traffic_zb_month"`
	InternetUsersBillion  float64 `json:"internet_users_billion"`
	ConnectedDevicesBn    int     `json:"connected_devices_billion"`
	DataCentersMillion    int     `json:"data_centers_million"`
	SubmarineCables       int     `json:"submarine_cables"`
	BGPRoutesThousand     int     `json:"bgp_routes_thousand"`
	DNSQueriesTrillionDay int     `json:"dns_queries_trillion_day"`
	DDoSAttacksPerMinute  int     `json:"ddos_attacks_per_minute"`
}

// ProtocolUsage holds adoption percentages per protocol.
type ProtocolUsage struct {
	HTTPHTTPS int `json:"http_https"`
	TCP       int `json:"tcp"`
	UDP       int `json:"udp"`
	IPv4      int `json:"ipv4"`
	IPv6      int `json:"ipv6"`
	DNS       int `json:"dns"`
	TLS       int `json:"tls"`
}

type SecurityThreats struct {
	MalwareFamilies    int    `json:"malware_families"`
	PhishingSites      int    `json:"phishing_sites"`
	BotnetsActive      int    `json:"botnets_active"`
	ZeroDays           int    `json:"zero_days"`
	RansomwareVariants int    `json:"ransomware_variants"`
	ThreatLevel        string `json:"threat_level"`
}

// SpeedTest is the result of a simulated bandwidth test. It is shared by the
// performance-test and bandwidth-test endpoints.
type SpeedTest struct {
	DownloadMbps  float64   `json:"download_mbps"`
	UploadMbps    float64   `json:"upload_mbps"`
	LatencyMs     int       `json:"latency_ms"`
	JitterMs      float64   `json:"jitter_ms"`
	PacketLossPct float64   `json:"packet_loss_pct"`
	TestServer    string    `json:"test_server"`
	Timestamp     time.Time `json:"timestamp"`
}

// Hop is one step of a simulated traceroute. LatencyMs is cumulative.
type Hop struct {
	Hop         int    `json:"hop"`
	Destination string `json:"destination"`
	LatencyMs   int    `json:"latency_ms"`
	Status      string `json:"status"`
}

type TraceRoute struct {
	Hops        []Hop  `json:"hops"`
	TotalHops   int    `json:"total_hops"`
	PathQuality string `json:"path_quality"`
}

type TopologyNode struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

// TopologyLink is a directed edge annotated with sampled load.
type TopologyLink struct {
	Source         string  `json:"source"`
	Target         string  `json:"target"`
	CapacityMbps   int     `json:"capacity_mbps"`
	UtilizationPct int     `json:"utilization_pct"`
	ThroughputMbps float64 `json:"throughput_mbps"`
}

type Topology struct {
	Nodes []TopologyNode `json:"nodes"`
	Links []TopologyLink `json:"links"`
}

// BandwidthEstimate sizes a link for a number of users of one application type.
type BandwidthEstimate struct {
	Users                int     `json:"users"`
	AppType              string  `json:"app_type"`
	Recognized           bool    `json:"recognized"`
	PerUserRateMbps      float64 `json:"per_user_rate_mbps"`
	BaseRequirementMbps  float64 `json:"base_requirement_mbps"`
	PeakFactor           float64 `json:"peak_factor"`
	BufferMultiplier     float64 `json:"buffer_multiplier"`
	RecommendedMbps      float64 `json:"recommended_mbps"`
	EstimatedMonthlyCost float64 `json:"estimated_monthly_cost"`
	Currency             string  `json:"currency"`
}

type NetworkHealth struct {
	OverallStatus     string  `json:"overall_status"`
	UptimePct         float64 `json:"uptime_pct"`
	ResponseTimeMs    int     `json:"response_time_ms"`
	ThroughputMbps    int     `json:"throughput_mbps"`
	ErrorRatePct      float64 `json:"error_rate_pct"`
	ActiveConnections int     `json:"active_connections"`
	CPUUsagePct       int     `json:"cpu_usage_pct"`
	MemoryUsagePct    int     `json:"memory_usage_pct"`
	DiskUsagePct      int     `json:"disk_usage_pct"`
}

type ProtocolShare struct {
	Protocol   string `json:"protocol"`
	Percentage int    `json:"percentage"`
}

type RegionShare struct {
	Region     string `json:"region"`
	Percentage int    `json:"percentage"`
}

type BandwidthUtilization struct {
	CurrentPct int `json:"current_pct"`
	AveragePct int `json:"average_pct"`
	PeakPct    int `json:"peak_pct"`
}

type TrafficAnalysis struct {
	TotalTrafficGBDay      float64              `json:"total_traffic_gb_day"`
	PeakHour               string               `json:"peak_hour"`
	TopProtocols           []ProtocolShare      `json:"top_protocols"`
	GeographicDistribution []RegionShare        `json:"geographic_distribution"`
	BandwidthUtilization   BandwidthUtilization `json:"bandwidth_utilization"`
}

type DeviceType struct {
	Type   string `json:"type"`
	Count  int    `json:"count"`
	Status string `json:"status"`
}

type OSShare struct {
	OS         string `json:"os"`
	Percentage int    `json:"percentage"`
}

type DeviceInventory struct {
	TotalDevices     int          `json:"total_devices"`
	DeviceTypes      []DeviceType `json:"device_types"`
	OperatingSystems []OSShare    `json:"operating_systems"`
	LastUpdated      time.Time    `json:"last_updated"`
}

// AlertType is the per-type alert counter.
type AlertType struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Count    int    `json:"count"`
}

type Alert struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
}

// AlertSummary groups alert counts by type. TotalAlerts is the sum of the
// per-type counts.
type AlertSummary struct {
	TotalAlerts  int         `json:"total_alerts"`
	AlertTypes   []AlertType `json:"alert_types"`
	RecentAlerts []Alert     `json:"recent_alerts"`
}

// LiveSample is one frame of the live telemetry stream.
type LiveSample struct {
	Timestamp         time.Time `json:"timestamp"`
	ThroughputMbps    int       `json:"throughput_mbps"`
	LatencyMs         int       `json:"latency_ms"`
	ActiveConnections int       `json:"active_connections"`
	UtilizationPct    int       `json:"utilization_pct"`
}
