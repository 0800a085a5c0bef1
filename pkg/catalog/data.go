package catalog

import "github.com/mfreeman451/networkhub/pkg/models"

func protocolTable() []models.ProtocolGroup {
	return []models.ProtocolGroup{
		{
			Layer: "application_layer",
			Title: "Application Layer",
			Entries: []models.TopicEntry{
				{Name: "HTTP/HTTPS", Port: "80/443", Purpose: "Web communication", Status: "active"},
				{Name: "FTP/SFTP", Port: "21/22", Purpose: "File transfer", Status: "active"},
				{Name: "SMTP", Port: "25", Purpose: "Email sending", Status: "active"},
				{Name: "POP3/IMAP", Port: "110/143", Purpose: "Email retrieval", Status: "active"},
				{Name: "DNS", Port: "53", Purpose: "Domain name resolution", Status: "active"},
				{Name: "DHCP", Port: "67/68", Purpose: "IP address assignment", Status: "active"},
				{Name: "SSH", Port: "22", Purpose: "Secure remote access", Status: "active"},
				{Name: "Telnet", Port: "23", Purpose: "Remote terminal", Status: "legacy"},
				{Name: "SNMP", Port: "161", Purpose: "Network management", Status: "active"},
				{Name: "NTP", Port: "123", Purpose: "Time synchronization", Status: "active"},
			},
		},
		{
			Layer: "transport_layer",
			Title: "Transport Layer",
			Entries: []models.TopicEntry{
				{Name: "TCP", Purpose: "Reliable connection-oriented", Features: []string{"Flow control", "Error recovery", "Ordering"}},
				{Name: "UDP", Purpose: "Fast connectionless", Features: []string{"Low latency", "Real-time", "Broadcasting"}},
				{Name: "SCTP", Purpose: "Advanced transport", Features: []string{"Multi-homing", "Multi-streaming", "Reliability"}},
				{Name: "QUIC", Purpose: "Modern web transport", Features: []string{"HTTP/3", "Encryption", "Multiplexing"}},
			},
		},
		{
			Layer: "network_layer",
			Title: "Network Layer",
			Entries: []models.TopicEntry{
				{Name: "IPv4", Status: "exhausted", Attributes: []models.Attribute{
					{Key: "addresses", Value: "4.3 billion"}, {Key: "format", Value: "xxx.xxx.xxx.xxx"},
				}},
				{Name: "IPv6", Status: "growing", Attributes: []models.Attribute{
					{Key: "addresses", Value: "340 undecillion"}, {Key: "format", Value: "xxxx:xxxx:xxxx:xxxx"},
				}},
				{Name: "ICMP", Purpose: "Error reporting", Status: "essential", Features: []string{"ping", "traceroute"}},
				{Name: "ARP", Purpose: "Address resolution", Status: "fundamental", Attributes: []models.Attribute{
					{Key: "scope", Value: "local network"},
				}},
				{Name: "BGP", Purpose: "Internet routing", Status: "critical", Attributes: []models.Attribute{
					{Key: "scope", Value: "global"},
				}},
				{Name: "OSPF", Purpose: "Internal routing", Status: "standard", Attributes: []models.Attribute{
					{Key: "scope", Value: "enterprise"},
				}},
			},
		},
	}
}

func securityTable() []models.TopicEntry {
	return []models.TopicEntry{
		{Name: "Firewalls", Category: "Perimeter Defense", Features: []string{"Packet filtering", "Stateful inspection", "Application layer"}},
		{Name: "VPN", Category: "Secure Tunneling", Features: []string{"IPSec", "OpenVPN", "WireGuard"}},
		{Name: "IDS/IPS", Category: "Threat Detection", Features: []string{"Signature-based", "Anomaly detection", "Behavioral analysis"}},
		{Name: "Network Segmentation", Category: "Access Control", Features: []string{"VLANs", "Subnetting", "Zero Trust"}},
		{Name: "DDoS Protection", Category: "Availability", Features: []string{"Rate limiting", "Traffic analysis", "Mitigation"}},
		{Name: "Network Encryption", Category: "Data Protection", Features: []string{"TLS/SSL", "IPSec", "End-to-end"}},
	}
}

func modernTechTable() []models.TopicEntry {
	return []models.TopicEntry{
		{Name: "5G Networks", Category: "Mobile", Features: []string{"Ultra-low latency", "Massive IoT", "Network slicing"}},
		{Name: "SD-WAN", Category: "Enterprise", Features: []string{"Centralized control", "Policy automation", "Cloud integration"}},
		{Name: "Edge Computing", Category: "Infrastructure", Features: []string{"Distributed processing", "Reduced latency", "Local data"}},
		{Name: "Network Function Virtualization", Category: "Virtualization", Features: []string{"Software-defined", "Scalability", "Flexibility"}},
		{Name: "Intent-Based Networking", Category: "AI/ML", Features: []string{"Self-configuring", "Policy automation", "Predictive analysis"}},
		{Name: "Quantum Networking", Category: "Emerging", Features: []string{"Quantum entanglement", "Ultra-secure", "Future internet"}},
	}
}

func toolTable() []models.TopicEntry {
	return []models.TopicEntry{
		{Name: "Wireshark", Category: "Packet Analysis", Purpose: "Deep packet inspection and network troubleshooting"},
		{Name: "Nmap", Category: "Network Discovery", Purpose: "Port scanning and network mapping"},
		{Name: "ping", Category: "Connectivity", Purpose: "Basic reachability testing"},
		{Name: "traceroute", Category: "Path Analysis", Purpose: "Network path discovery and latency measurement"},
		{Name: "iperf3", Category: "Performance", Purpose: "Bandwidth and throughput testing"},
		{Name: "tcpdump", Category: "Packet Capture", Purpose: "Command-line packet analysis"},
		{Name: "Netstat", Category: "Connection Monitoring", Purpose: "Active connection and port monitoring"},
		{Name: "PRTG", Category: "Network Monitoring", Purpose: "Enterprise network performance monitoring"},
	}
}

func cloudTable() models.CloudNetworking {
	return models.CloudNetworking{
		Providers: []models.CloudProvider{
			{ID: "aws", Name: "Amazon Web Services", Services: []string{"VPC", "ELB", "CloudFront", "Route 53", "Direct Connect"}},
			{ID: "azure", Name: "Microsoft Azure", Services: []string{"Virtual Network", "Load Balancer", "CDN", "DNS", "ExpressRoute"}},
			{ID: "gcp", Name: "Google Cloud", Services: []string{"VPC", "Cloud Load Balancing", "Cloud CDN", "Cloud DNS", "Cloud Interconnect"}},
		},
		Concepts: []string{"Software-Defined Networking", "Micro-segmentation", "Service Mesh", "Container Networking"},
	}
}

func metricTable() []models.MetricDefinition {
	return []models.MetricDefinition{
		{Key: "bandwidth", Unit: "bps", Description: "Data transfer capacity"},
		{Key: "latency", Unit: "ms", Description: "Round-trip time delay"},
		{Key: "jitter", Unit: "ms", Description: "Latency variation"},
		{Key: "packet_loss", Unit: "%", Description: "Lost packet percentage"},
		{Key: "throughput", Unit: "bps", Description: "Actual data transfer rate"},
		{Key: "mtu", Unit: "bytes", Description: "Maximum transmission unit"},
	}
}

func osiTable() []models.OSILayer {
	return []models.OSILayer{
		{Number: 7, Name: "Application", PDU: "Data", Function: "Network services for applications", Protocols: []string{"HTTP", "DNS", "SMTP", "SSH"}},
		{Number: 6, Name: "Presentation", PDU: "Data", Function: "Encoding, encryption and compression", Protocols: []string{"TLS", "MIME", "JPEG"}},
		{Number: 5, Name: "Session", PDU: "Data", Function: "Dialog control between hosts", Protocols: []string{"RPC", "NetBIOS", "PPTP"}},
		{Number: 4, Name: "Transport", PDU: "Segment", Function: "End-to-end delivery and flow control", Protocols: []string{"TCP", "UDP", "QUIC"}},
		{Number: 3, Name: "Network", PDU: "Packet", Function: "Logical addressing and routing", Protocols: []string{"IPv4", "IPv6", "ICMP", "OSPF"}, Devices: []string{"Router"}},
		{Number: 2, Name: "Data Link", PDU: "Frame", Function: "Node-to-node delivery on a link", Protocols: []string{"Ethernet", "Wi-Fi", "ARP", "PPP"}, Devices: []string{"Switch", "Bridge"}},
		{Number: 1, Name: "Physical", PDU: "Bit", Function: "Transmission over the medium", Protocols: []string{"DSL", "Fiber", "802.11 PHY"}, Devices: []string{"Hub", "Repeater", "Cable"}},
	}
}

func troubleshootingTable() []models.TroubleshootingStep {
	return []models.TroubleshootingStep{
		{Step: 1, Title: "Identify the problem", Description: "Gather symptoms, scope and recent changes", Commands: []string{"ip addr", "ipconfig /all"}},
		{Step: 2, Title: "Check physical connectivity", Description: "Verify cables, link lights and interface state", Commands: []string{"ethtool eth0", "ip link"}},
		{Step: 3, Title: "Test local reachability", Description: "Ping the loopback, the host address and the gateway", Commands: []string{"ping 127.0.0.1", "ping 192.168.1.1"}},
		{Step: 4, Title: "Verify name resolution", Description: "Confirm DNS answers for the failing names", Commands: []string{"nslookup example.com", "dig example.com"}},
		{Step: 5, Title: "Trace the path", Description: "Find where packets stop or latency jumps", Commands: []string{"traceroute 8.8.8.8", "mtr 8.8.8.8"}},
		{Step: 6, Title: "Inspect services and traffic", Description: "Check listening ports and capture traffic", Commands: []string{"ss -tulpn", "tcpdump -i eth0"}},
	}
}

func futureTable() []models.TopicEntry {
	return []models.TopicEntry{
		{Name: "6G Networks", Category: "2030+", Purpose: "Terahertz links and native AI in the radio access network"},
		{Name: "Quantum Key Distribution", Category: "2028+", Purpose: "Physically secured key exchange over fiber"},
		{Name: "Satellite Mega-Constellations", Category: "Now", Purpose: "Low-earth-orbit broadband for remote regions"},
		{Name: "Self-Driving Networks", Category: "2027+", Purpose: "Closed-loop automation from telemetry to configuration"},
		{Name: "Post-Quantum Cryptography", Category: "2026+", Purpose: "Quantum-resistant key exchange in TLS and VPNs"},
		{Name: "Wi-Fi 7", Category: "Now", Purpose: "Multi-link operation and 320 MHz channels"},
	}
}
