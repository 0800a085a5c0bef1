// Package models pkg/models/catalog.go
package models

// Attribute is an ordered key/value fact about a topic, such as the address
// format of a network-layer protocol.
type Attribute struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// TopicEntry is a static descriptive record about a protocol, tool, or
// technology.
type TopicEntry struct {
	Name       string      `json:"name"`
	Category   string      `json:"category,omitempty"`
	Purpose    string      `json:"purpose,omitempty"`
	Port       string      `json:"port,omitempty"`
	Status     string      `json:"status,omitempty"`
	Features   []string    `json:"features,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// ProtocolGroup holds the protocols of one layer of the stack.
type ProtocolGroup struct {
	Layer   string       `json:"layer"` // e.g. "application_layer"
	Title   string       `json:"title"`
	Entries []TopicEntry `json:"entries"`
}

// CloudProvider lists the networking services of one cloud vendor.
type CloudProvider struct {
	ID       string   `json:"id"` // e.g. "aws"
	Name     string   `json:"name"`
	Services []string `json:"services"`
}

// CloudNetworking is the cloud category: vendors plus vendor-neutral concepts.
type CloudNetworking struct {
	Providers []CloudProvider `json:"providers"`
	Concepts  []string        `json:"concepts"`
}

// MetricDefinition maps a performance metric to its unit.
type MetricDefinition struct {
	Key         string `json:"key"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

type OSILayer struct {
	Number    int      `json:"number"`
	Name      string   `json:"name"`
	PDU       string   `json:"pdu"`
	Function  string   `json:"function"`
	Protocols []string `json:"protocols"`
	Devices   []string `json:"devices,omitempty"`
}

type TroubleshootingStep struct {
	Step        int      `json:"step"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Commands    []string `json:"commands,omitempty"`
}
