// Package catalog holds the static reference material served by the page
// routes. A Catalog is built once at startup and never changes afterwards,
// so it can be shared by any number of request goroutines without locking.
package catalog

import (
	"fmt"
	"slices"

	"github.com/mfreeman451/networkhub/pkg/models"
)

// Category keys, matching the page routes.
const (
	CategoryProtocols       = "protocols"
	CategorySecurity        = "security"
	CategoryModernTech      = "modern-tech"
	CategoryTools           = "tools"
	CategoryCloud           = "cloud"
	CategoryPerformance     = "performance"
	CategoryOSIModel        = "osi-model"
	CategoryTroubleshooting = "troubleshooting"
	CategoryFuture          = "future"
)

var categoryKeys = []string{
	CategoryProtocols,
	CategorySecurity,
	CategoryModernTech,
	CategoryTools,
	CategoryCloud,
	CategoryPerformance,
	CategoryOSIModel,
	CategoryTroubleshooting,
	CategoryFuture,
}

// Catalog is the immutable set of reference tables.
type Catalog struct {
	protocols       []models.ProtocolGroup
	security        []models.TopicEntry
	modernTech      []models.TopicEntry
	tools           []models.TopicEntry
	cloud           models.CloudNetworking
	metrics         []models.MetricDefinition
	osiLayers       []models.OSILayer
	troubleshooting []models.TroubleshootingStep
	future          []models.TopicEntry
}

// New builds the catalog from the built-in tables.
func New() *Catalog {
	return &Catalog{
		protocols:       protocolTable(),
		security:        securityTable(),
		modernTech:      modernTechTable(),
		tools:           toolTable(),
		cloud:           cloudTable(),
		metrics:         metricTable(),
		osiLayers:       osiTable(),
		troubleshooting: troubleshootingTable(),
		future:          futureTable(),
	}
}

// Categories returns the category keys in display order.
func Categories() []string {
	return slices.Clone(categoryKeys)
}

// Protocols returns the protocol reference grouped by family.
func (c *Catalog) Protocols() []models.ProtocolGroup {
	out := make([]models.ProtocolGroup, len(c.protocols))
	for i, g := range c.protocols {
		out[i] = models.ProtocolGroup{
			Layer:   g.Layer,
			Title:   g.Title,
			Entries: cloneEntries(g.Entries),
		}
	}

	return out
}

// SecurityTopics returns a copy of the security entries.
func (c *Catalog) SecurityTopics() []models.TopicEntry { return cloneEntries(c.security) }

// ModernTechnologies returns a copy of the 5G, SD-WAN and related entries.
func (c *Catalog) ModernTechnologies() []models.TopicEntry { return cloneEntries(c.modernTech) }

// Tools returns a copy of the network tool entries.
func (c *Catalog) Tools() []models.TopicEntry { return cloneEntries(c.tools) }

// FutureTrends returns a copy of the emerging technology entries.
func (c *Catalog) FutureTrends() []models.TopicEntry { return cloneEntries(c.future) }

// Cloud returns the provider table and cloud networking concepts.
func (c *Catalog) Cloud() models.CloudNetworking {
	providers := make([]models.CloudProvider, len(c.cloud.Providers))
	for i, p := range c.cloud.Providers {
		providers[i] = models.CloudProvider{
			ID:       p.ID,
			Name:     p.Name,
			Services: slices.Clone(p.Services),
		}
	}

	return models.CloudNetworking{
		Providers: providers,
		Concepts:  slices.Clone(c.cloud.Concepts),
	}
}

// PerformanceMetrics returns the metric definitions shown on the performance page.
func (c *Catalog) PerformanceMetrics() []models.MetricDefinition {
	return slices.Clone(c.metrics)
}

// OSILayers returns the seven layers, top first.
func (c *Catalog) OSILayers() []models.OSILayer {
	out := make([]models.OSILayer, len(c.osiLayers))
	for i, l := range c.osiLayers {
		out[i] = l
		out[i].Protocols = slices.Clone(l.Protocols)
		out[i].Devices = slices.Clone(l.Devices)
	}

	return out
}

// Troubleshooting returns the ordered troubleshooting steps.
func (c *Catalog) Troubleshooting() []models.TroubleshootingStep {
	out := make([]models.TroubleshootingStep, len(c.troubleshooting))
	for i, s := range c.troubleshooting {
		out[i] = s
		out[i].Commands = slices.Clone(s.Commands)
	}

	return out
}

// Category returns the collection stored under key. The concrete type
// depends on the category.
func (c *Catalog) Category(key string) (any, error) {
	switch key {
	case CategoryProtocols:
		return c.Protocols(), nil
	case CategorySecurity:
		return c.SecurityTopics(), nil
	case CategoryModernTech:
		return c.ModernTechnologies(), nil
	case CategoryTools:
		return c.Tools(), nil
	case CategoryCloud:
		return c.Cloud(), nil
	case CategoryPerformance:
		return c.PerformanceMetrics(), nil
	case CategoryOSIModel:
		return c.OSILayers(), nil
	case CategoryTroubleshooting:
		return c.Troubleshooting(), nil
	case CategoryFuture:
		return c.FutureTrends(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
}

// MustCategory is Category for keys fixed at build time. An unknown key is a
// programming error and panics.
func (c *Catalog) MustCategory(key string) any {
	v, err := c.Category(key)
	if err != nil {
		panic(err)
	}

	return v
}

func cloneEntries(entries []models.TopicEntry) []models.TopicEntry {
	out := make([]models.TopicEntry, len(entries))
	for i, e := range entries {
		out[i] = e
		out[i].Features = slices.Clone(e.Features)
		out[i].Attributes = slices.Clone(e.Attributes)
	}

	return out
}
