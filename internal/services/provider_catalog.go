package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"gigaleverage/internal/assets"
	"gigaleverage/internal/models"
)

// ProviderCatalog is the static, read-only registry of providers and the
// data streams each of them offers.
type ProviderCatalog interface {
	ListProviders() []models.Provider
	ListDataStreams(providerID string) []models.DataStream
	Provider(providerID string) (models.Provider, bool)
	HasDataStream(providerID, dataStreamID string) bool
}

type providerCatalog struct {
	order     []string
	providers map[string]models.Provider
	streams   map[string][]models.DataStream
}

type rawCatalogFile struct {
	Providers []rawCatalogProvider `json:"providers"`
}

type rawCatalogProvider struct {
	ID          string          `json:"id"`
	DisplayName string          `json:"displayName"`
	Logo        string          `json:"logo"`
	DataStreams []rawDataStream `json:"dataStreams"`
}

type rawDataStream struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewProviderCatalog parses the embedded providers asset.
func NewProviderCatalog() (ProviderCatalog, error) {
	return newProviderCatalogFromJSON(assets.ProvidersData)
}

func newProviderCatalogFromJSON(data []byte) (*providerCatalog, error) {
	var parsed rawCatalogFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse providers asset: %w", err)
	}

	c := &providerCatalog{
		providers: make(map[string]models.Provider),
		streams:   make(map[string][]models.DataStream),
	}
	for _, p := range parsed.Providers {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			continue
		}
		if _, dup := c.providers[id]; dup {
			return nil, fmt.Errorf("parse providers asset: duplicate provider %q", id)
		}
		c.order = append(c.order, id)
		c.providers[id] = models.Provider{
			ID:   id,
			Name: strings.TrimSpace(p.DisplayName),
			Logo: strings.TrimSpace(p.Logo),
		}
		streams := make([]models.DataStream, 0, len(p.DataStreams))
		for _, ds := range p.DataStreams {
			streams = append(streams, models.DataStream{
				ID:   strings.TrimSpace(ds.ID),
				Name: strings.TrimSpace(ds.Name),
			})
		}
		c.streams[id] = streams
	}
	return c, nil
}

func (c *providerCatalog) ListProviders() []models.Provider {
	out := make([]models.Provider, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.providers[id])
	}
	return out
}

// ListDataStreams returns an empty slice for unknown providers.
func (c *providerCatalog) ListDataStreams(providerID string) []models.DataStream {
	streams := c.streams[providerID]
	out := make([]models.DataStream, len(streams))
	copy(out, streams)
	return out
}

func (c *providerCatalog) Provider(providerID string) (models.Provider, bool) {
	p, ok := c.providers[providerID]
	return p, ok
}

func (c *providerCatalog) HasDataStream(providerID, dataStreamID string) bool {
	for _, ds := range c.streams[providerID] {
		if ds.ID == dataStreamID {
			return true
		}
	}
	return false
}
