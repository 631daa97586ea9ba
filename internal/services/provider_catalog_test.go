package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigaleverage/internal/models"
)

func TestProviderCatalog_ListProviders(t *testing.T) {
	catalog, err := NewProviderCatalog()
	require.NoError(t, err)

	assert.Equal(t, []models.Provider{{
		ID:   "coingecko",
		Name: "CoinGecko",
		Logo: "assets/images/coingecko-logo.png",
	}}, catalog.ListProviders())
}

func TestProviderCatalog_ListDataStreamsIsDeterministic(t *testing.T) {
	catalog, err := NewProviderCatalog()
	require.NoError(t, err)
	want := []models.DataStream{
		{ID: "btc-price", Name: "BTC Price"},
		{ID: "eth-price", Name: "ETH Price"},
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, want, catalog.ListDataStreams("coingecko"))
		unknown := catalog.ListDataStreams("unknown")
		assert.NotNil(t, unknown)
		assert.Empty(t, unknown)
	}
}

func TestProviderCatalog_ListDataStreamsReturnsCopy(t *testing.T) {
	catalog, err := NewProviderCatalog()
	require.NoError(t, err)

	streams := catalog.ListDataStreams("coingecko")
	streams[0].Name = "changed"

	assert.Equal(t, "BTC Price", catalog.ListDataStreams("coingecko")[0].Name)
}

func TestProviderCatalog_Lookups(t *testing.T) {
	catalog, err := NewProviderCatalog()
	require.NoError(t, err)

	p, ok := catalog.Provider("coingecko")
	assert.True(t, ok)
	assert.Equal(t, "CoinGecko", p.Name)
	_, ok = catalog.Provider("kraken")
	assert.False(t, ok)

	assert.True(t, catalog.HasDataStream("coingecko", "eth-price"))
	assert.False(t, catalog.HasDataStream("coingecko", "sol-price"))
	assert.False(t, catalog.HasDataStream("kraken", "btc-price"))
}

func TestProviderCatalog_InvalidAsset(t *testing.T) {
	_, err := newProviderCatalogFromJSON([]byte("{"))
	assert.ErrorContains(t, err, "parse providers asset")

	_, err = newProviderCatalogFromJSON([]byte(`{"providers":[{"id":"a"},{"id":"a"}]}`))
	assert.ErrorContains(t, err, `duplicate provider "a"`)
}

func TestProviderCatalog_SkipsBlankIDs(t *testing.T) {
	c, err := newProviderCatalogFromJSON([]byte(`{"providers":[{"id":" "},{"id":"x","displayName":"X"}]}`))
	require.NoError(t, err)

	providers := c.ListProviders()
	require.Len(t, providers, 1)
	assert.Equal(t, "x", providers[0].ID)
	assert.Empty(t, c.ListDataStreams("x"))
}
