package models

// Provider is a market-data source offered by the catalog.
type Provider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Logo is a frontend-relative image path.
	Logo string `json:"logo"`
}

// DataStream is one metric offered by a provider.
type DataStream struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
