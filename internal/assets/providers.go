package assets

import _ "embed"

// ProvidersData holds the raw JSON catalog of market-data providers and
// their data streams.
//
//go:embed providers.json
var ProvidersData []byte
