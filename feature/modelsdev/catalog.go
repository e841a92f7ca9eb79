package modelsdev

// Catalog is the full models.dev document, keyed by provider ID.
type Catalog map[string]Provider

// Provider is one API provider and its hosted models, keyed by model ID.
type Provider struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Env    []string         `json:"env"`
	Npm    *string          `json:"npm"`
	API    *string          `json:"api"`
	Doc    *string          `json:"doc"`
	Models map[string]Model `json:"models"`
}

// Model is one catalog entry. Capability flags and limits are all
// optional; absent means unknown, not false.
type Model struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Family           *string     `json:"family"`
	Attachment       *bool       `json:"attachment"`
	Reasoning        *bool       `json:"reasoning"`
	ToolCall         *bool       `json:"tool_call"`
	StructuredOutput *bool       `json:"structured_output"`
	Temperature      *bool       `json:"temperature"`
	Knowledge        *string     `json:"knowledge"`
	ReleaseDate      *string     `json:"release_date"`
	LastUpdated      *string     `json:"last_updated"`
	OpenWeights      *bool       `json:"open_weights"`
	Status           *string     `json:"status"`
	Limit            *Limit      `json:"limit"`
	Cost             *Cost       `json:"cost"`
	Modalities       *Modalities `json:"modalities"`
}

// Limit holds token limits.
type Limit struct {
	Context *int64 `json:"context"`
	Input   *int64 `json:"input"`
	Output  *int64 `json:"output"`
}

// Cost is USD per million tokens as listed by the provider.
type Cost struct {
	Input      *float64 `json:"input"`
	Output     *float64 `json:"output"`
	CacheRead  *float64 `json:"cache_read"`
	CacheWrite *float64 `json:"cache_write"`
}

// Modalities lists accepted input and produced output kinds.
type Modalities struct {
	Input  []string `json:"input"`
	Output []string `json:"output"`
}
