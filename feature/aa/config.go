package aa

// Config holds configuration for the Artificial Analysis API client.
type Config struct {
	// BaseURL is the API base URL.
	BaseURL string `mapstructure:"base_url" default:"https://artificialanalysis.ai/api/v2"`
	// TimeoutSeconds is the full-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ConnectTimeoutSeconds is the connection setup timeout in seconds.
	ConnectTimeoutSeconds int `mapstructure:"connect_timeout_seconds" default:"10"`
}
