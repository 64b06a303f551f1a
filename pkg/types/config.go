package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "content-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ReferenceConfig holds settings for the reference discovery waterfall.
type ReferenceConfig struct {
	HTTPConfig `yaml:",inline"`

	// SerperAPIKey authenticates SERP queries. When empty the waterfall
	// short-circuits to an empty result without any network calls.
	SerperAPIKey string `json:"serper_api_key,omitempty" yaml:"serper_api_key,omitempty"`

	// ResultsPerQuery is the page size requested per strategy (default 20).
	ResultsPerQuery int `json:"results_per_query" yaml:"results_per_query"`

	// SoftTarget stops further strategies once reached (default 10).
	SoftTarget int `json:"soft_target" yaml:"soft_target"`

	// HardCap bounds the total accepted references (default 12).
	HardCap int `json:"hard_cap" yaml:"hard_cap"`

	// MaxParallelChecks bounds the liveness worker pool per batch (default 8).
	MaxParallelChecks int `json:"max_parallel_checks" yaml:"max_parallel_checks"`

	// ValidateTimeout bounds a single liveness probe (default 6s).
	ValidateTimeout time.Duration `json:"validate_timeout" yaml:"validate_timeout"`

	// ProbesPerSecond rate-limits outbound liveness probes across a batch
	// (default 10; zero disables limiting).
	ProbesPerSecond float64 `json:"probes_per_second" yaml:"probes_per_second"`
}

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// MaxTokens caps the response length for generation calls (default 4000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// PagesConfig holds settings for the site page inventory.
type PagesConfig struct {
	// DBPath is the SQLite database file (default "pages/pages.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxSuggestions is the internal link target count (default 10).
	MaxSuggestions int `json:"max_suggestions" yaml:"max_suggestions"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	References ReferenceConfig `json:"references" yaml:"references"`
	AI         AIConfig        `json:"ai" yaml:"ai"`
	Pages      PagesConfig     `json:"pages" yaml:"pages"`
}
