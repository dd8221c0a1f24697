package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound API calls.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 120s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// CABundleFile is an optional path to a PEM certificate bundle used to
	// verify the provider's TLS certificate (e.g. a corporate or national
	// root CA).
	CABundleFile string `json:"ca_bundle_file,omitempty" yaml:"ca_bundle_file,omitempty"`

	// InsecureSkipVerify disables TLS certificate verification. This must be
	// an explicit opt-in; every client built with it logs a warning.
	InsecureSkipVerify bool `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// LLMConfig holds settings for the model client.
type LLMConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the chat-completion API endpoint.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// OAuthURL is the token-exchange endpoint.
	OAuthURL string `json:"oauth_url" yaml:"oauth_url"`

	// Credentials is the base64 authorization key for the OAuth exchange.
	Credentials string `json:"credentials,omitempty" yaml:"credentials,omitempty"`

	// Scope is the API scope requested during the OAuth exchange
	// (default "GIGACHAT_API_PERS").
	Scope string `json:"scope" yaml:"scope"`

	// Model is the default model identifier (default "GigaChat-2-Max").
	Model string `json:"model" yaml:"model"`

	// Temperature is the default sampling temperature (default 0.7).
	// Individual content kinds override it per call.
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// PromptsConfig holds settings for prompt template loading.
type PromptsConfig struct {
	// Dir is the directory containing <name>.txt template files.
	Dir string `json:"dir" yaml:"dir"`
}

// ExportConfig holds settings for document export.
type ExportConfig struct {
	// FontsDir is the directory containing the TTF font family used for
	// PDF rendering.
	FontsDir string `json:"fonts_dir" yaml:"fonts_dir"`

	// OutputDir is the directory exported documents are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// SessionConfig holds settings for the local session store.
type SessionConfig struct {
	// DataDir is the directory holding the SQLite database.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// AssistantConfig groups all component configurations.
type AssistantConfig struct {
	LLM     LLMConfig     `json:"llm" yaml:"llm"`
	Prompts PromptsConfig `json:"prompts" yaml:"prompts"`
	Export  ExportConfig  `json:"export" yaml:"export"`
	Session SessionConfig `json:"session" yaml:"session"`
}
