package config

import "os"

const (
	// EnvAIAPIKey overrides the text-generation API key. The standard
	// OPENAI_API_KEY variable is honored as a fallback.
	EnvAIAPIKey = "AI_API_KEY"

	// EnvAIModel overrides the text-generation model.
	EnvAIModel = "AI_MODEL"
)

// AIConfig contains text-generation configuration for notebook analysis.
// When no API key is configured the analysis endpoints report the
// capability as unavailable; the rest of the service is unaffected.
type AIConfig struct {
	Model  string `toml:"model"`
	APIKey string `toml:"api_key"`
}

// Enabled reports whether an API key has been configured.
func (c *AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// Finalize applies defaults and loads environment overrides.
func (c *AIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AIConfig) Merge(overlay *AIConfig) {
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
}

func (c *AIConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "gpt-5-mini"
	}
}

func (c *AIConfig) loadEnv() {
	if v := os.Getenv(EnvAIAPIKey); v != "" {
		c.APIKey = v
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}
