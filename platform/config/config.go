// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// UpstreamConfig provides the shared timeout for geo-data upstream calls.
type UpstreamConfig interface {
	GetUpstreamTimeout() time.Duration
}

// AddressConfig provides settings for the PDOK address lookup.
type AddressConfig interface {
	UpstreamConfig
}

// BuildingConfig provides settings for the Kadaster BAG API.
type BuildingConfig interface {
	UpstreamConfig
	GetBAGAPIKey() string
	IsBAGEnabled() bool
}

// EnergyLabelConfig provides settings for EP-Online energy label API.
type EnergyLabelConfig interface {
	GetEPOnlineAPIKey() string
	IsEnergyLabelEnabled() bool
}

// ZoningConfig provides settings for the Ruimtelijke Plannen API.
type ZoningConfig interface {
	UpstreamConfig
	GetRuimtelijkePlannenAPIKey() string
	IsZoningEnabled() bool
}

// OpenAIConfig provides settings for the OpenAI chat completions API.
type OpenAIConfig interface {
	GetOpenAIAPIKey() string
	IsOpenAIEnabled() bool
	GetLLMTimeout() time.Duration
}

// AnthropicConfig provides settings for the Anthropic messages API.
type AnthropicConfig interface {
	GetAnthropicAPIKey() string
	IsAnthropicEnabled() bool
	GetLLMTimeout() time.Duration
}

// PolicyConfig points at an optional YAML override for the model policy table.
type PolicyConfig interface {
	GetModelPolicyFile() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
// Every API key is optional; an empty key disables the live call.
type Config struct {
	Env                      string
	HTTPAddr                 string
	CORSAllowAll             bool
	CORSOrigins              []string
	UpstreamTimeout          time.Duration
	LLMTimeout               time.Duration
	OpenAIAPIKey             string
	AnthropicAPIKey          string
	BAGAPIKey                string
	RuimtelijkePlannenAPIKey string
	EPOnlineAPIKey           string
	ModelPolicyFile          string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// UpstreamConfig implementation
func (c *Config) GetUpstreamTimeout() time.Duration { return c.UpstreamTimeout }

// BuildingConfig implementation
func (c *Config) GetBAGAPIKey() string { return c.BAGAPIKey }
func (c *Config) IsBAGEnabled() bool   { return c.BAGAPIKey != "" }

// EnergyLabelConfig implementation
func (c *Config) GetEPOnlineAPIKey() string  { return c.EPOnlineAPIKey }
func (c *Config) IsEnergyLabelEnabled() bool { return c.EPOnlineAPIKey != "" }

// ZoningConfig implementation
func (c *Config) GetRuimtelijkePlannenAPIKey() string { return c.RuimtelijkePlannenAPIKey }
func (c *Config) IsZoningEnabled() bool               { return c.RuimtelijkePlannenAPIKey != "" }

// OpenAIConfig / AnthropicConfig implementation
func (c *Config) GetOpenAIAPIKey() string      { return c.OpenAIAPIKey }
func (c *Config) IsOpenAIEnabled() bool        { return c.OpenAIAPIKey != "" }
func (c *Config) GetAnthropicAPIKey() string   { return c.AnthropicAPIKey }
func (c *Config) IsAnthropicEnabled() bool     { return c.AnthropicAPIKey != "" }
func (c *Config) GetLLMTimeout() time.Duration { return c.LLMTimeout }

// PolicyConfig implementation
func (c *Config) GetModelPolicyFile() string { return c.ModelPolicyFile }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                      getEnv("APP_ENV", "development"),
		HTTPAddr:                 getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:             corsAllowAll,
		CORSOrigins:              corsOrigins,
		UpstreamTimeout:          mustDuration(getEnv("UPSTREAM_TIMEOUT", "10s")),
		LLMTimeout:               mustDuration(getEnv("LLM_TIMEOUT", "60s")),
		OpenAIAPIKey:             strings.TrimSpace(getEnv("OPENAI_API_KEY", "")),
		AnthropicAPIKey:          strings.TrimSpace(getEnv("ANTHROPIC_API_KEY", "")),
		BAGAPIKey:                strings.TrimSpace(getEnv("BAG_API_KEY", "")),
		RuimtelijkePlannenAPIKey: strings.TrimSpace(getEnv("RUIMTELIJKE_PLANNEN_API_KEY", "")),
		EPOnlineAPIKey:           strings.TrimSpace(getEnv("EP_ONLINE_API_KEY", "")),
		ModelPolicyFile:          getEnv("MODEL_POLICY_FILE", ""),
	}

	if cfg.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be a positive duration")
	}
	if cfg.LLMTimeout <= 0 {
		return nil, fmt.Errorf("LLM_TIMEOUT must be a positive duration")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
