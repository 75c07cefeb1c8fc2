package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Name  string `json:"name"`
	Debug bool   `json:"debug"`
}

type ServerConfig struct {
	Host                string     `json:"host"`
	Port                int        `json:"port"`
	ReadTimeoutSeconds  int        `json:"read_timeout_seconds"`
	WriteTimeoutSeconds int        `json:"write_timeout_seconds"`
	Cors                CorsConfig `json:"cors,omitempty"`
}

type CorsConfig struct {
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
	AllowedMethods []string `json:"allowed_methods,omitempty"`
	AllowedHeaders []string `json:"allowed_headers,omitempty"`
}

// UpstreamConfig describes the product API this service proxies to.
// BaseURL is the one required setting; everything else has defaults.
type UpstreamConfig struct {
	BaseURL        string  `json:"base_url"`
	TimeoutSeconds int     `json:"timeout_seconds"`
	RatePerSecond  float64 `json:"rate_per_second"`
	RateBurst      int     `json:"rate_burst"`
}

// DashboardConfig carries the list view and form policy knobs.
// CategoryRequired and KeepModalOnError exist because deployments disagree
// on both; they are deliberate configuration, not defaults to second-guess.
type DashboardConfig struct {
	PageSize         int  `json:"page_size"`
	DebounceMillis   int  `json:"debounce_millis"`
	CategoryRequired bool `json:"category_required"`
	KeepModalOnError bool `json:"keep_modal_on_error"`
}

type MCPConfig struct {
	APIKey string `json:"api_key,omitempty"`
}

type Config struct {
	App       AppConfig       `json:"app"`
	Server    ServerConfig    `json:"server"`
	Upstream  UpstreamConfig  `json:"upstream"`
	Dashboard DashboardConfig `json:"dashboard"`
	MCP       MCPConfig       `json:"mcp"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		App:    AppConfig{Name: "prodash"},
		Server: ServerConfig{Port: 8080, ReadTimeoutSeconds: 15, WriteTimeoutSeconds: 30},
		Upstream: UpstreamConfig{
			TimeoutSeconds: 15,
			RatePerSecond:  0, // 0 disables outbound pacing
			RateBurst:      1,
		},
		Dashboard: DashboardConfig{
			PageSize:         10,
			DebounceMillis:   300,
			CategoryRequired: false,
			KeepModalOnError: true,
		},
	}
}

// LoadFile merges a JSON config file into c. A missing file is not an error
// so deployments can run on defaults plus environment alone.
func (c *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(b, c)
}

// LoadFromEnv loads .env (if present) then applies environment overrides.
func (c *Config) LoadFromEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("UPSTREAM_BASE_URL"); v != "" {
		c.Upstream.BaseURL = v
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Upstream.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("UPSTREAM_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Upstream.RatePerSecond = f
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Server.Port = n
		}
	}
	if v := os.Getenv("PRODASH_DEBUG"); v == "true" {
		c.App.Debug = true
	}
	if v := os.Getenv("PRODASH_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Dashboard.PageSize = n
		}
	}
	if v := os.Getenv("PRODASH_CATEGORY_REQUIRED"); v == "true" {
		c.Dashboard.CategoryRequired = true
	}
	if v := os.Getenv("PRODASH_KEEP_MODAL_ON_ERROR"); v == "false" {
		c.Dashboard.KeepModalOnError = false
	}
	if v := os.Getenv("PRODASH_MCP_API_KEY"); v != "" {
		c.MCP.APIKey = v
	}
}
