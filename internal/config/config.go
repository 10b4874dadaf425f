// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/trackviz/internal/validation"
)

// Config is the complete server configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Render   RenderConfig   `koanf:"render"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
}

// Addr is the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// RenderConfig controls chart rendering.
type RenderConfig struct {
	// CacheSize is the number of rendered outputs kept in memory. Zero
	// disables the cache.
	CacheSize int           `koanf:"cache_size" validate:"min=0"`
	CacheTTL  time.Duration `koanf:"cache_ttl" validate:"gte=0"`

	// PNGRate and PNGBurst throttle raster rendering, the expensive format.
	// A zero rate disables throttling.
	PNGRate  float64 `koanf:"png_rate" validate:"gte=0"`
	PNGBurst int     `koanf:"png_burst" validate:"min=1"`

	// Timeout bounds a single chart or dashboard render, including the wait
	// for a PNG slot. It is checked between layout and encoding.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// MaxPayloadBytes caps request bodies.
	MaxPayloadBytes int64 `koanf:"max_payload_bytes" validate:"min=1024"`

	// AssetsHost serves echarts.min.js and the world map script for HTML
	// output. Empty uses the go-echarts CDN.
	AssetsHost string `koanf:"assets_host" validate:"omitempty,url"`

	MapWidth  int `koanf:"map_width" validate:"min=0"`
	MapHeight int `koanf:"map_height" validate:"min=0"`
}

// SecurityConfig holds CORS and request rate limits.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config without the output writer.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Validate checks every section and returns the first failure.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Server.Environment == "production" {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("invalid configuration: wildcard CORS origin is not allowed in production")
			}
		}
	}
	return nil
}
