// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// AuthServiceConfig provides settings needed by the auth service.
type AuthServiceConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
	GetTrialDuration() time.Duration
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// GeocodeConfig provides settings for the Google geocoding boundary.
type GeocodeConfig interface {
	GetMapsAPIKey() string
	GetGeocodeLanguage() string
	GetGeocodeRegion() string
	GetGeocodeCacheTTL() time.Duration
}

// RedisConfig provides settings for the geocode result cache.
type RedisConfig interface {
	GetRedisURL() string
}

// ScanConfig provides settings for the OCR scan pipeline.
type ScanConfig interface {
	GetOCRLanguages() []string
	GetScanStorageEnabled() bool
	GetScanBucket() string
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetScanMaxImageBytes() int64
}

// Config holds all application settings loaded from the environment.
type Config struct {
	Env             string
	HTTPAddr        string
	DatabaseURL     string
	JWTAccessSecret string
	AccessTokenTTL  time.Duration
	TrialDuration   time.Duration
	CORSAllowAll    bool
	CORSOrigins     []string

	MapsAPIKey      string
	GeocodeLanguage string
	GeocodeRegion   string
	GeocodeCacheTTL time.Duration
	RedisURL        string

	OCRLanguages       []string
	ScanStorageEnabled bool
	ScanBucket         string
	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	ScanMaxImageBytes  int64
}

// Load reads configuration from the environment (and .env when present).
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:19000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "true"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":3001"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		JWTAccessSecret: getEnv("JWT_ACCESS_SECRET", ""),
		AccessTokenTTL:  mustDuration(getEnv("JWT_ACCESS_TTL", "720h")),
		TrialDuration:   mustDuration(getEnv("TRIAL_DURATION", "336h")),
		CORSAllowAll:    corsAllowAll,
		CORSOrigins:     corsOrigins,

		MapsAPIKey:      getEnv("GOOGLE_MAPS_API_KEY", ""),
		GeocodeLanguage: getEnv("GEOCODE_LANGUAGE", "id"),
		GeocodeRegion:   getEnv("GEOCODE_REGION", "id"),
		GeocodeCacheTTL: mustDuration(getEnv("GEOCODE_CACHE_TTL", "24h")),
		RedisURL:        getEnv("REDIS_URL", ""),

		OCRLanguages:       splitCSV(getEnv("OCR_LANGUAGES", "ind,eng")),
		ScanStorageEnabled: strings.EqualFold(getEnv("SCAN_STORAGE_ENABLED", "false"), "true"),
		ScanBucket:         getEnv("SCAN_BUCKET", "scan-photos"),
		MinIOEndpoint:      getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:     getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:        strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		ScanMaxImageBytes:  mustInt64(getEnv("SCAN_MAX_IMAGE_BYTES", "10485760")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.ScanStorageEnabled && cfg.MinIOEndpoint == "" {
		return nil, fmt.Errorf("MINIO_ENDPOINT is required when SCAN_STORAGE_ENABLED is true")
	}

	return cfg, nil
}

func (c *Config) GetDatabaseURL() string            { return c.DatabaseURL }
func (c *Config) GetJWTAccessSecret() string        { return c.JWTAccessSecret }
func (c *Config) GetAccessTokenTTL() time.Duration  { return c.AccessTokenTTL }
func (c *Config) GetTrialDuration() time.Duration   { return c.TrialDuration }
func (c *Config) GetHTTPAddr() string               { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool             { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string          { return c.CORSOrigins }
func (c *Config) GetMapsAPIKey() string             { return c.MapsAPIKey }
func (c *Config) GetGeocodeLanguage() string        { return c.GeocodeLanguage }
func (c *Config) GetGeocodeRegion() string          { return c.GeocodeRegion }
func (c *Config) GetGeocodeCacheTTL() time.Duration { return c.GeocodeCacheTTL }
func (c *Config) GetRedisURL() string               { return c.RedisURL }
func (c *Config) GetOCRLanguages() []string         { return c.OCRLanguages }
func (c *Config) GetScanStorageEnabled() bool       { return c.ScanStorageEnabled }
func (c *Config) GetScanBucket() string             { return c.ScanBucket }
func (c *Config) GetMinIOEndpoint() string          { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string         { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string         { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool              { return c.MinIOUseSSL }
func (c *Config) GetScanMaxImageBytes() int64       { return c.ScanMaxImageBytes }

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

func mustInt64(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
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

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
