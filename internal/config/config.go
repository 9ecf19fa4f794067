package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds server configuration.
type Config struct {
	Host           string
	Port           string
	Debug          bool
	RateLimitRPM   int
	CacheTTL       time.Duration
	RequestTimeout time.Duration
	MaxN           int
	LogLevel       string
	LogFormat      string
}

// fileConfig is the YAML shape of an optional config file. Zero values
// leave the corresponding Config field untouched.
type fileConfig struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Limits struct {
		RateLimitRPM int `yaml:"rateLimitRpm"`
		MaxN         int `yaml:"maxN"`
	} `yaml:"limits"`
	Cache struct {
		TTL string `yaml:"ttl"`
	} `yaml:"cache"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			return true
		default:
			return false
		}
	}
	return def
}

func defaults() Config {
	return Config{
		Host:           "127.0.0.1",
		Port:           "8080",
		Debug:          false,
		RateLimitRPM:   60,
		CacheTTL:       60 * time.Second,
		RequestTimeout: 5 * time.Second,
		MaxN:           10_000_000,
		LogLevel:       "info",
		LogFormat:      "json",
	}
}

// Load loads configuration from environment variables with sane defaults.
func Load() Config {
	cfg, _ := LoadWithFile("")
	return cfg
}

// LoadWithFile loads defaults, then the YAML file at path (if given),
// then environment overrides. Env always wins over the file.
func LoadWithFile(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
		merge(&cfg, fc)
	}
	applyEnv(&cfg)
	return cfg, nil
}

func merge(dst *Config, src fileConfig) {
	if src.Server.Host != "" {
		dst.Host = src.Server.Host
	}
	if src.Server.Port != "" {
		dst.Port = src.Server.Port
	}
	if src.Logging.Level != "" {
		dst.LogLevel = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.LogFormat = src.Logging.Format
	}
	if src.Limits.RateLimitRPM != 0 {
		dst.RateLimitRPM = src.Limits.RateLimitRPM
	}
	if src.Limits.MaxN != 0 {
		dst.MaxN = src.Limits.MaxN
	}
	if src.Cache.TTL != "" {
		if d, err := time.ParseDuration(src.Cache.TTL); err == nil {
			dst.CacheTTL = d
		}
	}
}

func applyEnv(cfg *Config) {
	cfg.Host = getenv("NIGEL_API_HOST", cfg.Host)
	cfg.Port = getenv("NIGEL_API_PORT", cfg.Port)
	cfg.Debug = getbool("NIGEL_API_DEBUG", cfg.Debug)
	cfg.RateLimitRPM = getint("RATE_LIMIT_RPM", cfg.RateLimitRPM)
	cfg.CacheTTL = getdur("CACHE_TTL", cfg.CacheTTL)
	cfg.RequestTimeout = getdur("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.MaxN = getint("MAX_N", cfg.MaxN)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("LOG_FORMAT", cfg.LogFormat)
}
