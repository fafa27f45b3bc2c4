package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	Report    ReportConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	StaticDir       string
	AllowedOrigins  []string
	TLSCert         string
	TLSKey          string
	ShutdownTimeout int // seconds
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type ReportConfig struct {
	Author string
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			StaticDir:       "./static/main",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 5,
		},
		RateLimit: RateLimitConfig{
			RPS:   5,
			Burst: 10,
		},
		Report: ReportConfig{
			Author: "Vodostok",
		},
	}
}

// Load applies .env (if present) and then the process environment over the defaults.
func Load(envFiles ...string) *Config {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env не прочитан: %v", err)
	}
	cfg := Default()
	loadEnv(cfg)
	return cfg
}

func loadEnv(cfg *Config) {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		cfg.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		if p, err := strconv.Atoi(val); err == nil && p > 0 {
			cfg.Server.Port = p
		} else {
			log.Printf("config: bad SERVER_PORT %q, using %d", val, cfg.Server.Port)
		}
	}
	if val := os.Getenv("STATIC_DIR"); val != "" {
		cfg.Server.StaticDir = val
	}
	if val := os.Getenv("ALLOWED_ORIGINS"); val != "" {
		parts := strings.Split(val, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		cfg.Server.AllowedOrigins = parts
	}
	if val := os.Getenv("TLS_CERT"); val != "" {
		cfg.Server.TLSCert = val
	}
	if val := os.Getenv("TLS_KEY"); val != "" {
		cfg.Server.TLSKey = val
	}
	if val := os.Getenv("SHUTDOWN_TIMEOUT"); val != "" {
		if p, err := strconv.Atoi(val); err == nil && p > 0 {
			cfg.Server.ShutdownTimeout = p
		} else {
			log.Printf("config: bad SHUTDOWN_TIMEOUT %q, using %d", val, cfg.Server.ShutdownTimeout)
		}
	}

	if val := os.Getenv("RATE_LIMIT_RPS"); val != "" {
		if p, err := strconv.ParseFloat(val, 64); err == nil && p > 0 {
			cfg.RateLimit.RPS = p
		} else {
			log.Printf("config: bad RATE_LIMIT_RPS %q, using %v", val, cfg.RateLimit.RPS)
		}
	}
	if val := os.Getenv("RATE_LIMIT_BURST"); val != "" {
		if p, err := strconv.Atoi(val); err == nil && p > 0 {
			cfg.RateLimit.Burst = p
		} else {
			log.Printf("config: bad RATE_LIMIT_BURST %q, using %d", val, cfg.RateLimit.Burst)
		}
	}

	if val := os.Getenv("REPORT_AUTHOR"); val != "" {
		cfg.Report.Author = val
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// TLSEnabled is true only when both the certificate and the key are configured.
func (c *Config) TLSEnabled() bool {
	return c.Server.TLSCert != "" && c.Server.TLSKey != ""
}

func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}
