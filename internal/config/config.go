package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ReferenceEmbedded = "embedded"
	ReferencePostgres = "postgres"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port string

	DatabaseURL string
	RedisURL    string

	RouteServiceURL string
	RouteServiceKey string

	// ReferenceSource selects where the truck catalog and permit dataset come from.
	ReferenceSource string
	TrucksPath      string
	StatesPath      string

	RateLimitRPS   float64
	RateLimitBurst int

	FuelPricePerGallon float64
	AverageSpeedMPH    float64
	PermitCacheTTL     time.Duration
}

// Load reads the configuration. Call godotenv.Load first when a .env file
// should be honored.
func Load() (Config, error) {
	cfg := Config{
		Port:               Get("PORT", "8080"),
		DatabaseURL:        Get("DATABASE_URL", ""),
		RedisURL:           Get("REDIS_URL", ""),
		RouteServiceURL:    Get("ROUTE_SERVICE_URL", ""),
		RouteServiceKey:    Get("ROUTE_SERVICE_KEY", ""),
		ReferenceSource:    strings.ToLower(Get("REFERENCE_SOURCE", ReferenceEmbedded)),
		TrucksPath:         Get("TRUCKS_PATH", ""),
		StatesPath:         Get("STATES_PATH", ""),
		RateLimitRPS:       GetFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:     GetInt("RATE_LIMIT_BURST", 40),
		FuelPricePerGallon: GetFloat("FUEL_PRICE_PER_GALLON", 4.00),
		AverageSpeedMPH:    GetFloat("AVERAGE_SPEED_MPH", 45),
		PermitCacheTTL:     GetDuration("PERMIT_CACHE_TTL", 24*time.Hour),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.ReferenceSource {
	case ReferenceEmbedded:
	case ReferencePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: REFERENCE_SOURCE=%s requires DATABASE_URL", c.ReferenceSource)
		}
	default:
		return fmt.Errorf("config: unknown REFERENCE_SOURCE %q", c.ReferenceSource)
	}

	if (c.TrucksPath == "") != (c.StatesPath == "") {
		return fmt.Errorf("config: TRUCKS_PATH and STATES_PATH must be set together")
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("config: rate limit must not be negative")
	}
	if c.FuelPricePerGallon <= 0 {
		return fmt.Errorf("config: FUEL_PRICE_PER_GALLON must be positive")
	}
	if c.AverageSpeedMPH <= 0 {
		return fmt.Errorf("config: AVERAGE_SPEED_MPH must be positive")
	}

	return nil
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func GetFloat(key string, fallback float64) float64 {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
