package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8080"
	defaultIssuer      = "skillsphere"
	defaultTokenTTL    = 24 * time.Hour
	defaultSweepSpec   = "@every 10m"
	defaultLoginPerMin = 20
	minJWTSecretLength = 32
)

type Config struct {
	Port                  string
	PostgresURL           string
	JWTSecret             string
	JWTIssuer             string
	JWTTTL                time.Duration
	GinMode               string
	SubscriptionSweepSpec string
	RevocationSweepSpec   string
	LoginRatePerMinute    int
}

// Load reads the process environment, after merging an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary key lookup.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:                  get("PORT", defaultPort),
		PostgresURL:           get("POSTGRES_URL", ""),
		JWTSecret:             get("JWT_SECRET", ""),
		JWTIssuer:             get("JWT_ISSUER", defaultIssuer),
		GinMode:               get("GIN_MODE", "release"),
		SubscriptionSweepSpec: get("SUBSCRIPTION_SWEEP_SPEC", defaultSweepSpec),
		RevocationSweepSpec:   get("REVOCATION_SWEEP_SPEC", defaultSweepSpec),
		JWTTTL:                defaultTokenTTL,
		LoginRatePerMinute:    defaultLoginPerMin,
	}

	if raw := get("JWT_TTL", ""); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("config: invalid JWT_TTL %q", raw)
		}
		cfg.JWTTTL = ttl
	}

	if raw := get("LOGIN_RATE_PER_MINUTE", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: invalid LOGIN_RATE_PER_MINUTE %q", raw)
		}
		cfg.LoginRatePerMinute = n
	}

	if len(cfg.JWTSecret) < minJWTSecretLength {
		return nil, fmt.Errorf("config: JWT_SECRET must be at least %d bytes", minJWTSecretLength)
	}

	return cfg, nil
}
