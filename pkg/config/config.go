package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
	SMS struct {
		Region string `yaml:"region"`
	} `yaml:"sms"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		From     string `yaml:"from"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"smtp"`
	Search       Search       `yaml:"search"`
	Verification Verification `yaml:"verification"`
}

// Search holds the defaults and cache timing for property searches.
type Search struct {
	DefaultCity     string `yaml:"default_city"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

// Verification holds the timings and key prefixes for the phone and email
// verification flows. These are configuration, not constants, so tests can
// run the flows with different timings.
type Verification struct {
	CodePrefix      string `yaml:"code_prefix"`
	RateLimitPrefix string `yaml:"rate_limit_prefix"`
	// CodeTTLSeconds applies on every write of a verification session,
	// including the re-save after a failed attempt, so a failed attempt
	// resets the clock.
	CodeTTLSeconds        int    `yaml:"code_ttl_seconds"`
	RateLimitTTLSeconds   int    `yaml:"rate_limit_ttl_seconds"`
	MaxAttempts           int    `yaml:"max_attempts"`
	ResendCooldownMinutes int    `yaml:"resend_cooldown_minutes"`
	TokenExpiryMinutes    int    `yaml:"token_expiry_minutes"`
	EmailBaseURL          string `yaml:"email_base_url"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	// Override with environment variables if set
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_PORT value: %v", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		dbNum, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value: %v", err)
		}
		cfg.Redis.DB = dbNum
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if region := os.Getenv("SNS_REGION"); region != "" {
		cfg.SMS.Region = region
	}
	if host := os.Getenv("SMTP_HOST"); host != "" {
		cfg.SMTP.Host = host
	}
	if password := os.Getenv("SMTP_PASSWORD"); password != "" {
		cfg.SMTP.Password = password
	}

	// Set default values
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.SMS.Region == "" {
		cfg.SMS.Region = "eu-west-1"
	}
	if cfg.Search.DefaultCity == "" {
		cfg.Search.DefaultCity = "Madrid"
	}
	if cfg.Search.CacheTTLSeconds == 0 {
		cfg.Search.CacheTTLSeconds = 300
	}
	if cfg.Verification.CodePrefix == "" {
		cfg.Verification.CodePrefix = "verification:"
	}
	if cfg.Verification.RateLimitPrefix == "" {
		cfg.Verification.RateLimitPrefix = "ratelimit:send:"
	}
	if cfg.Verification.CodeTTLSeconds == 0 {
		cfg.Verification.CodeTTLSeconds = 120
	}
	if cfg.Verification.RateLimitTTLSeconds == 0 {
		cfg.Verification.RateLimitTTLSeconds = 60
	}
	if cfg.Verification.MaxAttempts == 0 {
		cfg.Verification.MaxAttempts = 3
	}
	if cfg.Verification.ResendCooldownMinutes == 0 {
		cfg.Verification.ResendCooldownMinutes = 2
	}
	if cfg.Verification.TokenExpiryMinutes == 0 {
		cfg.Verification.TokenExpiryMinutes = 20
	}

	// Validation
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required")
	}
	if cfg.Redis.Port <= 0 || cfg.Redis.Port > 65535 {
		return nil, fmt.Errorf("REDIS_PORT must be between 1 and 65535")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &cfg, nil
}
