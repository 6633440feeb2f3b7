package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gym_frontdesk_backend/pkg/utils"

	"github.com/joho/godotenv"
)

// Member delete policies.
const (
	DeletePolicyOrphan   = "orphan"
	DeletePolicyRestrict = "restrict"
	DeletePolicyCascade  = "cascade"
)

// Config holds runtime settings for the front-desk server.
type Config struct {
	Port string

	DBDriver    string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	AdminUsername string
	AdminPassword string

	ReceiptDir         string
	MemberDeletePolicy string
	CORSAllowedOrigins []string

	LoginRateRPS   float64
	LoginRateBurst int

	LogLevel  string
	LogFormat string

	GymName    string
	GymAddress string
	GymPhone   string

	Location *time.Location
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Port:               utils.Getenv("PORT", "8080"),
		DBDriver:           strings.ToLower(utils.Getenv("DB_DRIVER", "sqlite")),
		DatabaseURL:        utils.Getenv("DATABASE_URL", "gym.db"),
		JWTSecret:          utils.Getenv("JWT_SECRET", ""),
		JWTTTL:             utils.GetenvDuration("JWT_TTL", 12*time.Hour),
		AdminUsername:      utils.Getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:      utils.Getenv("ADMIN_PASSWORD", ""),
		ReceiptDir:         utils.Getenv("RECEIPT_DIR", "receipts"),
		MemberDeletePolicy: strings.ToLower(utils.Getenv("MEMBER_DELETE_POLICY", DeletePolicyOrphan)),
		CORSAllowedOrigins: splitList(utils.Getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		LoginRateRPS:       utils.GetenvFloat("LOGIN_RATE_RPS", 0.5),
		LoginRateBurst:     utils.GetenvInt("LOGIN_RATE_BURST", 5),
		LogLevel:           utils.Getenv("LOG_LEVEL", "info"),
		LogFormat:          strings.ToLower(utils.Getenv("LOG_FORMAT", "console")),
		GymName:            utils.Getenv("GYM_NAME", "ARIF X MAINUL GYM"),
		GymAddress:         utils.Getenv("GYM_ADDRESS", ""),
		GymPhone:           utils.Getenv("GYM_PHONE", ""),
	}

	loc, err := time.LoadLocation(utils.Getenv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail later at request time.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", c.DBDriver)
	}
	switch c.MemberDeletePolicy {
	case DeletePolicyOrphan, DeletePolicyRestrict, DeletePolicyCascade:
	default:
		return fmt.Errorf("unsupported MEMBER_DELETE_POLICY %q", c.MemberDeletePolicy)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	return nil
}

// PrettyLogs reports whether the console log writer should be used.
func (c *Config) PrettyLogs() bool {
	return c.LogFormat != "json"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
