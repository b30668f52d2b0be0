package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds billing-period behavior configured per agency.
// WeekStartDay follows time.Weekday numbering (0 = Sunday).
// MaxHoursPerPatient is the authorized hour cap per patient per
// segment; nil disables the cap.
type PayrollConfig struct {
	WeekStartDay       int
	MaxHoursPerPatient *decimal.Decimal
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "mhc_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// Payroll configuration
	weekStartDay, err := strconv.Atoi(getEnv("PAYROLL_WEEK_START_DAY", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_WEEK_START_DAY: %w", err)
	}
	if weekStartDay < 0 || weekStartDay > 6 {
		return nil, fmt.Errorf("PAYROLL_WEEK_START_DAY must be between 0 and 6")
	}

	config.Payroll = PayrollConfig{
		WeekStartDay: weekStartDay,
	}

	if capStr := getEnv("PAYROLL_MAX_HOURS_PER_PATIENT", ""); capStr != "" {
		maxHours, err := decimal.NewFromString(capStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PAYROLL_MAX_HOURS_PER_PATIENT: %w", err)
		}
		if maxHours.IsNegative() {
			return nil, fmt.Errorf("PAYROLL_MAX_HOURS_PER_PATIENT must be non-negative")
		}
		config.Payroll.MaxHoursPerPatient = &maxHours
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
