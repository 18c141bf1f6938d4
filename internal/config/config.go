// internal/config/config.go
package config

import (
	"os"
	"time"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	Seed struct {
		OfficeName    string `json:"office_name"`
		OfficeCity    string `json:"office_city"`
		AdminEmail    string `json:"admin_email"`
		AdminPassword string `json:"admin_password"`
	} `json:"seed"`
	// DefaultCity scopes district lookups when the client omits ?city=.
	DefaultCity string `json:"default_city"`
	ServiceName string `json:"service_name"`
}

func Load() *Config {
	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "constituent_crm")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = time.Hour * 24

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	// Sendgrid configuration
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")

	// Seed defaults
	cfg.Seed.OfficeName = getEnv("SEED_OFFICE_NAME", "花蓮縣議員服務處")
	cfg.Seed.OfficeCity = getEnv("SEED_OFFICE_CITY", "花蓮縣")
	cfg.Seed.AdminEmail = getEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	cfg.Seed.AdminPassword = getEnv("SEED_ADMIN_PASSWORD", "")

	cfg.DefaultCity = getEnv("DEFAULT_CITY", "花蓮縣")
	cfg.ServiceName = getEnv("SERVICE_NAME", "constituent-crm")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
