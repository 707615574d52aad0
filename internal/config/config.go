// Package config loads and validates application configuration from
// environment variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/barlev-tours/schedule-board/fieldmap"
	"github.com/barlev-tours/schedule-board/internal/domain"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string for saved grid views. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (Next.js dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// TeableBaseURL is the record store's API root, e.g.
	// "https://app.teable.io/api". Required.
	TeableBaseURL string

	// TeableAPIToken is the bearer token for the record store. Required.
	TeableAPIToken string

	// Table IDs of the four tables the application proxies. Required.
	ScheduleTableID  string
	CustomersTableID string
	DriversTableID   string
	VehiclesTableID  string

	// FieldMap binds semantic roles to the schedule table's field keys.
	// Loaded from FIELD_MAP_FILE when set, else from the embedded default.
	FieldMap domain.FieldMap
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is merged in first if present; real
// environment variables win. Returns an error listing any required variables
// that are not set.
func Load() (Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
	}

	var missing []string
	for _, v := range []struct {
		name string
		dst  *string
	}{
		{"DATABASE_URL", &cfg.DatabaseURL},
		{"TEABLE_BASE_URL", &cfg.TeableBaseURL},
		{"TEABLE_API_TOKEN", &cfg.TeableAPIToken},
		{"SCHEDULE_TABLE_ID", &cfg.ScheduleTableID},
		{"CUSTOMERS_TABLE_ID", &cfg.CustomersTableID},
		{"DRIVERS_TABLE_ID", &cfg.DriversTableID},
		{"VEHICLES_TABLE_ID", &cfg.VehiclesTableID},
	} {
		*v.dst = os.Getenv(v.name)
		if *v.dst == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	fm, err := loadFieldMap(os.Getenv("FIELD_MAP_FILE"))
	if err != nil {
		return Config{}, err
	}
	cfg.FieldMap = fm

	return cfg, nil
}

// loadFieldMap reads the field-key mapping from path, or from the embedded
// default mapping when path is empty.
func loadFieldMap(path string) (domain.FieldMap, error) {
	data := fieldmap.Default
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return domain.FieldMap{}, fmt.Errorf("read field map %s: %w", path, err)
		}
		data = b
	}
	fm, err := domain.ParseFieldMap(data)
	if err != nil {
		return domain.FieldMap{}, fmt.Errorf("load field map: %w", err)
	}
	return fm, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
