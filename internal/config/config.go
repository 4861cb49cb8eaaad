// Package config reads the fin configuration from the environment.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// AccountsFile is the default accounts file to load, if any.
	AccountsFile string
	// Currency is the ISO 4217 code used to format amounts.
	Currency string
	// LogLevel is the minimum level of the logs written to stderr.
	LogLevel string
}

// Load reads configuration from environment variables and the given .env
// files. Without files, it looks for .env in the working directory.
//
// A missing .env file is not an error. Any other failure to read one is
// returned along with the configuration read from what remains.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var errs []error
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}

	return &Config{
		AccountsFile: getEnv("FIN_ACCOUNTS_FILE", ""),
		Currency:     getEnv("FIN_CURRENCY", "USD"),
		LogLevel:     getEnv("FIN_LOG_LEVEL", "warn"),
	}, errors.Join(errs...)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
