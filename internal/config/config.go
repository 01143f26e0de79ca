package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

type Config struct {
	DBPath     string
	Port       string
	Locale     string
	NumWorkers int
	LogLevel   string
}

// ProcessEnvironmentVariables builds the configuration from the environment,
// after loading a .env file from the working directory when one exists.
func ProcessEnvironmentVariables() (*Config, error) {
	_ = godotenv.Load()

	// Defaults target a local single-user install
	env := Config{
		DBPath:     "./data/tracks.db",
		Port:       "9446",
		Locale:     "en-US",
		NumWorkers: 1,
		LogLevel:   "info",
	}

	if v := os.Getenv("TRACKER_DB_PATH"); len(v) != 0 {
		env.DBPath = v
	}

	if v := os.Getenv("TRACKER_PORT"); len(v) != 0 {
		env.Port = v
	}

	if v := os.Getenv("TRACKER_LOCALE"); len(v) != 0 {
		env.Locale = v
	}

	if v := os.Getenv("TRACKER_WORKERS"); len(v) != 0 {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TRACKER_WORKERS %q: %w", v, err)
		}
		env.NumWorkers = n
	}

	if v := os.Getenv("TRACKER_LOG_LEVEL"); len(v) != 0 {
		env.LogLevel = v
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if c.DBPath == "" {
		problems = append(problems, "database path cannot be empty")
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := language.Parse(c.Locale); err != nil {
		problems = append(problems, fmt.Sprintf("invalid locale '%s': %v", c.Locale, err))
	}

	if c.NumWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid worker count %d: must be at least 1", c.NumWorkers))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// LocaleTag returns the configured locale, falling back to English.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
