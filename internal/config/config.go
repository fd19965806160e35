// Package config resolves environment-driven defaults for the CLI and the
// HTTP server. A .env file in the working directory is honored when present.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/listforge/delimit"
)

type Config struct {
	ListenAddr string
	PresetPath string

	Wrap            string
	Delimiter       string
	CustomDelimiter string
	Case            string
	Dedupe          bool
	Trim            bool
}

// Load reads configuration from the environment, falling back to the
// built-in defaults. All keys are optional.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ListenAddr: getEnv("DELIMIT_LISTEN_ADDR", ":8080"),
		PresetPath: getEnv("DELIMIT_PRESET_PATH", defaultPresetPath()),

		Wrap:            getEnv("DELIMIT_WRAP", "single"),
		Delimiter:       getEnv("DELIMIT_DELIMITER", "comma"),
		CustomDelimiter: getEnv("DELIMIT_CUSTOM_DELIMITER", ""),
		Case:            getEnv("DELIMIT_CASE", "none"),
		Dedupe:          getEnvBool("DELIMIT_DEDUPE", true),
		Trim:            getEnvBool("DELIMIT_TRIM", true),
	}
}

// Options resolves the configured default aliases into pipeline options.
// Unrecognized aliases surface as the delimit sentinel errors.
func (c Config) Options() (delimit.Options, error) {
	wrap, err := delimit.ParseWrapper(c.Wrap)
	if err != nil {
		return delimit.Options{}, err
	}
	delim, err := delimit.ParseDelimiter(c.Delimiter)
	if err != nil {
		return delimit.Options{}, err
	}
	mode, err := delimit.ParseCaseMode(c.Case)
	if err != nil {
		return delimit.Options{}, err
	}
	return delimit.Options{
		Wrapper:         wrap,
		Delimiter:       delim,
		CustomDelimiter: c.CustomDelimiter,
		Case:            mode,
		Dedupe:          c.Dedupe,
		Trim:            c.Trim,
	}, nil
}

func defaultPresetPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "presets.yaml"
	}
	return filepath.Join(dir, "delimit", "presets.yaml")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	switch value {
	case "":
		return fallback
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}
