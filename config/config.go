// Package config loads passgen's defaults from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/avahowell/passgen/pwgen"
	"github.com/avahowell/passgen/secureclip"
)

// Environment variables read by Load.
const (
	EnvLength         = "PASSGEN_LENGTH"
	EnvClasses        = "PASSGEN_CLASSES"
	EnvExcludeSimilar = "PASSGEN_EXCLUDE_SIMILAR"
	EnvClipTimeout    = "PASSGEN_CLIP_TIMEOUT"
	EnvLogLevel       = "PASSGEN_LOG_LEVEL"
)

type Config struct {
	Length         int
	Classes        pwgen.ClassSet
	ExcludeSimilar bool
	ClipTimeout    time.Duration
	LogLevel       slog.Level
}

// Default returns the built-in configuration.
func Default() Config {
	gen := pwgen.DefaultConfig()
	return Config{
		Length:         gen.Length,
		Classes:        gen.Classes,
		ExcludeSimilar: gen.ExcludeSimilar,
		ClipTimeout:    secureclip.DefaultTimeout,
		LogLevel:       slog.LevelInfo,
	}
}

// Load reads the given .env files (or ".env" when none are given) and the
// process environment. Invalid values are logged and left at their default.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the variables returned by getenv.
func FromEnv(getenv func(string) string) Config {
	cfg := Default()

	if v := getenv(EnvLength); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			slog.Warn("invalid password length, using default", "value", v, "default", cfg.Length)
		} else {
			cfg.Length = pwgen.ClampLength(n)
		}
	}
	if v := getenv(EnvClasses); v != "" {
		classes, err := ParseClasses(v)
		if err != nil {
			slog.Warn("invalid character classes, using default", "value", v, "error", err)
		} else {
			cfg.Classes = classes
		}
	}
	if v := getenv(EnvExcludeSimilar); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			slog.Warn("invalid exclude-similar flag, using default", "value", v)
		} else {
			cfg.ExcludeSimilar = b
		}
	}
	if v := getenv(EnvClipTimeout); v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil || d < 0 {
			slog.Warn("invalid clipboard timeout, using default", "value", v, "default", cfg.ClipTimeout)
		} else {
			cfg.ClipTimeout = d
		}
	}
	if v := getenv(EnvLogLevel); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			slog.Warn("invalid log level, using default", "value", v)
		} else {
			cfg.LogLevel = lvl
		}
	}
	return cfg
}

// ParseClasses parses a comma separated list of class names. At least one
// class must be named.
func ParseClasses(list string) (pwgen.ClassSet, error) {
	var set pwgen.ClassSet
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := pwgen.ParseClass(name)
		if err != nil {
			return 0, err
		}
		set = set.With(c)
	}
	if set.Empty() {
		return 0, errors.Wrap(pwgen.ErrNoClassSelected, "parsing class list")
	}
	return set, nil
}

// GenerationConfig returns the initial generator settings.
func (c Config) GenerationConfig() pwgen.Config {
	return pwgen.Config{
		Length:         pwgen.ClampLength(c.Length),
		Classes:        c.Classes,
		ExcludeSimilar: c.ExcludeSimilar,
	}
}
