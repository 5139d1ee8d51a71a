package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lokeshsukhwal/Dasher/internal/compare"
	"github.com/lokeshsukhwal/Dasher/internal/hours"
	"github.com/lokeshsukhwal/Dasher/internal/report"
)

const (
	dirName  = ".dasher"
	fileName = "config.toml"

	// MaxToleranceMinutes bounds compare.tolerance_minutes.
	MaxToleranceMinutes = 60
)

// ErrUnknownKey is returned by Get and Set for keys outside Keys.
var ErrUnknownKey = errors.New("unknown config key")

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

type Config struct {
	Compare CompareConfig `toml:"compare"`
	Server  ServerConfig  `toml:"server"`
	Log     LogConfig     `toml:"log"`
}

type CompareConfig struct {
	ToleranceMinutes int    `toml:"tolerance_minutes"`
	WeekStart        string `toml:"week_start"`
	OldDialect       string `toml:"old_format"`
	NewDialect       string `toml:"new_format"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Keys lists every dotted key accepted by Get and Set, in display order.
var Keys = []string{
	"compare.tolerance_minutes",
	"compare.week_start",
	"compare.old_format",
	"compare.new_format",
	"server.addr",
	"log.level",
}

func DefaultConfig() Config {
	return Config{
		Compare: CompareConfig{
			ToleranceMinutes: compare.DefaultTolerance,
			WeekStart:        hours.Monday.String(),
			OldDialect:       hours.Compact.String(),
			NewDialect:       hours.FreeText.String(),
		},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// Dir returns the dasher directory under homeDir.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, dirName)
}

// Path returns the config file path under homeDir.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), fileName)
}

// Load reads the config under homeDir. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(homeDir string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path(homeDir))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DASHER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DASHER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
}

// Save writes cfg under homeDir, creating the directory if needed.
func Save(homeDir string, cfg *Config) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(Path(homeDir), data, 0644)
}

// Validate checks every field against its accepted values.
func (c *Config) Validate() error {
	if c.Compare.ToleranceMinutes < 0 || c.Compare.ToleranceMinutes > MaxToleranceMinutes {
		return fmt.Errorf("compare.tolerance_minutes must be between 0 and %d, got %d", MaxToleranceMinutes, c.Compare.ToleranceMinutes)
	}
	if _, ok := hours.ParseDay(c.Compare.WeekStart); !ok {
		return fmt.Errorf("compare.week_start: unknown day %q", c.Compare.WeekStart)
	}
	if _, err := hours.ParseDialect(c.Compare.OldDialect); err != nil {
		return fmt.Errorf("compare.old_format: %w", err)
	}
	if _, err := hours.ParseDialect(c.Compare.NewDialect); err != nil {
		return fmt.Errorf("compare.new_format: %w", err)
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}

// Get returns the string form of a dotted key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "compare.tolerance_minutes":
		return strconv.Itoa(c.Compare.ToleranceMinutes), nil
	case "compare.week_start":
		return c.Compare.WeekStart, nil
	case "compare.old_format":
		return c.Compare.OldDialect, nil
	case "compare.new_format":
		return c.Compare.NewDialect, nil
	case "server.addr":
		return c.Server.Addr, nil
	case "log.level":
		return c.Log.Level, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Set assigns a dotted key and validates the result. On error c is left
// unchanged.
func (c *Config) Set(key, value string) error {
	next := *c
	value = strings.TrimSpace(value)

	switch key {
	case "compare.tolerance_minutes":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("compare.tolerance_minutes: %q is not a number", value)
		}
		next.Compare.ToleranceMinutes = n
	case "compare.week_start":
		day, ok := hours.ParseDay(value)
		if !ok {
			return fmt.Errorf("compare.week_start: unknown day %q", value)
		}
		next.Compare.WeekStart = day.String()
	case "compare.old_format":
		d, err := hours.ParseDialect(value)
		if err != nil {
			return fmt.Errorf("compare.old_format: %w", err)
		}
		next.Compare.OldDialect = d.String()
	case "compare.new_format":
		d, err := hours.ParseDialect(value)
		if err != nil {
			return fmt.Errorf("compare.new_format: %w", err)
		}
		next.Compare.NewDialect = d.String()
	case "server.addr":
		next.Server.Addr = value
	case "log.level":
		next.Log.Level = strings.ToLower(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// ReportOptions converts the compare section into pipeline options. It
// assumes c has been validated.
func (c *Config) ReportOptions() report.Options {
	opts := report.DefaultOptions()
	opts.ToleranceMinutes = c.Compare.ToleranceMinutes
	if day, ok := hours.ParseDay(c.Compare.WeekStart); ok {
		opts.WeekStart = day
	}
	if d, err := hours.ParseDialect(c.Compare.OldDialect); err == nil {
		opts.OldDialect = d
	}
	if d, err := hours.ParseDialect(c.Compare.NewDialect); err == nil {
		opts.NewDialect = d
	}
	return opts
}
