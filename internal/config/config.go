// Package config loads DailyBread settings. Values are merged once, in
// order: built-in defaults, a YAML file, DAILYBREAD_* environment variables,
// then command line flags applied by the caller.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/DailyBread/core/catalog"
	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/core/fetch"
	"github.com/FocuswithJustin/DailyBread/core/passage"
	"github.com/FocuswithJustin/DailyBread/internal/logging"
)

// Source kinds.
const (
	SourceGateway = "gateway"
	SourceSQLite  = "sqlite"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DAILYBREAD_"

// Config holds every DailyBread setting.
type Config struct {
	// Version is the abbreviation of the active version.
	Version     string                    `yaml:"version"`
	Formatting  passage.FormattingOptions `yaml:"formatting"`
	Planner     fetch.Limits              `yaml:"planner"`
	Source      SourceConfig              `yaml:"source"`
	FeaturedTTL time.Duration             `yaml:"featured_ttl"`
	Server      ServerConfig              `yaml:"server"`
	Log         LogConfig                 `yaml:"log"`
}

// SourceConfig selects and tunes the content source.
type SourceConfig struct {
	Kind              string        `yaml:"kind"`     // "gateway" or "sqlite"
	Database          string        `yaml:"database"` // SQLite verse store path
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"` // 0 = unlimited
	Burst             int           `yaml:"burst"`
}

// ServerConfig holds API server settings.
type ServerConfig struct {
	Port           int      `yaml:"port"`
	RateLimit      int      `yaml:"rate_limit"` // Requests per minute per client (0 = disabled)
	RateLimitBurst int      `yaml:"rate_limit_burst"`
	AllowedOrigins []string `yaml:"allowed_origins"` // CORS allowed origins (empty = allow all)
	APIKey         string   `yaml:"api_key"`         // enables X-API-Key auth when set
	TLSCertFile    string   `yaml:"tls_cert_file"`
	TLSKeyFile     string   `yaml:"tls_key_file"`
	WSMessageRate  int      `yaml:"ws_message_rate"` // messages per second per connection (0 = unlimited)
	WSMessageSize  int64    `yaml:"ws_message_size"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version:     catalog.DefaultVersion,
		Formatting:  passage.DefaultFormatting(),
		Planner:     fetch.DefaultLimits(),
		FeaturedTTL: time.Hour,
		Source: SourceConfig{
			Kind:              SourceGateway,
			Database:          "dailybread.db",
			BaseURL:           "https://www.biblegateway.com",
			Timeout:           15 * time.Second,
			RequestsPerSecond: 5,
			Burst:             5,
		},
		Server: ServerConfig{
			Port:           8080,
			RateLimit:      120,
			RateLimitBurst: 20,
			WSMessageRate:  10,
			WSMessageSize:  4096,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SearchPaths returns the files Load tries when no path is given.
func SearchPaths() []string {
	paths := []string{"dailybread.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "dailybread", "config.yaml"))
	}
	return paths
}

// Load returns the defaults overlaid with the YAML file at path and then the
// environment. An empty path tries SearchPaths and tolerates finding none;
// an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	} else {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := cfg.loadFile(p); err != nil {
				return cfg, err
			}
			logging.Debug("config loaded", "path", p)
			break
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse overlays YAML data onto the defaults without consulting the
// environment.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &errors.ParseError{Format: "YAML", Message: err.Error(), Err: err}
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewIO("read", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &errors.ParseError{Format: "YAML", Path: path, Message: err.Error(), Err: err}
	}
	return nil
}

// loadEnv applies DAILYBREAD_* variables. Unset or empty variables are
// ignored.
func (c *Config) loadEnv() error {
	str := func(name string, dst *string) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	str("VERSION", &c.Version)
	str("SOURCE", &c.Source.Kind)
	str("DB", &c.Source.Database)
	str("BASE_URL", &c.Source.BaseURL)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("API_KEY", &c.Server.APIKey)
	str("TLS_CERT", &c.Server.TLSCertFile)
	str("TLS_KEY", &c.Server.TLSKeyFile)

	if v := os.Getenv(EnvPrefix + "ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"PORT", &c.Server.Port},
		{"RATE_LIMIT", &c.Server.RateLimit},
		{"RATE_LIMIT_BURST", &c.Server.RateLimitBurst},
		{"WS_MESSAGE_RATE", &c.Server.WSMessageRate},
		{"PARAGRAPH_SPACING", &c.Formatting.ParagraphSpacing},
	}
	for _, e := range ints {
		v := os.Getenv(EnvPrefix + e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(e.name, v, err)
		}
		*e.dst = n
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"VERSE_NUMBERS", &c.Formatting.ShowVerseNumbers},
		{"UNICODE_PUNCTUATION", &c.Formatting.AllowUnicodePunctuation},
		{"SMALL_CAPS", &c.Formatting.PreserveSmallCaps},
	}
	for _, e := range bools {
		v := os.Getenv(EnvPrefix + e.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(e.name, v, err)
		}
		*e.dst = b
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"FEATURED_TTL", &c.FeaturedTTL},
		{"TIMEOUT", &c.Source.Timeout},
	}
	for _, e := range durations {
		v := os.Getenv(EnvPrefix + e.name)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError(e.name, v, err)
		}
		*e.dst = d
	}
	return nil
}

func envError(name, value string, err error) error {
	return &errors.ValidationError{
		Field:   EnvPrefix + name,
		Message: fmt.Sprintf("invalid value %q", value),
		Err:     err,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	invalid := func(field, format string, args ...any) error {
		return &errors.ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
	}

	if _, ok := catalog.FindVersion(c.Version); !ok {
		return errors.NewUnsupportedVersion(c.Version)
	}
	if c.Planner.MaxVerse < 1 {
		return invalid("planner.max_verse", "must be positive, got %d", c.Planner.MaxVerse)
	}
	if c.Planner.MaxChaptersPerQuery < 1 {
		return invalid("planner.max_chapters_per_query", "must be positive, got %d", c.Planner.MaxChaptersPerQuery)
	}
	if c.Formatting.ParagraphSpacing < 0 {
		return invalid("formatting.paragraph_spacing", "must not be negative, got %d", c.Formatting.ParagraphSpacing)
	}
	if c.FeaturedTTL < 0 {
		return invalid("featured_ttl", "must not be negative")
	}

	switch c.Source.Kind {
	case SourceGateway:
		if c.Source.Timeout < 0 {
			return invalid("source.timeout", "must not be negative")
		}
		if c.Source.RequestsPerSecond < 0 {
			return invalid("source.requests_per_second", "must not be negative")
		}
	case SourceSQLite:
		if c.Source.Database == "" {
			return invalid("source.database", "required for the sqlite source")
		}
	default:
		return invalid("source.kind", "must be %q or %q, got %q", SourceGateway, SourceSQLite, c.Source.Kind)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return invalid("server.port", "out of range: %d", c.Server.Port)
	}
	if c.Server.RateLimit < 0 || c.Server.RateLimitBurst < 0 {
		return invalid("server.rate_limit", "must not be negative")
	}
	if c.Server.APIKey != "" && len(c.Server.APIKey) < 16 {
		return invalid("server.api_key", "must be at least 16 characters")
	}
	if (c.Server.TLSCertFile == "") != (c.Server.TLSKeyFile == "") {
		return invalid("server.tls_cert_file", "cert and key files must be set together")
	}
	if c.Server.WSMessageRate < 0 || c.Server.WSMessageSize < 0 {
		return invalid("server.ws_message_rate", "must not be negative")
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &errors.ValidationError{Field: "log.level", Message: err.Error(), Err: err}
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return &errors.ValidationError{Field: "log.format", Message: err.Error(), Err: err}
	}
	return nil
}

// InitLogging installs the global logger described by c.Log, writing to w.
// A nil w means stderr.
func (c Config) InitLogging(w io.Writer) error {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.Log.Format)
	if err != nil {
		return err
	}
	if w == nil {
		logging.InitLogger(level, format)
		return nil
	}
	logging.InitLoggerWriter(w, level, format)
	return nil
}
