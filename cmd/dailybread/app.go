package main

import (
	"context"
	"os"

	"github.com/FocuswithJustin/DailyBread/core/bible"
	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/core/fetch"
	"github.com/FocuswithJustin/DailyBread/internal/api"
	"github.com/FocuswithJustin/DailyBread/internal/config"
	"github.com/FocuswithJustin/DailyBread/internal/gateway"
	"github.com/FocuswithJustin/DailyBread/internal/store"
)

// load merges defaults, the config file, the environment, and the global
// flags, then validates the result and installs the logger.
func (g *Globals) load() (config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return cfg, err
	}
	if g.Source != "" {
		cfg.Source.Kind = g.Source
	}
	if g.DB != "" {
		cfg.Source.Database = g.DB
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, cfg.InitLogging(g.logOutput)
}

// openSource returns the content source named by cfg and a function that
// releases it.
func openSource(cfg config.Config) (fetch.Source, func() error, error) {
	switch cfg.Source.Kind {
	case config.SourceSQLite:
		if _, err := os.Stat(cfg.Source.Database); err != nil {
			return nil, nil, errors.NewIO("open", cfg.Source.Database, err)
		}
		s, err := store.OpenReadOnly(cfg.Source.Database)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		c, err := gateway.New(cfg.Source.BaseURL,
			gateway.WithTimeout(cfg.Source.Timeout),
			gateway.WithRateLimit(cfg.Source.RequestsPerSecond, cfg.Source.Burst),
		)
		if err != nil {
			return nil, nil, err
		}
		return c, func() error { return nil }, nil
	}
}

// newBible builds the orchestrator described by cfg over src.
func newBible(src fetch.Source, cfg config.Config, obs fetch.Observer) (*bible.Bible, error) {
	opts := []bible.Option{
		bible.WithVersion(cfg.Version),
		bible.WithFormatting(cfg.Formatting),
		bible.WithLimits(cfg.Planner),
		bible.WithFeaturedTTL(cfg.FeaturedTTL),
	}
	if obs != nil {
		opts = append(opts, bible.WithObserver(obs))
	}
	return bible.New(src, opts...)
}

// withBible loads the configuration, opens the source, and calls fn with a
// ready Bible.
func (g *Globals) withBible(fn func(*bible.Bible, config.Config) error) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	src, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	b, err := newBible(src, cfg, nil)
	if err != nil {
		return err
	}
	return fn(b, cfg)
}

// openStore opens the writable verse database used by import and export.
func openStore(ctx context.Context, cfg config.Config) (*store.Store, error) {
	return store.Open(ctx, cfg.Source.Database)
}

// apiConfig maps the server section of cfg onto the API server settings.
func apiConfig(cfg config.Config) api.Config {
	return api.Config{
		Port:              cfg.Server.Port,
		RateLimitRequests: cfg.Server.RateLimit,
		RateLimitBurst:    cfg.Server.RateLimitBurst,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		Auth: api.AuthConfig{
			Enabled: cfg.Server.APIKey != "",
			APIKey:  cfg.Server.APIKey,
		},
		TLS: api.TLSConfig{
			CertFile: cfg.Server.TLSCertFile,
			KeyFile:  cfg.Server.TLSKeyFile,
		},
		WebSocket: api.WebSocketSecurityConfig{
			MaxMessageRate: cfg.Server.WSMessageRate,
			MaxMessageSize: cfg.Server.WSMessageSize,
		},
	}
}
