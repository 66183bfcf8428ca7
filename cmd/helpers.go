package cmd

import (
	"fmt"
	"io"

	"github.com/khadija-altaf/folio/internal/app"
	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/config"
	"github.com/khadija-altaf/folio/internal/logger"
	"github.com/khadija-altaf/folio/internal/pages"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg, writing to w.
func newLogger(cfg *config.Config, w io.Writer) (*logger.Logger, error) {
	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Format != config.LogFormatJSON,
		Writer:        w,
	})
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return log, nil
}

// loadCatalog returns the configured catalog, validated.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	c, err := catalog.LoadOrDefault(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", cfg.CatalogFile, err)
	}
	return c, nil
}

// sessionOptions maps the config onto session options.
func sessionOptions(cfg *config.Config, c *catalog.Catalog, log *logger.Logger) app.Options {
	return app.Options{
		Catalog: c,
		Timing: pages.Timing{
			TypingInterval: cfg.Timing.TypingInterval,
			SubmitDelay:    cfg.Timing.SubmitDelay,
			SubmittedReset: cfg.Timing.SubmittedReset,
		},
		ToastTTL:   cfg.Timing.ToastTTL,
		Transition: cfg.Timing.Transition,
		Submitter:  pages.Simulated{Fail: cfg.Contact.SimulateFailure, Log: log},
		Log:        log,
	}
}
