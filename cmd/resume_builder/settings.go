package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/generator"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/spf13/cobra"
)

// loadSettings reads --config, overlays the environment and fills defaults
func loadSettings() (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger logs to the command's stderr; --verbose forces debug level
func newLogger(cmd *cobra.Command, cfg config.Config) *log.Logger {
	level := logging.ParseLevel(cfg.LogLevel)
	if verbose {
		level = log.DebugLevel
	}
	return logging.New(cmd.ErrOrStderr(), level)
}

// newRegistry returns the built-in templates plus any catalog entries
func newRegistry(cfg config.Config) (*templates.Registry, error) {
	reg := templates.NewDefaultRegistry()

	if cfg.Catalog != "" {
		catalog, err := templates.LoadCatalogFile(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		if err := catalog.Apply(reg); err != nil {
			return nil, err
		}
	}

	if cfg.DefaultTemplate != "" {
		if err := reg.SetDefault(cfg.DefaultTemplate); err != nil {
			return nil, fmt.Errorf("config error: default_template: %w", err)
		}
	}
	return reg, nil
}

// newGenerator wires the registry, page size and PDF options from cfg
func newGenerator(cfg config.Config, logger *log.Logger, metrics *observability.Metrics) (*generator.Generator, error) {
	reg, err := newRegistry(cfg)
	if err != nil {
		return nil, err
	}

	page, err := cfg.Page()
	if err != nil {
		return nil, err
	}

	return generator.New(reg,
		generator.WithLogger(logger),
		generator.WithMetrics(metrics),
		generator.WithPageSize(page),
		generator.WithPDFOptions(pdf.Options{Compress: cfg.CompressPDF()}),
	), nil
}

// setup is the common prologue of the rendering commands
func setup(cmd *cobra.Command) (config.Config, *log.Logger, *generator.Generator, error) {
	cfg, err := loadSettings()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger := newLogger(cmd, cfg)
	gen, err := newGenerator(cfg, logger, nil)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, logger, gen, nil
}

// outputPathFor maps a data file to "<dir>/<name>.pdf"
func outputPathFor(dir, dataPath string) string {
	name := strings.TrimSuffix(filepath.Base(dataPath), filepath.Ext(dataPath))
	return filepath.Join(dir, name+".pdf")
}
