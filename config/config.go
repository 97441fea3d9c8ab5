package config

import (
	"fmt"
	"strings"

	"github.com/kbukum/streamcalc/logger"
	"github.com/kbukum/streamcalc/validation"
)

// Config is the complete calculator configuration.
type Config struct {
	Name    string        `yaml:"name" mapstructure:"name"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Hist    HistConfig    `yaml:"hist" mapstructure:"hist"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Stats   StatsConfig   `yaml:"stats" mapstructure:"stats"`
}

// HistConfig controls histogram computation and rendering.
type HistConfig struct {
	// Bins is the bin count used when the command line does not give one.
	Bins int `yaml:"bins" mapstructure:"bins" validate:"min=1,max=10000"`
	// MaxWidth is the total display width bars are scaled to fit.
	MaxWidth int `yaml:"max_width" mapstructure:"max_width" validate:"min=10"`
	// Tick is the single character bars are drawn with.
	Tick string `yaml:"tick" mapstructure:"tick" validate:"len=1"`
}

// OutputConfig controls number formatting.
type OutputConfig struct {
	// Precision is the number of significant digits; 0 prints the shortest
	// representation that round-trips.
	Precision int `yaml:"precision" mapstructure:"precision" validate:"min=0,max=17"`
}

// StatsConfig selects the statistics backend used by batch commands.
type StatsConfig struct {
	// Backends lists backend names in priority order. "none" or an empty
	// list disables median, hist and summary.
	Backends []string `yaml:"backends" mapstructure:"backends" validate:"dive,required"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	cfg := &Config{
		Name:   "calc",
		Hist:   HistConfig{Bins: 10, MaxWidth: 80, Tick: "#"},
		Stats:  StatsConfig{Backends: []string{"moremath"}},
	}
	cfg.Logging.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero values left by a partial config file.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "calc"
	}
	if c.Hist.Bins == 0 {
		c.Hist.Bins = 10
	}
	if c.Hist.MaxWidth == 0 {
		c.Hist.MaxWidth = 80
	}
	if c.Hist.Tick == "" {
		c.Hist.Tick = "#"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := validation.New().
		Custom(strings.TrimSpace(c.Hist.Tick) != "", "hist.tick", "must be a visible character").
		Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
