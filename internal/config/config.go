package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/avi3tal/treesearch/internal/logging"
	"github.com/avi3tal/treesearch/pkg/search"
)

const (
	defaultFrontier  = "bfs"
	defaultMaxSteps  = 100000
	defaultTimeout   = 60 * time.Second
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Config holds the settings for a search run
type Config struct {
	Frontier string        `yaml:"frontier"`  // bfs, dfs or ucs
	MaxSteps int           `yaml:"max_steps"` // 0 means unlimited
	Timeout  time.Duration `yaml:"timeout"`   // 0 means unlimited
	BaseCost float64       `yaml:"base_cost"` // path cost of the root node
	Log      LogConfig     `yaml:"log"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Option configures a Config
type Option func(*Config)

// NewConfig returns the defaults with opts applied
func NewConfig(opt ...Option) Config {
	cfg := Config{
		Frontier: defaultFrontier,
		MaxSteps: defaultMaxSteps,
		Timeout:  defaultTimeout,
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
	for _, o := range opt {
		o(&cfg)
	}
	return cfg
}

// WithFrontier sets the frontier discipline
func WithFrontier(name string) Option {
	return func(c *Config) {
		c.Frontier = name
	}
}

// WithMaxSteps sets the maximum number of loop iterations
func WithMaxSteps(steps int) Option {
	return func(c *Config) {
		c.MaxSteps = steps
	}
}

// WithTimeout sets the wall-clock budget of a run
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithBaseCost sets the root node's path cost
func WithBaseCost(cost float64) Option {
	return func(c *Config) {
		c.BaseCost = cost
	}
}

// Load reads a YAML config file on top of the defaults
func Load(path string, opt ...Option) (Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	for _, o := range opt {
		o(&cfg)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings that cannot drive a search
func (c Config) Validate() error {
	if _, err := search.FrontierByName[struct{}, struct{}](c.Frontier); err != nil {
		return errors.Wrap(err, "frontier")
	}
	if c.MaxSteps < 0 {
		return errors.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	if c.Timeout < 0 {
		return errors.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.BaseCost < 0 {
		return errors.Errorf("base_cost must not be negative, got %v", c.BaseCost)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return errors.Wrap(err, "log.format")
	}
	return nil
}
