package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"compoundlab/internal/growth"
)

const (
	DefaultPrincipal = 1000.0
	DefaultRate      = 5.0
	DefaultInterval  = "monthly"
	DefaultDeposit   = 100.0
	DefaultYears     = 10

	// MaxYears bounds front-end input to realistic human timeframes.
	// The core itself only requires years >= 1.
	MaxYears = 1000
)

type Config struct {
	Principal float64 `yaml:"principal"`
	Rate      float64 `yaml:"rate"`
	Interval  string  `yaml:"interval"`
	Deposit   float64 `yaml:"deposit"`
	Years     int     `yaml:"years"`
	OutDir    string  `yaml:"out_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Principal: DefaultPrincipal,
		Rate:      DefaultRate,
		Interval:  DefaultInterval,
		Deposit:   DefaultDeposit,
		Years:     DefaultYears,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the config to simulator parameters, parsing the interval.
func (c *Config) Params() (growth.Params, error) {
	iv, err := growth.ParseInterval(c.Interval)
	if err != nil {
		return growth.Params{}, err
	}
	return growth.Params{
		Principal:         c.Principal,
		AnnualRatePercent: c.Rate,
		Interval:          iv,
		Deposit:           c.Deposit,
		Years:             c.Years,
	}, nil
}

// Validate applies front-end bounds before the core re-validates.
func (c *Config) Validate() error {
	if c.Principal < 0 {
		return fmt.Errorf("principal must be non-negative, got %.2f", c.Principal)
	}
	if c.Deposit < 0 {
		return fmt.Errorf("deposit must be non-negative, got %.2f", c.Deposit)
	}
	if c.Years < 1 {
		return fmt.Errorf("years must be at least 1, got %d", c.Years)
	}
	if c.Years > MaxYears {
		return fmt.Errorf("years must be at most %d, got %d", MaxYears, c.Years)
	}
	if _, err := growth.ParseInterval(c.Interval); err != nil {
		return err
	}
	return nil
}
