package accounts

import (
	"time"

	"github.com/0xPolygon/flowclient/config/types"
)

const (
	defaultInitialInterval   = 50 * time.Millisecond
	defaultIntervalIncrement = 200 * time.Millisecond
	defaultMaxAttempts       = 50
)

// WaitConfig controls the polling of transaction results
type WaitConfig struct {
	// InitialInterval is the wait before the first poll
	InitialInterval types.Duration `mapstructure:"InitialInterval"`
	// IntervalIncrement is added to the wait after every non final status
	IntervalIncrement types.Duration `mapstructure:"IntervalIncrement"`
	// MaxAttempts is the number of polls before giving up
	MaxAttempts int `mapstructure:"MaxAttempts"`
}

// Config is the configuration of the account manager
type Config struct {
	// GasLimit of the template transactions
	GasLimit uint64     `mapstructure:"GasLimit"`
	Wait     WaitConfig `mapstructure:"Wait"`
	// LegacyTemplates selects the pre Cadence 1.0 templates
	LegacyTemplates bool `mapstructure:"LegacyTemplates"`
}

// DefaultConfig returns the polling and gas values used when a field is not set
func DefaultConfig() Config {
	return Config{
		GasLimit: 1000, //nolint:mnd
		Wait: WaitConfig{
			InitialInterval:   types.NewDuration(defaultInitialInterval),
			IntervalIncrement: types.NewDuration(defaultIntervalIncrement),
			MaxAttempts:       defaultMaxAttempts,
		},
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.GasLimit == 0 {
		c.GasLimit = def.GasLimit
	}
	if c.Wait.InitialInterval.Duration <= 0 {
		c.Wait.InitialInterval = def.Wait.InitialInterval
	}
	if c.Wait.IntervalIncrement.Duration <= 0 {
		c.Wait.IntervalIncrement = def.Wait.IntervalIncrement
	}
	if c.Wait.MaxAttempts <= 0 {
		c.Wait.MaxAttempts = def.Wait.MaxAttempts
	}
	return c
}
