package eventwatcher

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/flowclient/config/types"
)

const (
	// MaxChunkSize is the largest height range the access nodes accept per events request
	MaxChunkSize = 250
	// DefaultName is the checkpoint name used when none is configured
	DefaultName = "eventwatcher"
)

var ErrNoEventTypes = errors.New("at least one event type must be watched")

// Config is the configuration of the event watcher
type Config struct {
	// Name identifies the watcher checkpoint in the journal
	Name string `mapstructure:"Name"`
	// EventTypes are the fully qualified event types to fetch, e.g. flow.AccountCreated
	// or A.0ae53cb6e3f42a79.FlowToken.TokensDeposited
	EventTypes []string `mapstructure:"EventTypes"`
	// StartHeight is the first height processed when there is no checkpoint.
	// 0 starts from the latest block.
	StartHeight uint64 `mapstructure:"StartHeight"`
	// ChunkSize is the number of heights requested at once, at most MaxChunkSize
	ChunkSize uint64 `mapstructure:"ChunkSize"`
	// PollInterval is the wait between two checks of the latest block
	PollInterval types.Duration `mapstructure:"PollInterval"`
	// Sealed follows sealed blocks instead of finalized ones
	Sealed bool `mapstructure:"Sealed"`
}

// Validate checks the config and fills the defaults
func (c *Config) Validate() error {
	if len(c.EventTypes) == 0 {
		return ErrNoEventTypes
	}
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = MaxChunkSize
	}
	if c.ChunkSize > MaxChunkSize {
		return fmt.Errorf("chunk size %d exceeds the maximum of %d", c.ChunkSize, MaxChunkSize)
	}
	if c.PollInterval.Duration <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	return nil
}
