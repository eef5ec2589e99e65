package eventwatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygon/flowclient/flow"
)

// EventsClient is the part of the access client used by the watcher
type EventsClient interface {
	GetLatestBlockHeader(ctx context.Context, sealed bool) (flow.BlockHeader, error)
	GetEventsForHeightRange(ctx context.Context, eventType string, start, end uint64) ([]flow.BlockEvents, error)
}

// HeightStore persists the last processed height of a watcher
type HeightStore interface {
	SaveLastProcessedHeight(ctx context.Context, name string, height uint64) error
	GetLastProcessedHeight(name string) (uint64, error)
}

// EventBatch holds the events of all watched types found in heights [FromHeight, ToHeight].
// Blocks are ordered by height and the events of a block by transaction and event index.
type EventBatch struct {
	FromHeight uint64             `json:"fromHeight"`
	ToHeight   uint64             `json:"toHeight"`
	Blocks     []flow.BlockEvents `json:"blocks"`
}

// Len returns the number of events in the batch
func (b EventBatch) Len() int {
	n := 0
	for _, block := range b.Blocks {
		n += len(block.Events)
	}
	return n
}

func (b EventBatch) String() string {
	return fmt.Sprintf("EventBatch [%d, %d] blocks=%d events=%d", b.FromHeight, b.ToHeight, len(b.Blocks), b.Len())
}

// Status is a snapshot of the watcher progress
type Status struct {
	Name                string    `json:"name"`
	EventTypes          []string  `json:"eventTypes"`
	Sealed              bool      `json:"sealed"`
	Initialized         bool      `json:"initialized"`
	LastProcessedHeight uint64    `json:"lastProcessedHeight"`
	LatestHeight        uint64    `json:"latestHeight"`
	LastError           string    `json:"lastError,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
