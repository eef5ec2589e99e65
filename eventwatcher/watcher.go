package eventwatcher

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/0xPolygon/flowclient/db"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/log"
	"golang.org/x/sync/errgroup"
)

var (
	timeNowFunc = time.Now
)

// EventWatcher polls the access node for new blocks and publishes the events of the
// configured types found in them
type EventWatcher struct {
	client EventsClient
	store  HeightStore
	logger *log.Logger
	config Config
	mu     sync.Mutex
	status Status
	GenericSubscriber[EventBatch]
}

// NewEventWatcher creates a new EventWatcher.
// store can be nil, in which case the progress is only kept in memory.
// if param `subscriber` is nil a new GenericSubscriberImpl[EventBatch] will be created.
func NewEventWatcher(logger *log.Logger,
	config Config,
	client EventsClient,
	store HeightStore,
	subscriber GenericSubscriber[EventBatch]) (*EventWatcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if subscriber == nil {
		subscriber = NewGenericSubscriberImpl[EventBatch]()
	}
	w := &EventWatcher{
		client:            client,
		store:             store,
		logger:            logger,
		config:            config,
		GenericSubscriber: subscriber,
		status: Status{
			Name:       config.Name,
			EventTypes: append([]string(nil), config.EventTypes...),
			Sealed:     config.Sealed,
		},
	}
	if err := w.loadCheckpoint(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *EventWatcher) loadCheckpoint() error {
	if w.store != nil {
		height, err := w.store.GetLastProcessedHeight(w.config.Name)
		switch {
		case err == nil:
			w.status.LastProcessedHeight = height
			w.status.Initialized = true
			return nil
		case !errors.Is(err, db.ErrNotFound):
			return fmt.Errorf("reading checkpoint %s: %w", w.config.Name, err)
		}
	}
	if w.config.StartHeight > 0 {
		w.status.LastProcessedHeight = w.config.StartHeight - 1
		w.status.Initialized = true
	}
	return nil
}

func (w *EventWatcher) String() string {
	status := w.Status()
	res := fmt.Sprintf("EventWatcher %s: sealed=%t types=%v", status.Name, status.Sealed, status.EventTypes)
	if status.Initialized {
		res += fmt.Sprintf(" lastProcessedHeight=%d", status.LastProcessedHeight)
	} else {
		res += " lastProcessedHeight=none"
	}
	return res
}

// Status returns a copy of the current progress
func (w *EventWatcher) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	status := w.status
	status.EventTypes = append([]string(nil), w.status.EventTypes...)
	return status
}

func (w *EventWatcher) setStatus(status Status) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
}

// Start runs the watcher blocking the current goroutine until ctx is done
func (w *EventWatcher) Start(ctx context.Context) {
	w.logger.Infof("starting %s", w.String())
	ticker := time.NewTimer(0)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("event watcher stopped")
			return
		case <-ticker.C:
			newStatus, err := w.step(ctx, w.Status())
			if err != nil && ctx.Err() == nil {
				w.logger.Errorf("event watcher step failed at height %d: %v", newStatus.LastProcessedHeight, err)
			}
			w.setStatus(newStatus)
			ticker.Reset(w.config.PollInterval.Duration)
		}
	}
}

// step processes all the heights between the last processed one and the latest block.
// It returns the status reached, which keeps the height of the last complete chunk on error.
func (w *EventWatcher) step(ctx context.Context, status Status) (Status, error) {
	status.UpdatedAt = timeNowFunc()
	header, err := w.client.GetLatestBlockHeader(ctx, w.config.Sealed)
	if err != nil {
		status.LastError = err.Error()
		return status, err
	}
	status.LatestHeight = header.Height
	if !status.Initialized {
		// Without checkpoint or start height the watcher begins at the current tip
		status.Initialized = true
		status.LastProcessedHeight = header.Height
		status.LastError = ""
		w.logger.Infof("event watcher %s starting after height %d", w.config.Name, header.Height)
		return status, nil
	}

	for from := status.LastProcessedHeight + 1; from <= header.Height; {
		to := min(from+w.config.ChunkSize-1, header.Height)
		batch, err := w.fetchChunk(ctx, from, to)
		if err != nil {
			status.LastError = err.Error()
			return status, err
		}
		if len(batch.Blocks) > 0 {
			w.logger.Debugf("publishing %s", batch)
			if err := w.Publish(ctx, batch); err != nil {
				status.LastError = err.Error()
				return status, err
			}
		}
		if w.store != nil {
			if err := w.store.SaveLastProcessedHeight(ctx, w.config.Name, to); err != nil {
				status.LastError = err.Error()
				return status, fmt.Errorf("saving checkpoint %d: %w", to, err)
			}
		}
		status.LastProcessedHeight = to
		from = to + 1
	}
	status.LastError = ""
	return status, nil
}

// fetchChunk requests every event type for [from, to] concurrently and merges the results by block
func (w *EventWatcher) fetchChunk(ctx context.Context, from, to uint64) (EventBatch, error) {
	results := make([][]flow.BlockEvents, len(w.config.EventTypes))
	g, gctx := errgroup.WithContext(ctx)
	for i, eventType := range w.config.EventTypes {
		g.Go(func() error {
			blocks, err := w.client.GetEventsForHeightRange(gctx, eventType, from, to)
			if err != nil {
				return fmt.Errorf("fetching %s in [%d, %d]: %w", eventType, from, to, err)
			}
			results[i] = blocks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return EventBatch{}, err
	}

	return EventBatch{
		FromHeight: from,
		ToHeight:   to,
		Blocks:     mergeBlockEvents(results),
	}, nil
}

// mergeBlockEvents joins the per type results into one entry per block, dropping empty blocks
func mergeBlockEvents(results [][]flow.BlockEvents) []flow.BlockEvents {
	byHeight := make(map[uint64]*flow.BlockEvents)
	for _, blocks := range results {
		for _, block := range blocks {
			if len(block.Events) == 0 {
				continue
			}
			merged, ok := byHeight[block.Height]
			if !ok {
				merged = &flow.BlockEvents{
					BlockID:        block.BlockID,
					Height:         block.Height,
					BlockTimestamp: block.BlockTimestamp,
				}
				byHeight[block.Height] = merged
			}
			merged.Events = append(merged.Events, block.Events...)
		}
	}

	merged := make([]flow.BlockEvents, 0, len(byHeight))
	for _, block := range byHeight {
		sort.SliceStable(block.Events, func(i, j int) bool {
			if block.Events[i].TransactionIndex != block.Events[j].TransactionIndex {
				return block.Events[i].TransactionIndex < block.Events[j].TransactionIndex
			}
			return block.Events[i].EventIndex < block.Events[j].EventIndex
		})
		merged = append(merged, *block)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Height < merged[j].Height
	})
	return merged
}
