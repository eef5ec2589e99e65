package eventwatcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/0xPolygon/flowclient/config/types"
	"github.com/0xPolygon/flowclient/db"
	"github.com/0xPolygon/flowclient/eventwatcher/mocks"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/log"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	typeCreated   = "flow.AccountCreated"
	typeDeposited = "A.0ae53cb6e3f42a79.FlowToken.TokensDeposited"
)

var errNode = errors.New("node unavailable")

type testData struct {
	watcher *EventWatcher
	client  *mocks.EventsClient
	store   *mocks.HeightStore
	sub     <-chan EventBatch
}

func testConfig() Config {
	return Config{
		Name:         "test",
		EventTypes:   []string{typeCreated, typeDeposited},
		ChunkSize:    5,
		PollInterval: types.NewDuration(10 * time.Millisecond),
	}
}

func newTestData(t *testing.T, cfg Config, checkpoint uint64, checkpointErr error) *testData {
	t.Helper()
	client := mocks.NewEventsClient(t)
	store := mocks.NewHeightStore(t)
	store.EXPECT().GetLastProcessedHeight(cfg.Name).Return(checkpoint, checkpointErr).Once()
	w, err := NewEventWatcher(log.WithFields("module", "eventwatcher-test"), cfg, client, store, nil)
	require.NoError(t, err)
	return &testData{
		watcher: w,
		client:  client,
		store:   store,
		sub:     w.Subscribe("test"),
	}
}

func blockEvents(height uint64, events ...flow.Event) flow.BlockEvents {
	return flow.BlockEvents{
		BlockID: flow.BytesToID([]byte{byte(height)}),
		Height:  height,
		Events:  events,
	}
}

func event(eventType string, txIndex, eventIndex uint32) flow.Event {
	return flow.Event{Type: eventType, TransactionIndex: txIndex, EventIndex: eventIndex}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name          string
		config        Config
		expectedErr   string
		expectedChunk uint64
	}{
		{
			name:        "no event types",
			config:      Config{PollInterval: types.NewDuration(time.Second)},
			expectedErr: ErrNoEventTypes.Error(),
		},
		{
			name:          "default chunk size",
			config:        Config{EventTypes: []string{typeCreated}, PollInterval: types.NewDuration(time.Second)},
			expectedChunk: MaxChunkSize,
		},
		{
			name: "chunk size too big",
			config: Config{
				EventTypes:   []string{typeCreated},
				ChunkSize:    MaxChunkSize + 1,
				PollInterval: types.NewDuration(time.Second),
			},
			expectedErr: "exceeds the maximum",
		},
		{
			name:        "no poll interval",
			config:      Config{EventTypes: []string{typeCreated}},
			expectedErr: "poll interval must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectedErr != "" {
				require.ErrorContains(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expectedChunk, tt.config.ChunkSize)
			require.Equal(t, DefaultName, tt.config.Name)
		})
	}
}

func TestNewEventWatcherCheckpoint(t *testing.T) {
	t.Run("from checkpoint", func(t *testing.T) {
		cfg := testConfig()
		cfg.StartHeight = 3
		td := newTestData(t, cfg, 41, nil)
		status := td.watcher.Status()
		require.True(t, status.Initialized)
		require.Equal(t, uint64(41), status.LastProcessedHeight)
		require.Contains(t, td.watcher.String(), "lastProcessedHeight=41")
	})
	t.Run("from start height", func(t *testing.T) {
		cfg := testConfig()
		cfg.StartHeight = 10
		td := newTestData(t, cfg, 0, db.ErrNotFound)
		status := td.watcher.Status()
		require.True(t, status.Initialized)
		require.Equal(t, uint64(9), status.LastProcessedHeight)
	})
	t.Run("from tip", func(t *testing.T) {
		td := newTestData(t, testConfig(), 0, db.ErrNotFound)
		require.False(t, td.watcher.Status().Initialized)
		require.Contains(t, td.watcher.String(), "lastProcessedHeight=none")
	})
	t.Run("store error", func(t *testing.T) {
		store := mocks.NewHeightStore(t)
		store.EXPECT().GetLastProcessedHeight("test").Return(0, errors.New("disk error"))
		_, err := NewEventWatcher(log.GetDefaultLogger(), testConfig(), mocks.NewEventsClient(t), store, nil)
		require.ErrorContains(t, err, "disk error")
	})
	t.Run("without store", func(t *testing.T) {
		cfg := testConfig()
		cfg.StartHeight = 1
		w, err := NewEventWatcher(log.GetDefaultLogger(), cfg, mocks.NewEventsClient(t), nil, nil)
		require.NoError(t, err)
		require.True(t, w.Status().Initialized)
		require.Equal(t, uint64(0), w.Status().LastProcessedHeight)
	})
}

func TestStepInitializesAtTip(t *testing.T) {
	td := newTestData(t, testConfig(), 0, db.ErrNotFound)
	td.client.EXPECT().GetLatestBlockHeader(mock.Anything, false).Return(flow.BlockHeader{Height: 100}, nil).Once()

	status, err := td.watcher.step(context.Background(), td.watcher.Status())
	require.NoError(t, err)
	require.True(t, status.Initialized)
	require.Equal(t, uint64(100), status.LastProcessedHeight)
	require.Equal(t, uint64(100), status.LatestHeight)
}

func TestStepHeaderError(t *testing.T) {
	td := newTestData(t, testConfig(), 7, nil)
	td.client.EXPECT().GetLatestBlockHeader(mock.Anything, false).Return(flow.BlockHeader{}, errNode).Once()

	status, err := td.watcher.step(context.Background(), td.watcher.Status())
	require.ErrorIs(t, err, errNode)
	require.Equal(t, uint64(7), status.LastProcessedHeight)
	require.Equal(t, errNode.Error(), status.LastError)
}

func TestStepChunksAndPublishes(t *testing.T) {
	cfg := testConfig()
	cfg.Sealed = true
	td := newTestData(t, cfg, 9, nil)
	ctx := context.Background()

	td.client.EXPECT().GetLatestBlockHeader(mock.Anything, true).Return(flow.BlockHeader{Height: 20}, nil).Once()
	// [10, 14]
	td.client.EXPECT().GetEventsForHeightRange(mock.Anything, typeCreated, uint64(10), uint64(14)).
		Return([]flow.BlockEvents{blockEvents(12, event(typeCreated, 1, 0))}, nil).Once()
	td.client.EXPECT().GetEventsForHeightRange(mock.Anything, typeDeposited, uint64(10), uint64(14)).
		Return([]flow.BlockEvents{
			blockEvents(12, event(typeDeposited, 0, 1)),
			blockEvents(13),
			blockEvents(11, event(typeDeposited, 2, 0)),
		}, nil).Once()
	// [15, 19] has no events
	td.client.EXPECT().GetEventsForHeightRange(mock.Anything, mock.Anything, uint64(15), uint64(19)).
		Return(nil, nil).Twice()
	// [20, 20]
	td.client.EXPECT().GetEventsForHeightRange(mock.Anything, typeCreated, uint64(20), uint64(20)).
		Return([]flow.BlockEvents{blockEvents(20, event(typeCreated, 0, 0))}, nil).Once()
	td.client.EXPECT().GetEventsForHeightRange(mock.Anything, typeDeposited, uint64(20), uint64(20)).
		Return(nil, nil).Once()
	td.store.EXPECT().SaveLastProcessedHeight(mock.Anything, "test", uint64(14)).Return(nil).Once()
	td.store.EXPECT().SaveLastProcessedHeight(mock.Anything, "test", uint64(19)).Return(nil).Once()
	td.store.EXPECT().SaveLastProcessedHeight(mock.Anything, "test", uint64(20)).Return(nil).Once()

	status, err := td.watcher.step(ctx, td.watcher.Status())
	require.NoError(t, err)
	require.Equal(t, uint64(20), status.LastProcessedHeight)
	require.Empty(t, status.LastError)

	first := <-td.sub
	require.Equal(t, uint64(10), first.FromHeight)
	require.Equal(t, uint64(14), first.ToHeight)
	require.Len(t, first.Blocks, 2)
	require.Equal(t, uint64(11), first.Blocks[0].Height)
	require.Equal(t, uint64(12), first.Blocks[1].Height)
	require.Equal(t, []flow.Event{event(typeDeposited, 0, 1), event(typeCreated, 1, 0)}, first.Blocks[1].Events)
	require.Equal(t, 3, first.Len())

	second := <-td.sub
	require.Equal(t, uint64(20), second.FromHeight)
	require.Equal(t, uint64(20), second.ToHeight)
	require.Len(t, second.Blocks, 1)
	require.Empty(t, td.sub)
}

func TestStepErrorKeepsLastCompleteChunk(t *testing.T) {
	td := newTestData(t, testConfig(), 9, nil)

	td.client.EXPECT().GetLatestBlockHeader(mock.Anything, false).Return(flow.BlockHeader{Height: 20}, nil).Once()
	td.client.EXPECT().GetEventsForHeightRange(mock.Anything, mock.Anything, uint64(10), uint64(14)).
		Return(nil, nil).Twice()
	td.client.EXPECT().GetEventsForHeightRange(mock.Anything, typeCreated, uint64(15), uint64(19)).
		Return(nil, nil).Maybe()
	td.client.EXPECT().GetEventsForHeightRange(mock.Anything, typeDeposited, uint64(15), uint64(19)).
		Return(nil, errNode).Once()
	td.store.EXPECT().SaveLastProcessedHeight(mock.Anything, "test", uint64(14)).Return(nil).Once()

	status, err := td.watcher.step(context.Background(), td.watcher.Status())
	require.ErrorIs(t, err, errNode)
	require.ErrorContains(t, err, typeDeposited)
	require.Equal(t, uint64(14), status.LastProcessedHeight)
	require.NotEmpty(t, status.LastError)
	require.Empty(t, td.sub)
}

func TestStepCheckpointError(t *testing.T) {
	td := newTestData(t, testConfig(), 9, nil)

	td.client.EXPECT().GetLatestBlockHeader(mock.Anything, false).Return(flow.BlockHeader{Height: 12}, nil).Once()
	td.client.EXPECT().GetEventsForHeightRange(mock.Anything, mock.Anything, uint64(10), uint64(12)).
		Return(nil, nil).Twice()
	td.store.EXPECT().SaveLastProcessedHeight(mock.Anything, "test", uint64(12)).Return(errors.New("locked")).Once()

	status, err := td.watcher.step(context.Background(), td.watcher.Status())
	require.ErrorContains(t, err, "saving checkpoint 12")
	require.Equal(t, uint64(9), status.LastProcessedHeight)
}

func TestStart(t *testing.T) {
	cfg := testConfig()
	cfg.EventTypes = []string{typeCreated}
	td := newTestData(t, cfg, 4, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	td.client.EXPECT().GetLatestBlockHeader(mock.Anything, false).Return(flow.BlockHeader{Height: 5}, nil)
	td.client.EXPECT().GetEventsForHeightRange(mock.Anything, typeCreated, uint64(5), uint64(5)).
		Return([]flow.BlockEvents{blockEvents(5, event(typeCreated, 0, 0))}, nil).Once()
	td.store.EXPECT().SaveLastProcessedHeight(mock.Anything, "test", uint64(5)).Return(nil).Once()

	done := make(chan struct{})
	go func() {
		td.watcher.Start(ctx)
		close(done)
	}()

	select {
	case batch := <-td.sub:
		require.Equal(t, uint64(5), batch.ToHeight)
		require.Equal(t, 1, batch.Len())
	case <-time.After(5 * time.Second):
		t.Fatal("no batch published")
	}
	require.Eventually(t, func() bool {
		return td.watcher.Status().LastProcessedHeight == 5
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestMergeBlockEventsDropsEmptyBlocks(t *testing.T) {
	merged := mergeBlockEvents([][]flow.BlockEvents{
		{blockEvents(3), blockEvents(2, event(typeCreated, 0, 0))},
		nil,
	})
	require.Len(t, merged, 1)
	require.Equal(t, uint64(2), merged[0].Height)
}
