package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/flowclient/db"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/log"
	"github.com/0xPolygon/flowclient/rpc/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// FLOW is the namespace of the flow service
	FLOW      = "flow"
	meterName = "github.com/0xPolygon/flowclient/rpc"
)

var (
	ErrJournalDisabled = errors.New("the transaction journal is not enabled")
	ErrWatcherDisabled = errors.New("the event watcher is not running")
)

// FlowEndpoints contains implementations for the "flow" RPC endpoints
type FlowEndpoints struct {
	logger      *log.Logger
	meter       metric.Meter
	readTimeout time.Duration
	client      AccessClienter
	journal     Journaler
	watcher     WatcherStatuser
}

// NewFlowEndpoints returns FlowEndpoints. journal and watcher are optional.
func NewFlowEndpoints(
	logger *log.Logger,
	readTimeout time.Duration,
	client AccessClienter,
	journal Journaler,
	watcher WatcherStatuser,
) *FlowEndpoints {
	meter := otel.Meter(meterName)
	return &FlowEndpoints{
		logger:      logger,
		meter:       meter,
		readTimeout: readTimeout,
		client:      client,
		journal:     journal,
		watcher:     watcher,
	}
}

func (f *FlowEndpoints) count(ctx context.Context, name string) {
	c, merr := f.meter.Int64Counter(name)
	if merr != nil {
		f.logger.Warnf("failed to create %s counter: %s", name, merr)
		return
	}
	c.Add(ctx, 1)
}

// Ping checks that the access node answers
// curl -X POST http://localhost:5576/ -H "Content-Type: application/json" \
// -d '{"method":"flow_ping", "params":[], "id":1}'
func (f *FlowEndpoints) Ping() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.readTimeout)
	defer cancel()
	f.count(ctx, "ping")

	if err := f.client.Ping(ctx); err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("access node ping failed: %s", err))
	}
	return true, nil
}

// GetAccount returns the account at address, keys and contract code included
// curl -X POST http://localhost:5576/ -H "Content-Type: application/json" \
// -d '{"method":"flow_getAccount", "params":["0xf8d6e0586b0a20c7"], "id":1}'
func (f *FlowEndpoints) GetAccount(address string) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.readTimeout)
	defer cancel()
	f.count(ctx, "get_account")

	addr, err := flow.HexToAddress(address)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("invalid address %q: %s", address, err))
	}
	account, err := f.client.GetAccount(ctx, addr)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get account %s: %s", addr, err))
	}
	return types.NewAccount(account), nil
}

// GetLatestBlock returns the latest block header. It is the sealed one unless sealed is false.
func (f *FlowEndpoints) GetLatestBlock(sealed *bool) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.readTimeout)
	defer cancel()
	f.count(ctx, "get_latest_block")

	isSealed := true
	if sealed != nil {
		isSealed = *sealed
	}
	header, err := f.client.GetLatestBlockHeader(ctx, isSealed)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get latest block: %s", err))
	}
	return types.NewBlockHeader(header), nil
}

// GetTransactionResult returns the result of a transaction as reported by the access node
func (f *FlowEndpoints) GetTransactionResult(id string) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.readTimeout)
	defer cancel()
	f.count(ctx, "get_transaction_result")

	txID, rerr := parseID(id)
	if rerr != nil {
		return nil, rerr
	}
	result, err := f.client.GetTransactionResult(ctx, txID)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get transaction result %s: %s", txID, err))
	}
	return types.NewTransactionResult(result), nil
}

// GetTransactionRecord returns the journal entry of a transaction sent by this client
func (f *FlowEndpoints) GetTransactionRecord(id string) (interface{}, rpc.Error) {
	f.count(context.Background(), "get_transaction_record")
	if f.journal == nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, ErrJournalDisabled.Error())
	}
	txID, rerr := parseID(id)
	if rerr != nil {
		return nil, rerr
	}
	record, err := f.journal.GetTransaction(txID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, rpc.NewRPCError(rpc.NotFoundErrorCode, fmt.Sprintf("transaction %s not found", txID))
	}
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get transaction record %s: %s", txID, err))
	}
	return record, nil
}

// ListTransactionRecords returns the journal entries, oldest first, optionally filtered by status
// curl -X POST http://localhost:5576/ -H "Content-Type: application/json" \
// -d '{"method":"flow_listTransactionRecords", "params":["PENDING"], "id":1}'
func (f *FlowEndpoints) ListTransactionRecords(status *string) (interface{}, rpc.Error) {
	f.count(context.Background(), "list_transaction_records")
	if f.journal == nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, ErrJournalDisabled.Error())
	}
	var statuses []flow.TransactionStatus
	if status != nil && *status != "" {
		s, err := flow.ParseTransactionStatus(*status)
		if err != nil {
			return nil, rpc.NewRPCError(rpc.DefaultErrorCode, err.Error())
		}
		statuses = append(statuses, s)
	}
	records, err := f.journal.ListByStatus(statuses...)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to list transaction records: %s", err))
	}
	return records, nil
}

// WatcherStatus returns the progress of the event watcher
func (f *FlowEndpoints) WatcherStatus() (interface{}, rpc.Error) {
	f.count(context.Background(), "watcher_status")
	if f.watcher == nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, ErrWatcherDisabled.Error())
	}
	return f.watcher.Status(), nil
}

func parseID(id string) (flow.Identifier, rpc.Error) {
	txID, err := flow.HexToID(id)
	if err != nil {
		return flow.EmptyID, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("invalid id %q: %s", id, err))
	}
	return txID, nil
}
