package rpc

import (
	"context"

	"github.com/0xPolygon/flowclient/eventwatcher"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/journal"
)

type AccessClienter interface {
	Ping(ctx context.Context) error
	GetAccount(ctx context.Context, address flow.Address) (flow.Account, error)
	GetLatestBlockHeader(ctx context.Context, sealed bool) (flow.BlockHeader, error)
	GetTransactionResult(ctx context.Context, id flow.Identifier) (flow.TransactionResult, error)
}

type Journaler interface {
	GetTransaction(id flow.Identifier) (journal.TransactionRecord, error)
	ListByStatus(statuses ...flow.TransactionStatus) ([]*journal.TransactionRecord, error)
}

type WatcherStatuser interface {
	Status() eventwatcher.Status
}
