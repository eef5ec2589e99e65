package journal

import (
	"time"

	"github.com/0xPolygon/flowclient/flow"
)

// Kind of a journaled transaction
const (
	KindCreateAccount  = "create_account"
	KindAddKey         = "add_key"
	KindRemoveKey      = "remove_key"
	KindAddContract    = "add_contract"
	KindUpdateContract = "update_contract"
	KindRemoveContract = "remove_contract"
	KindCustom         = "custom"
)

// TransactionRecord is a transaction sent by this client and its last known result
type TransactionRecord struct {
	TxID             flow.Identifier        `meddler:"tx_id,identifier" json:"txID"`
	Kind             string                 `meddler:"kind" json:"kind"`
	Payer            flow.Address           `meddler:"payer,address" json:"payer"`
	ReferenceBlockID flow.Identifier        `meddler:"reference_block_id,identifier" json:"referenceBlockID"`
	GasLimit         uint64                 `meddler:"gas_limit" json:"gasLimit"`
	Status           flow.TransactionStatus `meddler:"status" json:"status"`
	StatusCode       uint32                 `meddler:"status_code" json:"statusCode"`
	ErrorMessage     string                 `meddler:"error_message" json:"errorMessage,omitempty"`
	BlockHeight      uint64                 `meddler:"block_height" json:"blockHeight"`
	CreatedAt        int64                  `meddler:"created_at" json:"createdAt"`
	UpdatedAt        int64                  `meddler:"updated_at" json:"updatedAt"`
}

// NewTransactionRecord returns a pending record for a sent transaction
func NewTransactionRecord(id flow.Identifier, kind string, tx *flow.Transaction) TransactionRecord {
	return TransactionRecord{
		TxID:             id,
		Kind:             kind,
		Payer:            tx.Payer,
		ReferenceBlockID: tx.ReferenceBlockID,
		GasLimit:         tx.GasLimit,
		Status:           flow.TransactionStatusPending,
	}
}

// Created returns the creation time of the record
func (r TransactionRecord) Created() time.Time {
	return time.Unix(r.CreatedAt, 0)
}

type checkpoint struct {
	Name      string `meddler:"name"`
	Height    uint64 `meddler:"height"`
	UpdatedAt int64  `meddler:"updated_at"`
}
