package types

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/0xPolygon/flowclient/flow"
)

// Account is the JSON view of a Flow account
type Account struct {
	Address   flow.Address      `json:"address"`
	Balance   uint64            `json:"balance"`
	Code      string            `json:"code,omitempty"`
	Keys      []AccountKey      `json:"keys"`
	Contracts map[string]string `json:"contracts,omitempty"`
}

// AccountKey is the JSON view of an account key, the public key is hex encoded
type AccountKey struct {
	Index          uint32 `json:"index"`
	PublicKey      string `json:"publicKey"`
	SigAlgo        uint32 `json:"sigAlgo"`
	HashAlgo       uint32 `json:"hashAlgo"`
	Weight         uint32 `json:"weight"`
	SequenceNumber uint64 `json:"sequenceNumber"`
	Revoked        bool   `json:"revoked"`
}

type BlockHeader struct {
	ID        flow.Identifier `json:"id"`
	ParentID  flow.Identifier `json:"parentID"`
	Height    uint64          `json:"height"`
	Timestamp time.Time       `json:"timestamp"`
}

// Event carries the JSON-Cadence payload as is
type Event struct {
	Type             string          `json:"type"`
	TransactionID    flow.Identifier `json:"transactionID"`
	TransactionIndex uint32          `json:"transactionIndex"`
	EventIndex       uint32          `json:"eventIndex"`
	Payload          json.RawMessage `json:"payload"`
}

type TransactionResult struct {
	Status       flow.TransactionStatus `json:"status"`
	StatusCode   uint32                 `json:"statusCode"`
	ErrorMessage string                 `json:"errorMessage,omitempty"`
	Events       []Event                `json:"events"`
	BlockID      flow.Identifier        `json:"blockID"`
	BlockHeight  uint64                 `json:"blockHeight"`
}

func NewAccount(a flow.Account) Account {
	res := Account{
		Address: a.Address,
		Balance: a.Balance,
		Code:    string(a.Code),
		Keys:    make([]AccountKey, 0, len(a.Keys)),
	}
	for _, k := range a.Keys {
		res.Keys = append(res.Keys, AccountKey{
			Index:          k.Index,
			PublicKey:      hex.EncodeToString(k.PublicKey),
			SigAlgo:        k.SigAlgo,
			HashAlgo:       k.HashAlgo,
			Weight:         k.Weight,
			SequenceNumber: k.SequenceNumber,
			Revoked:        k.Revoked,
		})
	}
	if len(a.Contracts) > 0 {
		res.Contracts = make(map[string]string, len(a.Contracts))
		for name, code := range a.Contracts {
			res.Contracts[name] = string(code)
		}
	}
	return res
}

func NewBlockHeader(h flow.BlockHeader) BlockHeader {
	return BlockHeader{
		ID:        h.ID,
		ParentID:  h.ParentID,
		Height:    h.Height,
		Timestamp: h.Timestamp,
	}
}

func NewEvent(e flow.Event) Event {
	return Event{
		Type:             e.Type,
		TransactionID:    e.TransactionID,
		TransactionIndex: e.TransactionIndex,
		EventIndex:       e.EventIndex,
		Payload:          payload(e.Payload),
	}
}

func NewTransactionResult(r flow.TransactionResult) TransactionResult {
	res := TransactionResult{
		Status:       r.Status,
		StatusCode:   r.StatusCode,
		ErrorMessage: r.ErrorMessage,
		Events:       make([]Event, 0, len(r.Events)),
		BlockID:      r.BlockID,
		BlockHeight:  r.BlockHeight,
	}
	for _, e := range r.Events {
		res.Events = append(res.Events, NewEvent(e))
	}
	return res
}

// payload keeps valid JSON untouched and turns anything else into a hex string
func payload(p []byte) json.RawMessage {
	if len(p) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(p) {
		return json.RawMessage(p)
	}
	quoted, _ := json.Marshal(hex.EncodeToString(p))
	return quoted
}

type Block struct {
	BlockHeader
	CollectionIDs []flow.Identifier `json:"collectionIDs"`
	Seals         []flow.Identifier `json:"seals"`
}

// BlockEvents are the events of the watched types in a block
type BlockEvents struct {
	BlockID        flow.Identifier `json:"blockID"`
	Height         uint64          `json:"height"`
	BlockTimestamp time.Time       `json:"blockTimestamp"`
	Events         []Event         `json:"events"`
}

func NewBlock(b flow.Block) Block {
	res := Block{
		BlockHeader:   NewBlockHeader(b.BlockHeader),
		CollectionIDs: make([]flow.Identifier, 0, len(b.CollectionGuarantees)),
		Seals:         make([]flow.Identifier, 0, len(b.Seals)),
	}
	for _, g := range b.CollectionGuarantees {
		res.CollectionIDs = append(res.CollectionIDs, g.CollectionID)
	}
	for _, s := range b.Seals {
		res.Seals = append(res.Seals, s.BlockID)
	}
	return res
}

func NewBlockEvents(blocks []flow.BlockEvents) []BlockEvents {
	res := make([]BlockEvents, 0, len(blocks))
	for _, b := range blocks {
		events := make([]Event, 0, len(b.Events))
		for _, e := range b.Events {
			events = append(events, NewEvent(e))
		}
		res = append(res, BlockEvents{
			BlockID:        b.BlockID,
			Height:         b.Height,
			BlockTimestamp: b.BlockTimestamp,
			Events:         events,
		})
	}
	return res
}
