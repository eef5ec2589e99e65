package flow

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrKeyNotFound = errors.New("account key not found")
	ErrKeyRevoked  = errors.New("account key is revoked")
)

// Account is the state of a Flow account
type Account struct {
	Address   Address
	Balance   uint64
	Code      []byte
	Keys      []AccountKey
	Contracts map[string][]byte
}

// AccountKey is a public key registered on an account
type AccountKey struct {
	Index          uint32
	PublicKey      []byte
	SigAlgo        uint32
	HashAlgo       uint32
	Weight         uint32
	SequenceNumber uint64
	Revoked        bool
}

// Key returns the account key with the given index
func (a Account) Key(index uint32) (AccountKey, error) {
	for _, k := range a.Keys {
		if k.Index == index {
			return k, nil
		}
	}
	return AccountKey{}, fmt.Errorf("%w: account %s has no key %d", ErrKeyNotFound, a.Address, index)
}

// ProposalKeyFor returns the proposal key of the account for index, refusing revoked keys
func (a Account) ProposalKeyFor(index uint32) (ProposalKey, error) {
	key, err := a.Key(index)
	if err != nil {
		return ProposalKey{}, err
	}
	if key.Revoked {
		return ProposalKey{}, fmt.Errorf("%w: account %s key %d", ErrKeyRevoked, a.Address, index)
	}
	return ProposalKey{
		Address:        a.Address,
		KeyIndex:       key.Index,
		SequenceNumber: key.SequenceNumber,
	}, nil
}

type BlockHeader struct {
	ID        Identifier
	ParentID  Identifier
	Height    uint64
	Timestamp time.Time
}

type CollectionGuarantee struct {
	CollectionID Identifier
}

type BlockSeal struct {
	BlockID            Identifier
	ExecutionReceiptID Identifier
}

type Block struct {
	BlockHeader
	CollectionGuarantees []CollectionGuarantee
	Seals                []BlockSeal
	Signatures           [][]byte
}

// Event is an event emitted during the execution of a transaction
type Event struct {
	Type             string
	TransactionID    Identifier
	TransactionIndex uint32
	EventIndex       uint32
	// Payload is the JSON-Cadence encoded event value
	Payload []byte
}

// BlockEvents groups the events of a type emitted in one block
type BlockEvents struct {
	BlockID        Identifier
	Height         uint64
	BlockTimestamp time.Time
	Events         []Event
}

type Collection struct {
	ID             Identifier
	TransactionIDs []Identifier
}
