package flow

import (
	"errors"
	"fmt"
	"strings"
)

// TransactionStatus is the lifecycle state of a transaction
type TransactionStatus int

const (
	TransactionStatusUnknown TransactionStatus = iota
	TransactionStatusPending
	TransactionStatusFinalized
	TransactionStatusExecuted
	TransactionStatusSealed
	TransactionStatusExpired
)

var (
	ErrTransactionFailed        = errors.New("transaction execution failed")
	ErrUnknownTransactionStatus = errors.New("unknown transaction status")
)

func (s TransactionStatus) String() string {
	switch s {
	case TransactionStatusUnknown:
		return "UNKNOWN"
	case TransactionStatusPending:
		return "PENDING"
	case TransactionStatusFinalized:
		return "FINALIZED"
	case TransactionStatusExecuted:
		return "EXECUTED"
	case TransactionStatusSealed:
		return "SEALED"
	case TransactionStatusExpired:
		return "EXPIRED"
	default:
		return fmt.Sprintf("TransactionStatus(%d)", int(s))
	}
}

// ParseTransactionStatus converts a status name such as "SEALED" (case insensitive)
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	for st := TransactionStatusUnknown; st <= TransactionStatusExpired; st++ {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}
	return TransactionStatusUnknown, fmt.Errorf("%w: %q", ErrUnknownTransactionStatus, s)
}

func (s TransactionStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *TransactionStatus) UnmarshalText(data []byte) error {
	st, err := ParseTransactionStatus(string(data))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// IsFinal reports whether the status will not change anymore
func (s TransactionStatus) IsFinal() bool {
	return s == TransactionStatusSealed || s == TransactionStatusExpired
}

// TransactionResult is the outcome of a transaction as reported by the access node
type TransactionResult struct {
	Status       TransactionStatus
	StatusCode   uint32
	ErrorMessage string
	Events       []Event
	BlockID      Identifier
	BlockHeight  uint64
}

// Error returns the execution error of a sealed transaction. It is nil on success
// and for results that are not sealed yet.
func (r TransactionResult) Error() error {
	if r.Status != TransactionStatusSealed || r.StatusCode == 0 {
		return nil
	}
	return fmt.Errorf("%w: status code %d: %s", ErrTransactionFailed, r.StatusCode, r.ErrorMessage)
}

// EventsByType returns the events of the result with the given type
func (r TransactionResult) EventsByType(eventType string) []Event {
	var res []Event
	for _, e := range r.Events {
		if e.Type == eventType {
			res = append(res, e)
		}
	}
	return res
}
