package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/0xPolygon/flowclient/log"
)

// Tx is a sql transaction running callbacks after commit or rollback
type Tx struct {
	*sql.Tx
	rollbackCallbacks []func()
	commitCallbacks   []func()
}

func NewTx(ctx context.Context, db DBer) (*Tx, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{
		Tx: tx,
	}, nil
}

// RunInTx runs fn in a transaction, committing when fn succeeds and rolling back otherwise
func RunInTx(ctx context.Context, logger *log.Logger, db DBer, fn func(tx *Tx) error) error {
	tx, err := NewTx(ctx, db)
	if err != nil {
		return fmt.Errorf("error opening tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if errRllbck := tx.Rollback(); errRllbck != nil {
			logger.Errorf("error while rolling back tx: %v", errRllbck)
		}
		return err
	}
	return tx.Commit()
}

func (s *Tx) AddRollbackCallback(cb func()) {
	s.rollbackCallbacks = append(s.rollbackCallbacks, cb)
}
func (s *Tx) AddCommitCallback(cb func()) {
	s.commitCallbacks = append(s.commitCallbacks, cb)
}

func (s *Tx) Commit() error {
	if err := s.Tx.Commit(); err != nil {
		return err
	}
	for _, cb := range s.commitCallbacks {
		cb()
	}
	return nil
}

func (s *Tx) Rollback() error {
	if err := s.Tx.Rollback(); err != nil {
		return err
	}
	for _, cb := range s.rollbackCallbacks {
		cb()
	}
	return nil
}
