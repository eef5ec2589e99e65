package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/0xPolygon/flowclient/db"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/journal/migrations"
	"github.com/0xPolygon/flowclient/log"
	"github.com/russross/meddler"
)

const (
	transactionTable = "transaction_record"
	checkpointTable  = "watcher_checkpoint"
)

// Journal keeps track of the transactions sent by the client and of the event watcher progress
type Journal interface {
	// SaveTransaction stores a new transaction record
	SaveTransaction(ctx context.Context, record TransactionRecord) error
	// UpdateStatus sets the last known result of a transaction
	UpdateStatus(ctx context.Context, id flow.Identifier, result flow.TransactionResult) error
	// GetTransaction returns a record by transaction id, db.ErrNotFound if missing
	GetTransaction(id flow.Identifier) (TransactionRecord, error)
	// ListByStatus returns the records with any of the statuses (all if empty), oldest first
	ListByStatus(statuses ...flow.TransactionStatus) ([]*TransactionRecord, error)
	// SaveLastProcessedHeight stores the checkpoint of a named watcher
	SaveLastProcessedHeight(ctx context.Context, name string, height uint64) error
	// GetLastProcessedHeight returns the checkpoint of a named watcher, db.ErrNotFound if missing
	GetLastProcessedHeight(name string) (uint64, error)
}

var _ Journal = (*SQLJournal)(nil)

// SQLJournal is the sqlite implementation of Journal
type SQLJournal struct {
	logger *log.Logger
	db     *sql.DB
	now    func() time.Time
}

// NewSQLJournal opens (creating if needed) the journal database at dbPath
func NewSQLJournal(logger *log.Logger, dbPath string) (*SQLJournal, error) {
	database, err := db.NewSQLiteDB(dbPath)
	if err != nil {
		return nil, err
	}
	if err := migrations.RunMigrations(logger, database); err != nil {
		return nil, err
	}

	return &SQLJournal{
		logger: logger,
		db:     database,
		now:    time.Now,
	}, nil
}

// Close closes the database
func (j *SQLJournal) Close() error {
	return j.db.Close()
}

// SaveTransaction stores a new transaction record, db.ErrAlreadyExists if the id is known
func (j *SQLJournal) SaveTransaction(ctx context.Context, record TransactionRecord) error {
	now := j.now().Unix()
	if record.CreatedAt == 0 {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	return db.RunInTx(ctx, j.logger, j.db, func(tx *db.Tx) error {
		if err := meddler.Insert(tx, transactionTable, &record); err != nil {
			return fmt.Errorf("error inserting transaction record %s: %w", record.TxID, db.ReturnErrAlreadyExists(err))
		}
		tx.AddCommitCallback(func() {
			j.logger.Debugf("inserted transaction record - TxID: %s. Kind: %s", record.TxID, record.Kind)
		})
		return nil
	})
}

// UpdateStatus sets the last known result of a transaction
func (j *SQLJournal) UpdateStatus(ctx context.Context, id flow.Identifier, result flow.TransactionResult) error {
	return db.RunInTx(ctx, j.logger, j.db, func(tx *db.Tx) error {
		res, err := tx.Exec(`UPDATE transaction_record
			SET status = $1, status_code = $2, error_message = $3, block_height = $4, updated_at = $5
			WHERE tx_id = $6;`,
			result.Status, result.StatusCode, result.ErrorMessage, result.BlockHeight, j.now().Unix(), id.String())
		if err != nil {
			return fmt.Errorf("error updating transaction record %s: %w", id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return db.ErrNotFound
		}
		tx.AddCommitCallback(func() {
			j.logger.Debugf("updated transaction record - TxID: %s. Status: %s", id, result.Status)
		})
		return nil
	})
}

// GetTransaction returns a record by transaction id
func (j *SQLJournal) GetTransaction(id flow.Identifier) (TransactionRecord, error) {
	return getTransaction(j.db, id)
}

func getTransaction(q db.Querier, id flow.Identifier) (TransactionRecord, error) {
	var record TransactionRecord
	if err := meddler.QueryRow(q, &record,
		"SELECT * FROM transaction_record WHERE tx_id = $1;", id.String()); err != nil {
		return TransactionRecord{}, db.ReturnErrNotFound(err)
	}

	return record, nil
}

// ListByStatus returns the records with any of the statuses, oldest first
func (j *SQLJournal) ListByStatus(statuses ...flow.TransactionStatus) ([]*TransactionRecord, error) {
	query := "SELECT * FROM transaction_record"
	args := make([]interface{}, len(statuses))

	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i := range statuses {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args[i] = statuses[i]
		}
		query += " WHERE status IN (" + strings.Join(placeholders, ", ") + ")"
	}

	query += " ORDER BY created_at ASC, rowid ASC"

	var records []*TransactionRecord
	if err := meddler.QueryAll(j.db, &records, query, args...); err != nil {
		return nil, err
	}

	return records, nil
}

// SaveLastProcessedHeight stores the checkpoint of a named watcher
func (j *SQLJournal) SaveLastProcessedHeight(ctx context.Context, name string, height uint64) error {
	cp := &checkpoint{Name: name, Height: height, UpdatedAt: j.now().Unix()}
	return db.RunInTx(ctx, j.logger, j.db, func(tx *db.Tx) error {
		if _, err := tx.Exec(`DELETE FROM watcher_checkpoint WHERE name = $1;`, name); err != nil {
			return fmt.Errorf("error deleting checkpoint %s: %w", name, err)
		}
		if err := meddler.Insert(tx, checkpointTable, cp); err != nil {
			return fmt.Errorf("error inserting checkpoint %s: %w", name, err)
		}
		return nil
	})
}

// GetLastProcessedHeight returns the checkpoint of a named watcher
func (j *SQLJournal) GetLastProcessedHeight(name string) (uint64, error) {
	var cp checkpoint
	err := meddler.QueryRow(j.db, &cp, "SELECT * FROM watcher_checkpoint WHERE name = $1;", name)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, db.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return cp.Height, nil
}
