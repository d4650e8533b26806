package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
)

// DefaultRecentLimit is used by Recent when limit is not positive.
const DefaultRecentLimit = 50

// Journal is the SQLite-backed port.ErrorJournal.
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// NewJournal creates a journal on an open connection.
func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db, now: time.Now}
}

// Record appends one error.
func (j *Journal) Record(ctx context.Context, errType entity.ErrorType, detail string) error {
	_, err := j.db.ExecContext(ctx,
		"INSERT INTO error_journal (error_type, detail, recorded_at) VALUES (?, ?, ?)",
		string(errType), detail, j.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record %s: %w", errType, err)
	}
	return nil
}

// Recent returns up to limit errors, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]entity.ErrorRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	log := logging.FromContext(ctx)
	log.Debug().Int("limit", limit).Msg("listing recent errors")

	rows, err := j.db.QueryContext(ctx,
		"SELECT id, error_type, detail, recorded_at FROM error_journal ORDER BY recorded_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent errors: %w", err)
	}
	defer rows.Close()

	var records []entity.ErrorRecord
	for rows.Next() {
		var (
			rec     entity.ErrorRecord
			errType string
		)
		if err := rows.Scan(&rec.ID, &errType, &rec.Detail, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan error record: %w", err)
		}
		rec.Type = entity.ErrorType(errType)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Prune deletes errors recorded before cutoff and returns how many were removed.
func (j *Journal) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := j.db.ExecContext(ctx, "DELETE FROM error_journal WHERE recorded_at < ?", cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("prune errors: %w", err)
	}
	return res.RowsAffected()
}
