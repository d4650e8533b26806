package port

import (
	"context"

	"github.com/bnema/switchscan/internal/domain/entity"
)

// Metrics records usage counters.
type Metrics interface {
	RecordMenuOpened(menu entity.MenuType)
	RecordAction(action entity.MenuAction)
	RecordAutoScanTick()
	RecordError(errType entity.ErrorType)
}

// ErrorJournal persists recorded errors for later inspection.
type ErrorJournal interface {
	Record(ctx context.Context, errType entity.ErrorType, detail string) error
	Recent(ctx context.Context, limit int) ([]entity.ErrorRecord, error)
}
