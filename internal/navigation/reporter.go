package navigation

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
)

// ErrMissingLocation is returned when a node that must be on screen has no
// location.
var ErrMissingLocation = errors.New("node has no location")

// Reporter records non-fatal errors: it logs them, counts them and appends
// them to the error journal. A nil Reporter only logs.
type Reporter struct {
	metrics port.Metrics
	journal port.ErrorJournal
}

// NewReporter builds a Reporter. Either sink may be nil.
func NewReporter(metrics port.Metrics, journal port.ErrorJournal) *Reporter {
	return &Reporter{metrics: metrics, journal: journal}
}

// Report records one error of errType.
func (r *Reporter) Report(ctx context.Context, errType entity.ErrorType, format string, args ...any) {
	detail := fmt.Sprintf(format, args...)
	log := logging.FromContext(ctx)
	log.Error().Str("error_type", string(errType)).Msg(detail)

	if r == nil {
		return
	}
	if r.metrics != nil {
		r.metrics.RecordError(errType)
	}
	if r.journal != nil {
		if err := r.journal.Record(ctx, errType, detail); err != nil {
			log.Warn().Err(err).Msg("failed to journal error")
		}
	}
}
