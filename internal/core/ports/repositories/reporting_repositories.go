package repositories

import (
	"context"
	"time"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetTrialBalanceData groups journal lines by account code over the
	// inclusive [from, to] entry-date range (nil bounds are open-ended),
	// left-joined against the chart of accounts so that lines referencing
	// unknown codes still appear, with nil name/type. Rows come back
	// ordered by account code ascending.
	GetTrialBalanceData(ctx context.Context, from, to *time.Time) ([]domain.TrialBalanceRow, error)
}
