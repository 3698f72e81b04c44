package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	// LoadSnapshot gathers the summary inputs for a tenant. dayStart bounds
	// the "today" sale aggregates.
	LoadSnapshot(ctx context.Context, companyID string, dayStart time.Time) (*Snapshot, error)
}
