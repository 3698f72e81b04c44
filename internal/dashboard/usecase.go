package dashboard

import "context"

type UseCase interface {
	// GetSummary returns the dashboard numbers for the calling tenant,
	// served from a short-lived cache when fresh.
	GetSummary(ctx context.Context) (*Summary, error)
}
