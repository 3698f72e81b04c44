package alert

import (
	"context"

	"github.com/micaelrauan/stokk-backend/internal/alert/dto"
	"github.com/micaelrauan/stokk-backend/internal/model"
)

type Repository interface {
	Create(ctx context.Context, a *model.Alert) error
	FindAll(ctx context.Context, filters *dto.AlertFilters) ([]model.Alert, int, error)

	// MarkRead flips a single alert to read. The transition is one-way; there
	// is no operation that unreads an alert.
	MarkRead(ctx context.Context, companyID, id string) error
	MarkAllRead(ctx context.Context, companyID string) error

	CountUnread(ctx context.Context, companyID string) (int, error)
}
