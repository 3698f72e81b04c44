package alert

import (
	"context"

	"github.com/micaelrauan/stokk-backend/internal/model"
)

type UseCase interface {
	ListAlerts(ctx context.Context, unreadOnly bool, page, pageSize int) ([]model.Alert, int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	CountUnread(ctx context.Context) (int, error)
}
