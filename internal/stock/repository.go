package stock

import (
	"context"

	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/stock/dto"
)

type Repository interface {
	// GetVariantState resolves a variant with its product snapshot fields.
	// Returns nil, nil when the variant does not exist for the tenant.
	GetVariantState(ctx context.Context, companyID, variantID string) (*dto.VariantState, error)

	// ApplyChange persists the new stock level and its log entry in one
	// transaction.
	ApplyChange(ctx context.Context, companyID, variantID string, newStock int, entry *model.InventoryLog) error

	// SetStock overwrites the stock level without producing a log entry.
	SetStock(ctx context.Context, companyID, variantID string, quantity int) error

	ListLogs(ctx context.Context, filters *dto.LogFilters) ([]model.InventoryLog, int, error)
}
