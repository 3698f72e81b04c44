package sale

import (
	"context"

	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/sale/dto"
)

type Repository interface {
	// Create persists the sale header and its items in one transaction.
	Create(ctx context.Context, s *model.Sale) error

	// FindByID loads the sale with its items, or nil when it does not exist.
	FindByID(ctx context.Context, companyID, id string) (*model.Sale, error)

	FindAll(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error)

	// ResolveLine returns the denormalized snapshot for a variant, or nil
	// when the variant does not exist for the tenant.
	ResolveLine(ctx context.Context, companyID, variantID string) (*dto.LineSnapshot, error)
}
