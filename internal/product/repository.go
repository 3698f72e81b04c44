package product

import (
	"context"

	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/product/dto"
)

type Repository interface {
	// Create persists the product and its variant grid in one transaction.
	Create(ctx context.Context, p *model.Product, variants []model.ProductVariant) error
	FindByID(ctx context.Context, companyID, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, p *model.Product) error
	// Delete cascades to variants, logs and sale item references via FK.
	Delete(ctx context.Context, companyID, id string) error

	AddVariant(ctx context.Context, v *model.ProductVariant) error
	ListVariants(ctx context.Context, companyID, productID string) ([]model.ProductVariant, error)
	ListVariantsByProducts(ctx context.Context, companyID string, productIDs []string) ([]model.ProductVariant, error)

	// FindVariantByBarcode returns the first exact barcode match for the
	// tenant, or nil when none exists.
	FindVariantByBarcode(ctx context.Context, companyID, barcode string) (*model.ProductVariant, error)

	IsSKUUnique(ctx context.Context, companyID, sku, excludeID string) (bool, error)
	IsBarcodeUnique(ctx context.Context, companyID, barcode, excludeID string) (bool, error)
}
