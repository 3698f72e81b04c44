package product

import (
	"context"

	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	AddVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.ProductVariant, error)
	ListVariants(ctx context.Context, productID string) ([]model.ProductVariant, error)

	// FindByBarcode resolves a scanned code to its product/variant pair.
	// Returns nil, nil when no variant carries the code.
	FindByBarcode(ctx context.Context, code string) (*dto.BarcodeMatch, error)
}
