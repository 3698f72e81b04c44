package reference

import (
	"context"

	"github.com/micaelrauan/stokk-backend/internal/model"
)

// Repository persists the three flat reference lists used for validation and
// variant grid generation. Names are unique per tenant.
type Repository interface {
	ListCategories(ctx context.Context, companyID string) ([]model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	UpdateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, companyID, id string) error
	IsCategoryNameUnique(ctx context.Context, companyID, name, excludeID string) (bool, error)

	ListColors(ctx context.Context, companyID string) ([]model.Color, error)
	CreateColor(ctx context.Context, c *model.Color) error
	UpdateColor(ctx context.Context, c *model.Color) error
	DeleteColor(ctx context.Context, companyID, id string) error
	IsColorNameUnique(ctx context.Context, companyID, name, excludeID string) (bool, error)

	ListSizes(ctx context.Context, companyID string) ([]model.Size, error)
	CreateSize(ctx context.Context, s *model.Size) error
	UpdateSize(ctx context.Context, s *model.Size) error
	DeleteSize(ctx context.Context, companyID, id string) error
	IsSizeNameUnique(ctx context.Context, companyID, name, excludeID string) (bool, error)
}
