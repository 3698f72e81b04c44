package reference

import (
	"context"

	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/reference/dto"
)

type UseCase interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListColors(ctx context.Context) ([]model.Color, error)
	CreateColor(ctx context.Context, input *dto.CreateColorInput) (*model.Color, error)
	UpdateColor(ctx context.Context, input *dto.UpdateColorInput) (*model.Color, error)
	DeleteColor(ctx context.Context, id string) error

	ListSizes(ctx context.Context) ([]model.Size, error)
	CreateSize(ctx context.Context, input *dto.CreateSizeInput) (*model.Size, error)
	UpdateSize(ctx context.Context, input *dto.UpdateSizeInput) (*model.Size, error)
	DeleteSize(ctx context.Context, id string) error
}
