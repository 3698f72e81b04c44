package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"github.com/micaelrauan/stokk-backend/internal/reference"
	"github.com/micaelrauan/stokk-backend/internal/reference/dto"
)

var ErrNameTaken = errors.New("name already exists")

type referenceUseCase struct {
	repo   reference.Repository
	logger logger.ZapLogger
}

func NewReferenceUseCase(repo reference.Repository, log logger.ZapLogger) reference.UseCase {
	return &referenceUseCase{repo: repo, logger: log}
}

func (uc *referenceUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.ListCategories(ctx, auth.CompanyID(ctx))
}

func (uc *referenceUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	unique, err := uc.repo.IsCategoryNameUnique(ctx, companyID, input.Name, "")
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrNameTaken
	}

	now := time.Now()
	c := &model.Category{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CompanyID: companyID,
		Name:      input.Name,
	}
	if err := uc.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *referenceUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	unique, err := uc.repo.IsCategoryNameUnique(ctx, companyID, input.Name, input.ID)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrNameTaken
	}

	c := &model.Category{
		BaseModel: model.BaseModel{ID: input.ID, UpdatedAt: time.Now()},
		CompanyID: companyID,
		Name:      input.Name,
	}
	if err := uc.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *referenceUseCase) DeleteCategory(ctx context.Context, id string) error {
	return uc.repo.DeleteCategory(ctx, auth.CompanyID(ctx), id)
}

func (uc *referenceUseCase) ListColors(ctx context.Context) ([]model.Color, error) {
	return uc.repo.ListColors(ctx, auth.CompanyID(ctx))
}

func (uc *referenceUseCase) CreateColor(ctx context.Context, input *dto.CreateColorInput) (*model.Color, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	unique, err := uc.repo.IsColorNameUnique(ctx, companyID, input.Name, "")
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrNameTaken
	}

	now := time.Now()
	c := &model.Color{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CompanyID: companyID,
		Name:      input.Name,
		Hex:       input.Hex,
	}
	if err := uc.repo.CreateColor(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *referenceUseCase) UpdateColor(ctx context.Context, input *dto.UpdateColorInput) (*model.Color, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	unique, err := uc.repo.IsColorNameUnique(ctx, companyID, input.Name, input.ID)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrNameTaken
	}

	c := &model.Color{
		BaseModel: model.BaseModel{ID: input.ID, UpdatedAt: time.Now()},
		CompanyID: companyID,
		Name:      input.Name,
		Hex:       input.Hex,
	}
	if err := uc.repo.UpdateColor(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *referenceUseCase) DeleteColor(ctx context.Context, id string) error {
	return uc.repo.DeleteColor(ctx, auth.CompanyID(ctx), id)
}

func (uc *referenceUseCase) ListSizes(ctx context.Context) ([]model.Size, error) {
	return uc.repo.ListSizes(ctx, auth.CompanyID(ctx))
}

func (uc *referenceUseCase) CreateSize(ctx context.Context, input *dto.CreateSizeInput) (*model.Size, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	unique, err := uc.repo.IsSizeNameUnique(ctx, companyID, input.Name, "")
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrNameTaken
	}

	now := time.Now()
	s := &model.Size{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CompanyID: companyID,
		Name:      input.Name,
		SortOrder: input.SortOrder,
	}
	if err := uc.repo.CreateSize(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *referenceUseCase) UpdateSize(ctx context.Context, input *dto.UpdateSizeInput) (*model.Size, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	unique, err := uc.repo.IsSizeNameUnique(ctx, companyID, input.Name, input.ID)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrNameTaken
	}

	s := &model.Size{
		BaseModel: model.BaseModel{ID: input.ID, UpdatedAt: time.Now()},
		CompanyID: companyID,
		Name:      input.Name,
		SortOrder: input.SortOrder,
	}
	if err := uc.repo.UpdateSize(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *referenceUseCase) DeleteSize(ctx context.Context, id string) error {
	return uc.repo.DeleteSize(ctx, auth.CompanyID(ctx), id)
}
