package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/micaelrauan/stokk-backend/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Categories

func (r *PGRepository) ListCategories(ctx context.Context, companyID string) ([]model.Category, error) {
	var categories []model.Category
	query := `SELECT * FROM categories WHERE company_id = $1 ORDER BY name`
	err := r.DB.SelectContext(ctx, &categories, query, companyID)
	return categories, err
}

func (r *PGRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, company_id, name, created_at, updated_at)
        VALUES (:id, :company_id, :name, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) UpdateCategory(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories SET name = :name, updated_at = :updated_at
        WHERE id = :id AND company_id = :company_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) DeleteCategory(ctx context.Context, companyID, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1 AND company_id = $2`, id, companyID)
	return err
}

func (r *PGRepository) IsCategoryNameUnique(ctx context.Context, companyID, name, excludeID string) (bool, error) {
	return r.isNameUnique(ctx, "categories", companyID, name, excludeID)
}

// Colors

func (r *PGRepository) ListColors(ctx context.Context, companyID string) ([]model.Color, error) {
	var colors []model.Color
	query := `SELECT * FROM colors WHERE company_id = $1 ORDER BY name`
	err := r.DB.SelectContext(ctx, &colors, query, companyID)
	return colors, err
}

func (r *PGRepository) CreateColor(ctx context.Context, c *model.Color) error {
	query := `
        INSERT INTO colors (id, company_id, name, hex, created_at, updated_at)
        VALUES (:id, :company_id, :name, :hex, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) UpdateColor(ctx context.Context, c *model.Color) error {
	query := `
        UPDATE colors SET name = :name, hex = :hex, updated_at = :updated_at
        WHERE id = :id AND company_id = :company_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) DeleteColor(ctx context.Context, companyID, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM colors WHERE id = $1 AND company_id = $2`, id, companyID)
	return err
}

func (r *PGRepository) IsColorNameUnique(ctx context.Context, companyID, name, excludeID string) (bool, error) {
	return r.isNameUnique(ctx, "colors", companyID, name, excludeID)
}

// Sizes

func (r *PGRepository) ListSizes(ctx context.Context, companyID string) ([]model.Size, error) {
	var sizes []model.Size
	query := `SELECT * FROM sizes WHERE company_id = $1 ORDER BY sort_order, name`
	err := r.DB.SelectContext(ctx, &sizes, query, companyID)
	return sizes, err
}

func (r *PGRepository) CreateSize(ctx context.Context, s *model.Size) error {
	query := `
        INSERT INTO sizes (id, company_id, name, sort_order, created_at, updated_at)
        VALUES (:id, :company_id, :name, :sort_order, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) UpdateSize(ctx context.Context, s *model.Size) error {
	query := `
        UPDATE sizes SET name = :name, sort_order = :sort_order, updated_at = :updated_at
        WHERE id = :id AND company_id = :company_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) DeleteSize(ctx context.Context, companyID, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sizes WHERE id = $1 AND company_id = $2`, id, companyID)
	return err
}

func (r *PGRepository) IsSizeNameUnique(ctx context.Context, companyID, name, excludeID string) (bool, error) {
	return r.isNameUnique(ctx, "sizes", companyID, name, excludeID)
}

func (r *PGRepository) isNameUnique(ctx context.Context, table, companyID, name, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM ` + table + ` WHERE company_id = $1 AND lower(name) = lower($2)`
	args := []interface{}{companyID, name}
	if excludeID != "" {
		query += ` AND id != $3`
		args = append(args, excludeID)
	}

	if err := r.DB.GetContext(ctx, &count, query, args...); err != nil {
		return false, err
	}
	return count == 0, nil
}
