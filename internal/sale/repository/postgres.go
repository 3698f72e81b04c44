package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/sale/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Sale) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	headerQuery := `
        INSERT INTO sales (id, company_id, subtotal, discount_percent, total, payment_method,
                           cash_received, change_due, customer_name, created_at)
        VALUES (:id, :company_id, :subtotal, :discount_percent, :total, :payment_method,
                :cash_received, :change_due, :customer_name, :created_at)
    `
	if _, err := tx.NamedExecContext(ctx, headerQuery, s); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	itemQuery := `
        INSERT INTO sale_items (id, sale_id, product_id, variant_id, product_name,
                                variant_label, sku, quantity, unit_price)
        VALUES (:id, :sale_id, :product_id, :variant_id, :product_name,
                :variant_label, :sku, :quantity, :unit_price)
    `
	for i := range s.Items {
		if _, err := tx.NamedExecContext(ctx, itemQuery, &s.Items[i]); err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, companyID, id string) (*model.Sale, error) {
	var s model.Sale
	query := `SELECT * FROM sales WHERE id = $1 AND company_id = $2`
	if err := r.DB.GetContext(ctx, &s, query, id, companyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	itemsQuery := `SELECT * FROM sale_items WHERE sale_id = $1 ORDER BY product_name, variant_label`
	if err := r.DB.SelectContext(ctx, &s.Items, itemsQuery, id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error) {
	var total int
	countQuery := `SELECT count(*) FROM sales WHERE company_id = $1`
	if err := r.DB.GetContext(ctx, &total, countQuery, filters.CompanyID); err != nil {
		return nil, 0, err
	}

	var sales []model.Sale
	query := `
        SELECT * FROM sales WHERE company_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	offset := (filters.Page - 1) * filters.PageSize
	if err := r.DB.SelectContext(ctx, &sales, query, filters.CompanyID, filters.PageSize, offset); err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

func (r *PGRepository) ResolveLine(ctx context.Context, companyID, variantID string) (*dto.LineSnapshot, error) {
	var snap dto.LineSnapshot
	query := `
        SELECT p.name AS product_name, v.size, v.color, v.sku
        FROM product_variants v
        JOIN products p ON p.id = v.product_id
        WHERE v.id = $1 AND v.company_id = $2
    `
	if err := r.DB.GetContext(ctx, &snap, query, variantID, companyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &snap, nil
}
