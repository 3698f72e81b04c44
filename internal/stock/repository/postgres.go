package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/stock/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) GetVariantState(ctx context.Context, companyID, variantID string) (*dto.VariantState, error) {
	var state dto.VariantState
	query := `
        SELECT v.product_id AS product_id,
               v.id AS variant_id,
               p.name AS product_name,
               v.size AS size,
               v.color AS color,
               p.min_stock AS min_stock,
               v.current_stock AS current_stock
        FROM product_variants v
        JOIN products p ON p.id = v.product_id
        WHERE v.id = $1 AND v.company_id = $2
    `
	err := r.DB.GetContext(ctx, &state, query, variantID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (r *PGRepository) ApplyChange(ctx context.Context, companyID, variantID string, newStock int, entry *model.InventoryLog) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	updateQuery := `
        UPDATE product_variants
        SET current_stock = $1, updated_at = $2
        WHERE id = $3 AND company_id = $4
    `
	res, err := tx.ExecContext(ctx, updateQuery, newStock, time.Now(), variantID, companyID)
	if err != nil {
		return fmt.Errorf("failed to update variant stock: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("variant %s not found", variantID)
	}

	insertLogQuery := `
        INSERT INTO inventory_logs (
            id, company_id, product_id, variant_id, product_name, variant_label,
            movement_type, quantity, reason, created_at
        )
        VALUES (
            :id, :company_id, :product_id, :variant_id, :product_name, :variant_label,
            :movement_type, :quantity, :reason, :created_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, insertLogQuery, entry); err != nil {
		return fmt.Errorf("failed to insert inventory log: %w", err)
	}

	return tx.Commit()
}

func (r *PGRepository) SetStock(ctx context.Context, companyID, variantID string, quantity int) error {
	query := `
        UPDATE product_variants
        SET current_stock = $1, updated_at = $2
        WHERE id = $3 AND company_id = $4
    `
	res, err := r.DB.ExecContext(ctx, query, quantity, time.Now(), variantID, companyID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("variant %s not found", variantID)
	}
	return nil
}

func (r *PGRepository) ListLogs(ctx context.Context, f *dto.LogFilters) ([]model.InventoryLog, int, error) {
	var items []model.InventoryLog
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CompanyID != "" {
		conditions = append(conditions, "company_id = :company_id")
		args["company_id"] = f.CompanyID
	}
	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.VariantID != "" {
		conditions = append(conditions, "variant_id = :variant_id")
		args["variant_id"] = f.VariantID
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}
	if f.StartDate != nil {
		conditions = append(conditions, "created_at >= :start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conditions = append(conditions, "created_at <= :end_date")
		args["end_date"] = *f.EndDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM inventory_logs" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM inventory_logs" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}
