package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/micaelrauan/stokk-backend/internal/alert/dto"
	"github.com/micaelrauan/stokk-backend/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, a *model.Alert) error {
	query := `
        INSERT INTO alerts (id, company_id, type, message, product_id, product_name, read, created_at)
        VALUES (:id, :company_id, :type, :message, :product_id, :product_name, :read, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, a)
	return err
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.AlertFilters) ([]model.Alert, int, error) {
	var alerts []model.Alert
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CompanyID != "" {
		conditions = append(conditions, "company_id = :company_id")
		args["company_id"] = f.CompanyID
	}
	if f.UnreadOnly {
		conditions = append(conditions, "read = false")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM alerts" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM alerts" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &alerts, args)
	return alerts, count, err
}

func (r *PGRepository) MarkRead(ctx context.Context, companyID, id string) error {
	// read only ever moves false -> true, so re-running is a no-op.
	query := `UPDATE alerts SET read = true WHERE id = $1 AND company_id = $2`
	_, err := r.DB.ExecContext(ctx, query, id, companyID)
	return err
}

func (r *PGRepository) MarkAllRead(ctx context.Context, companyID string) error {
	query := `UPDATE alerts SET read = true WHERE company_id = $1 AND read = false`
	_, err := r.DB.ExecContext(ctx, query, companyID)
	return err
}

func (r *PGRepository) CountUnread(ctx context.Context, companyID string) (int, error) {
	var count int
	query := `SELECT count(*) FROM alerts WHERE company_id = $1 AND read = false`
	err := r.DB.GetContext(ctx, &count, query, companyID)
	return count, err
}
