package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/micaelrauan/stokk-backend/internal/dashboard"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) LoadSnapshot(ctx context.Context, companyID string, dayStart time.Time) (*dashboard.Snapshot, error) {
	snap := &dashboard.Snapshot{}

	type stockRow struct {
		ProductID    string `db:"product_id"`
		MinStock     int    `db:"min_stock"`
		CurrentStock int    `db:"current_stock"`
	}
	var rows []stockRow
	stockQuery := `
        SELECT p.id AS product_id, p.min_stock, v.current_stock
        FROM products p
        JOIN product_variants v ON v.product_id = p.id
        WHERE p.company_id = $1
        ORDER BY p.id
    `
	if err := r.DB.SelectContext(ctx, &rows, stockQuery, companyID); err != nil {
		return nil, fmt.Errorf("load stock snapshot: %w", err)
	}

	byProduct := make(map[string]int)
	for _, row := range rows {
		idx, ok := byProduct[row.ProductID]
		if !ok {
			snap.Products = append(snap.Products, dashboard.ProductStock{MinStock: row.MinStock})
			idx = len(snap.Products) - 1
			byProduct[row.ProductID] = idx
		}
		snap.Products[idx].VariantStocks = append(snap.Products[idx].VariantStocks, row.CurrentStock)
	}

	alertQuery := `SELECT count(*) FROM alerts WHERE company_id = $1 AND read = false`
	if err := r.DB.GetContext(ctx, &snap.UnreadAlerts, alertQuery, companyID); err != nil {
		return nil, fmt.Errorf("count unread alerts: %w", err)
	}

	var sales struct {
		Count   int     `db:"count"`
		Revenue float64 `db:"revenue"`
	}
	salesQuery := `
        SELECT count(*) AS count, coalesce(sum(total), 0) AS revenue
        FROM sales WHERE company_id = $1 AND created_at >= $2
    `
	if err := r.DB.GetContext(ctx, &sales, salesQuery, companyID, dayStart); err != nil {
		return nil, fmt.Errorf("aggregate today sales: %w", err)
	}
	snap.TodaySalesCount = sales.Count
	snap.TodayRevenue = sales.Revenue

	return snap, nil
}
