package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/product/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const insertVariantQuery = `
    INSERT INTO product_variants (
        id, company_id, product_id, size, color, barcode, sku, current_stock,
        created_at, updated_at
    )
    VALUES (
        :id, :company_id, :product_id, :size, :color, :barcode, :sku, :current_stock,
        :created_at, :updated_at
    )
`

func (r *PGRepository) Create(ctx context.Context, p *model.Product, variants []model.ProductVariant) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	productQuery := `
        INSERT INTO products (
            id, company_id, name, description, category, brand,
            cost_price, sale_price, min_stock, image_url, created_at, updated_at
        )
        VALUES (
            :id, :company_id, :name, :description, :category, :brand,
            :cost_price, :sale_price, :min_stock, :image_url, :created_at, :updated_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, productQuery, p); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	for i := range variants {
		if _, err := tx.NamedExecContext(ctx, insertVariantQuery, &variants[i]); err != nil {
			return fmt.Errorf("failed to insert variant %s: %w", variants[i].SKU, err)
		}
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, companyID, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 AND company_id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CompanyID != "" {
		conditions = append(conditions, "company_id = :company_id")
		args["company_id"] = f.CompanyID
	}
	if f.Category != "" {
		conditions = append(conditions, "category = :category")
		args["category"] = f.Category
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR category ILIKE :search OR brand ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	orderBy := "created_at DESC"
	if f.SortBy != "" {
		// Whitelist sortable columns.
		switch f.SortBy {
		case "name":
			orderBy = "name"
		case "price":
			orderBy = "sale_price"
		case "created_at":
			orderBy = "created_at"
		}
		if strings.ToLower(f.SortOrder) == "asc" {
			orderBy += " ASC"
		} else {
			orderBy += " DESC"
		}
	}

	query := fmt.Sprintf("SELECT * FROM products%s ORDER BY %s", whereClause, orderBy)
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name,
            description = :description,
            category = :category,
            brand = :brand,
            cost_price = :cost_price,
            sale_price = :sale_price,
            min_stock = :min_stock,
            image_url = :image_url,
            updated_at = :updated_at
        WHERE id = :id AND company_id = :company_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1 AND company_id = $2", id, companyID)
	return err
}

func (r *PGRepository) AddVariant(ctx context.Context, v *model.ProductVariant) error {
	_, err := r.DB.NamedExecContext(ctx, insertVariantQuery, v)
	return err
}

func (r *PGRepository) ListVariants(ctx context.Context, companyID, productID string) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	query := `
        SELECT * FROM product_variants
        WHERE company_id = $1 AND product_id = $2
        ORDER BY size, color
    `
	err := r.DB.SelectContext(ctx, &variants, query, companyID, productID)
	return variants, err
}

func (r *PGRepository) ListVariantsByProducts(ctx context.Context, companyID string, productIDs []string) ([]model.ProductVariant, error) {
	if len(productIDs) == 0 {
		return []model.ProductVariant{}, nil
	}

	query, args, err := sqlx.In(`
        SELECT * FROM product_variants
        WHERE company_id = ? AND product_id IN (?)
        ORDER BY size, color
    `, companyID, productIDs)
	if err != nil {
		return nil, err
	}
	query = r.DB.Rebind(query)

	var variants []model.ProductVariant
	err = r.DB.SelectContext(ctx, &variants, query, args...)
	return variants, err
}

func (r *PGRepository) FindVariantByBarcode(ctx context.Context, companyID, barcode string) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	query := `
        SELECT * FROM product_variants
        WHERE company_id = $1 AND barcode = $2
        ORDER BY created_at
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &variant, query, companyID, barcode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

func (r *PGRepository) IsSKUUnique(ctx context.Context, companyID, sku, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM product_variants WHERE company_id = $1 AND sku = $2`
	args := []interface{}{companyID, sku}
	if excludeID != "" {
		query += ` AND id != $3`
		args = append(args, excludeID)
	}

	if err := r.DB.GetContext(ctx, &count, query, args...); err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *PGRepository) IsBarcodeUnique(ctx context.Context, companyID, barcode, excludeID string) (bool, error) {
	if barcode == "" {
		return true, nil
	}
	var count int
	query := `SELECT count(*) FROM product_variants WHERE company_id = $1 AND barcode = $2`
	args := []interface{}{companyID, barcode}
	if excludeID != "" {
		query += ` AND id != $3`
		args = append(args, excludeID)
	}

	if err := r.DB.GetContext(ctx, &count, query, args...); err != nil {
		return false, err
	}
	return count == 0, nil
}
