package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/pkg/cache"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"github.com/micaelrauan/stokk-backend/internal/pkg/search"
	"github.com/micaelrauan/stokk-backend/internal/product"
	"github.com/micaelrauan/stokk-backend/internal/product/dto"
	"go.uber.org/zap"
)

const productsIndex = "products"

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	now := time.Now()
	var description *string
	if input.Description != "" {
		description = &input.Description
	}
	var brand *string
	if input.Brand != "" {
		brand = &input.Brand
	}
	var imageURL *string
	if input.ImageURL != "" {
		imageURL = &input.ImageURL
	}

	p := &model.Product{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CompanyID:   companyID,
		Name:        input.Name,
		Description: description,
		Category:    input.Category,
		Brand:       brand,
		CostPrice:   input.CostPrice,
		SalePrice:   input.SalePrice,
		MinStock:    input.MinStock,
		ImageURL:    imageURL,
	}

	gridInputs := input.Variants
	if len(gridInputs) == 0 {
		// Expand the size x color grid into explicit variant inputs.
		for _, size := range input.Sizes {
			for _, color := range input.Colors {
				gridInputs = append(gridInputs, dto.CreateVariantInput{Size: size, Color: color})
			}
		}
	}

	variants := make([]model.ProductVariant, 0, len(gridInputs))
	for _, vi := range gridInputs {
		v, err := uc.buildVariant(ctx, companyID, p, &vi, now)
		if err != nil {
			return nil, err
		}
		variants = append(variants, *v)
	}

	if err := uc.repo.Create(ctx, p, variants); err != nil {
		return nil, err
	}
	p.Variants = variants

	go uc.invalidateProductCache(context.Background(), companyID)
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) buildVariant(ctx context.Context, companyID string, p *model.Product, input *dto.CreateVariantInput, now time.Time) (*model.ProductVariant, error) {
	sku := makeSKU(p.Category, input.Color, input.Size)
	for i := 2; ; i++ {
		unique, err := uc.repo.IsSKUUnique(ctx, companyID, sku, "")
		if err != nil {
			return nil, err
		}
		if unique {
			break
		}
		sku = fmt.Sprintf("%s-%d", makeSKU(p.Category, input.Color, input.Size), i)
	}

	barcode := input.Barcode
	if barcode == "" {
		barcode = makeBarcode()
	} else {
		unique, err := uc.repo.IsBarcodeUnique(ctx, companyID, barcode, "")
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, errors.New("barcode already exists")
		}
	}

	return &model.ProductVariant{
		BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CompanyID:    companyID,
		ProductID:    p.ID,
		Size:         input.Size,
		Color:        input.Color,
		Barcode:      barcode,
		SKU:          sku,
		CurrentStock: input.InitialStock,
	}, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	companyID := auth.CompanyID(ctx)
	p, err := uc.repo.FindByID(ctx, companyID, id)
	if err != nil || p == nil {
		return p, err
	}
	variants, err := uc.repo.ListVariants(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	p.Variants = variants
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	if filters.CompanyID == "" {
		filters.CompanyID = auth.CompanyID(ctx)
	}

	cacheKey, err := uc.generateCacheKey(filters)
	if err == nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var result struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return result.Products, result.Count, nil
			}
		}
	}

	if filters.SearchQuery != "" && uc.es != nil {
		products, count, err := uc.searchElastic(ctx, filters)
		if err == nil {
			return products, count, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if err := uc.attachVariants(ctx, filters.CompanyID, products); err != nil {
		return nil, 0, err
	}

	if cacheKey != "" {
		cacheData := struct {
			Products []model.Product
			Count    int
		}{Products: products, Count: count}
		if data, err := json.Marshal(cacheData); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, 5*time.Minute)
		}
	}

	return products, count, nil
}

func (uc *productUseCase) attachVariants(ctx context.Context, companyID string, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]string, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}
	variants, err := uc.repo.ListVariantsByProducts(ctx, companyID, ids)
	if err != nil {
		return err
	}
	byProduct := make(map[string][]model.ProductVariant, len(products))
	for _, v := range variants {
		byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
	}
	for i := range products {
		products[i].Variants = byProduct[products[i].ID]
	}
	return nil
}

func (uc *productUseCase) searchElastic(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"query_string": map[string]interface{}{
							"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
							"fields": []string{"name^3", "category", "brand", "description"},
						},
					},
					{
						"term": map[string]interface{}{
							"company_id": filters.CompanyID,
						},
					},
				},
			},
		},
		"from": (filters.Page - 1) * filters.PageSize,
	}
	if filters.PageSize > 0 {
		q["size"] = filters.PageSize
	}

	res, err := uc.es.Search(ctx, productsIndex, q)
	if err != nil {
		return nil, 0, err
	}

	var products []model.Product
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err == nil {
			products = append(products, p)
		}
	}
	if err := uc.attachVariants(ctx, filters.CompanyID, products); err != nil {
		return nil, 0, err
	}
	return products, res.Hits.Total.Value, nil
}

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%s:%x", filters.CompanyID, md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateProductCache(ctx context.Context, companyID string) {
	if err := uc.cache.DeleteByPattern(ctx, fmt.Sprintf("products:list:%s:*", companyID)); err != nil {
		uc.logger.Warn("failed to invalidate product cache", zap.Error(err))
	}
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"company_id": { "type": "keyword" },
				"name": { "type": "text" },
				"description": { "type": "text" },
				"category": { "type": "keyword" },
				"brand": { "type": "keyword" },
				"sale_price": { "type": "double" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productsIndex, mapping)

	// Variants are attached per-request from the DB; the index carries only
	// the searchable product fields.
	doc := *p
	doc.Variants = nil
	if err := uc.es.Index(ctx, productsIndex, p.ID, &doc); err != nil {
		uc.logger.Error("failed to index product", zap.String("product_id", p.ID), zap.Error(err))
	}
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	p, err := uc.repo.FindByID(ctx, companyID, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("product not found")
	}

	p.Name = input.Name
	if input.Description != "" {
		p.Description = &input.Description
	} else {
		p.Description = nil
	}
	p.Category = input.Category
	if input.Brand != "" {
		p.Brand = &input.Brand
	} else {
		p.Brand = nil
	}
	p.CostPrice = input.CostPrice
	p.SalePrice = input.SalePrice
	p.MinStock = input.MinStock
	if input.ImageURL != "" {
		p.ImageURL = &input.ImageURL
	} else {
		p.ImageURL = nil
	}
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background(), companyID)
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return auth.ErrNoCompany
	}

	p, err := uc.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil // already gone
	}

	if err := uc.repo.Delete(ctx, companyID, id); err != nil {
		return err
	}

	go uc.invalidateProductCache(context.Background(), companyID)
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), productsIndex, id); err != nil {
				uc.logger.Error("failed to delete product from ES", zap.Error(err))
			}
		}()
	}

	return nil
}

func (uc *productUseCase) AddVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.ProductVariant, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	p, err := uc.repo.FindByID(ctx, companyID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("product not found")
	}

	v, err := uc.buildVariant(ctx, companyID, p, input, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.AddVariant(ctx, v); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background(), companyID)

	return v, nil
}

func (uc *productUseCase) ListVariants(ctx context.Context, productID string) ([]model.ProductVariant, error) {
	return uc.repo.ListVariants(ctx, auth.CompanyID(ctx), productID)
}

func (uc *productUseCase) FindByBarcode(ctx context.Context, code string) (*dto.BarcodeMatch, error) {
	companyID := auth.CompanyID(ctx)

	variant, err := uc.repo.FindVariantByBarcode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, nil
	}

	p, err := uc.repo.FindByID(ctx, companyID, variant.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	return &dto.BarcodeMatch{Product: *p, Variant: *variant}, nil
}
