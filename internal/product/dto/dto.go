package dto

import "github.com/micaelrauan/stokk-backend/internal/model"

type ProductFilters struct {
	CompanyID   string `json:"company_id"`
	Category    string `json:"category"`
	SearchQuery string `json:"search_query"`
	SortBy      string `json:"sort_by"`    // name, price, created_at
	SortOrder   string `json:"sort_order"` // asc, desc
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
}

type BarcodeMatch struct {
	Product model.Product        `json:"product"`
	Variant model.ProductVariant `json:"variant"`
}
