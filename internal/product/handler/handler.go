package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/micaelrauan/stokk-backend/internal/api"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"github.com/micaelrauan/stokk-backend/internal/product"
	"github.com/micaelrauan/stokk-backend/internal/product/dto"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: log}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if !api.DecodeValid(w, r, &input) {
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to create product")
		return
	}

	api.WriteJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		h.writeUsecaseError(w, err, "failed to get product")
		return
	}
	if p == nil {
		api.WriteError(w, http.StatusNotFound, "not_found", "product not found", nil)
		return
	}
	api.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := &dto.ProductFilters{
		Category:    r.URL.Query().Get("category"),
		SearchQuery: r.URL.Query().Get("q"),
		SortBy:      r.URL.Query().Get("sort_by"),
		SortOrder:   r.URL.Query().Get("sort_order"),
		Page:        api.QueryInt(r, "page", 1),
		PageSize:    api.QueryInt(r, "page_size", 50),
	}

	products, total, err := h.uc.ListProducts(r.Context(), filters)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to list products")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": products,
		"total": total,
	})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateProductInput
	if !api.DecodeValid(w, r, &input) {
		return
	}
	input.ID = chi.URLParam(r, "productID")

	p, err := h.uc.UpdateProduct(r.Context(), &input)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to update product")
		return
	}
	api.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteProduct(r.Context(), chi.URLParam(r, "productID")); err != nil {
		h.writeUsecaseError(w, err, "failed to delete product")
		return
	}
	api.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *ProductHandler) AddVariant(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateVariantInput
	if !api.DecodeValid(w, r, &input) {
		return
	}
	input.ProductID = chi.URLParam(r, "productID")

	v, err := h.uc.AddVariant(r.Context(), &input)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to add variant")
		return
	}
	api.WriteJSON(w, http.StatusCreated, v)
}

func (h *ProductHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	variants, err := h.uc.ListVariants(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		h.writeUsecaseError(w, err, "failed to list variants")
		return
	}
	api.WriteJSON(w, http.StatusOK, variants)
}

func (h *ProductHandler) FindByBarcode(w http.ResponseWriter, r *http.Request) {
	match, err := h.uc.FindByBarcode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.writeUsecaseError(w, err, "failed to resolve barcode")
		return
	}
	if match == nil {
		api.WriteError(w, http.StatusNotFound, "not_found", "no variant with this barcode", nil)
		return
	}
	api.WriteJSON(w, http.StatusOK, match)
}

func (h *ProductHandler) writeUsecaseError(w http.ResponseWriter, err error, msg string) {
	if errors.Is(err, auth.ErrNoCompany) {
		api.WriteError(w, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
		return
	}
	h.logger.Error(msg, zap.Error(err))
	api.WriteError(w, http.StatusInternalServerError, "internal_error", msg, nil)
}
