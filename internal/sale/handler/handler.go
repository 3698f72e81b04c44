package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/micaelrauan/stokk-backend/internal/api"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"github.com/micaelrauan/stokk-backend/internal/sale"
	"github.com/micaelrauan/stokk-backend/internal/sale/dto"
	"github.com/micaelrauan/stokk-backend/internal/sale/usecase"
	"go.uber.org/zap"
)

type SaleHandler struct {
	uc     sale.UseCase
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{uc: uc, logger: log}
}

func (h *SaleHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input dto.RegisterSaleInput
	if !api.DecodeValid(w, r, &input) {
		return
	}

	result, err := h.uc.RegisterSale(r.Context(), &input)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to register sale")
		return
	}
	api.WriteJSON(w, http.StatusCreated, result)
}

func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.GetSale(r.Context(), chi.URLParam(r, "saleID"))
	if err != nil {
		h.writeUsecaseError(w, err, "failed to load sale")
		return
	}
	if s == nil {
		api.WriteError(w, http.StatusNotFound, "not_found", "sale not found", nil)
		return
	}
	api.WriteJSON(w, http.StatusOK, s)
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := &dto.SaleFilters{
		Page:     api.QueryInt(r, "page", 1),
		PageSize: api.QueryInt(r, "page_size", 20),
	}

	sales, total, err := h.uc.ListSales(r.Context(), filters)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to list sales")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"sales": sales,
		"total": total,
		"page":  filters.Page,
	})
}

func (h *SaleHandler) writeUsecaseError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, auth.ErrNoCompany):
		api.WriteError(w, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case errors.Is(err, usecase.ErrUnknownVariant):
		api.WriteError(w, http.StatusUnprocessableEntity, "unknown_variant", err.Error(), nil)
	default:
		h.logger.Error(msg, zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "internal_error", msg, nil)
	}
}
