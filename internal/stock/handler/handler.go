package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/micaelrauan/stokk-backend/internal/api"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"github.com/micaelrauan/stokk-backend/internal/stock"
	"github.com/micaelrauan/stokk-backend/internal/stock/dto"
	"go.uber.org/zap"
)

type StockHandler struct {
	uc     stock.UseCase
	logger logger.ZapLogger
}

func NewStockHandler(uc stock.UseCase, log logger.ZapLogger) *StockHandler {
	return &StockHandler{uc: uc, logger: log}
}

func (h *StockHandler) ApplyMovement(w http.ResponseWriter, r *http.Request) {
	var input dto.ApplyMovementInput
	if !api.DecodeValid(w, r, &input) {
		return
	}

	result, err := h.uc.ApplyMovement(r.Context(), &input)
	if err != nil {
		if errors.Is(err, auth.ErrNoCompany) {
			api.WriteError(w, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
			return
		}
		h.logger.Error("apply movement failed", zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to apply stock movement", nil)
		return
	}

	api.WriteJSON(w, http.StatusOK, result)
}

func (h *StockHandler) SetStock(w http.ResponseWriter, r *http.Request) {
	var input dto.SetStockInput
	if !api.DecodeValid(w, r, &input) {
		return
	}
	input.VariantID = chi.URLParam(r, "variantID")
	if input.VariantID == "" {
		api.WriteError(w, http.StatusBadRequest, "invalid_input", "variant id is required", nil)
		return
	}

	applied, err := h.uc.SetStock(r.Context(), &input)
	if err != nil {
		if errors.Is(err, auth.ErrNoCompany) {
			api.WriteError(w, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
			return
		}
		h.logger.Error("set stock failed", zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to set stock", nil)
		return
	}
	if applied == nil {
		api.WriteError(w, http.StatusNotFound, "not_found", "variant not found", nil)
		return
	}

	api.WriteJSON(w, http.StatusOK, applied)
}

func (h *StockHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	filters := &dto.LogFilters{
		ProductID:    r.URL.Query().Get("product_id"),
		VariantID:    r.URL.Query().Get("variant_id"),
		MovementType: r.URL.Query().Get("movement_type"),
		Page:         api.QueryInt(r, "page", 1),
		PageSize:     api.QueryInt(r, "page_size", 50),
	}
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filters.StartDate = &t
		}
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filters.EndDate = &t
		}
	}

	logs, total, err := h.uc.ListLogs(r.Context(), filters)
	if err != nil {
		h.logger.Error("list inventory logs failed", zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to list inventory logs", nil)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": logs,
		"total": total,
	})
}
