package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/micaelrauan/stokk-backend/internal/alert"
	"github.com/micaelrauan/stokk-backend/internal/api"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"go.uber.org/zap"
)

type AlertHandler struct {
	uc     alert.UseCase
	logger logger.ZapLogger
}

func NewAlertHandler(uc alert.UseCase, log logger.ZapLogger) *AlertHandler {
	return &AlertHandler{uc: uc, logger: log}
}

func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"
	page := api.QueryInt(r, "page", 1)
	pageSize := api.QueryInt(r, "page_size", 50)

	alerts, total, err := h.uc.ListAlerts(r.Context(), unreadOnly, page, pageSize)
	if err != nil {
		h.logger.Error("list alerts failed", zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to list alerts", nil)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": alerts,
		"total": total,
	})
}

func (h *AlertHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "alertID")
	if err := h.uc.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, auth.ErrNoCompany) {
			api.WriteError(w, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
			return
		}
		h.logger.Error("mark alert read failed", zap.String("alert_id", id), zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to mark alert read", nil)
		return
	}
	api.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *AlertHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.MarkAllRead(r.Context()); err != nil {
		if errors.Is(err, auth.ErrNoCompany) {
			api.WriteError(w, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
			return
		}
		h.logger.Error("mark all alerts read failed", zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to mark alerts read", nil)
		return
	}
	api.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *AlertHandler) CountUnread(w http.ResponseWriter, r *http.Request) {
	count, err := h.uc.CountUnread(r.Context())
	if err != nil {
		h.logger.Error("count unread alerts failed", zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to count unread alerts", nil)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]int{"unread": count})
}
