package handler

import (
	"errors"
	"net/http"

	"github.com/micaelrauan/stokk-backend/internal/api"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/dashboard"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	uc     dashboard.UseCase
	logger logger.ZapLogger
}

func NewDashboardHandler(uc dashboard.UseCase, log logger.ZapLogger) *DashboardHandler {
	return &DashboardHandler{uc: uc, logger: log}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.uc.GetSummary(r.Context())
	if err != nil {
		if errors.Is(err, auth.ErrNoCompany) {
			api.WriteError(w, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
			return
		}
		h.logger.Error("failed to build dashboard summary", zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to build dashboard summary", nil)
		return
	}
	api.WriteJSON(w, http.StatusOK, summary)
}
