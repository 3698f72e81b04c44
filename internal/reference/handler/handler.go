package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/micaelrauan/stokk-backend/internal/api"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"github.com/micaelrauan/stokk-backend/internal/reference"
	"github.com/micaelrauan/stokk-backend/internal/reference/dto"
	"github.com/micaelrauan/stokk-backend/internal/reference/usecase"
	"go.uber.org/zap"
)

type ReferenceHandler struct {
	uc     reference.UseCase
	logger logger.ZapLogger
}

func NewReferenceHandler(uc reference.UseCase, log logger.ZapLogger) *ReferenceHandler {
	return &ReferenceHandler{uc: uc, logger: log}
}

func (h *ReferenceHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListCategories(r.Context())
	if err != nil {
		h.writeUsecaseError(w, err, "failed to list categories")
		return
	}
	api.WriteJSON(w, http.StatusOK, items)
}

func (h *ReferenceHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateCategoryInput
	if !api.DecodeValid(w, r, &input) {
		return
	}
	c, err := h.uc.CreateCategory(r.Context(), &input)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to create category")
		return
	}
	api.WriteJSON(w, http.StatusCreated, c)
}

func (h *ReferenceHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateCategoryInput
	if !api.DecodeValid(w, r, &input) {
		return
	}
	input.ID = chi.URLParam(r, "categoryID")
	c, err := h.uc.UpdateCategory(r.Context(), &input)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to update category")
		return
	}
	api.WriteJSON(w, http.StatusOK, c)
}

func (h *ReferenceHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteCategory(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
		h.writeUsecaseError(w, err, "failed to delete category")
		return
	}
	api.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *ReferenceHandler) ListColors(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListColors(r.Context())
	if err != nil {
		h.writeUsecaseError(w, err, "failed to list colors")
		return
	}
	api.WriteJSON(w, http.StatusOK, items)
}

func (h *ReferenceHandler) CreateColor(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateColorInput
	if !api.DecodeValid(w, r, &input) {
		return
	}
	c, err := h.uc.CreateColor(r.Context(), &input)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to create color")
		return
	}
	api.WriteJSON(w, http.StatusCreated, c)
}

func (h *ReferenceHandler) UpdateColor(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateColorInput
	if !api.DecodeValid(w, r, &input) {
		return
	}
	input.ID = chi.URLParam(r, "colorID")
	c, err := h.uc.UpdateColor(r.Context(), &input)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to update color")
		return
	}
	api.WriteJSON(w, http.StatusOK, c)
}

func (h *ReferenceHandler) DeleteColor(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteColor(r.Context(), chi.URLParam(r, "colorID")); err != nil {
		h.writeUsecaseError(w, err, "failed to delete color")
		return
	}
	api.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *ReferenceHandler) ListSizes(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListSizes(r.Context())
	if err != nil {
		h.writeUsecaseError(w, err, "failed to list sizes")
		return
	}
	api.WriteJSON(w, http.StatusOK, items)
}

func (h *ReferenceHandler) CreateSize(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateSizeInput
	if !api.DecodeValid(w, r, &input) {
		return
	}
	s, err := h.uc.CreateSize(r.Context(), &input)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to create size")
		return
	}
	api.WriteJSON(w, http.StatusCreated, s)
}

func (h *ReferenceHandler) UpdateSize(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateSizeInput
	if !api.DecodeValid(w, r, &input) {
		return
	}
	input.ID = chi.URLParam(r, "sizeID")
	s, err := h.uc.UpdateSize(r.Context(), &input)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to update size")
		return
	}
	api.WriteJSON(w, http.StatusOK, s)
}

func (h *ReferenceHandler) DeleteSize(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteSize(r.Context(), chi.URLParam(r, "sizeID")); err != nil {
		h.writeUsecaseError(w, err, "failed to delete size")
		return
	}
	api.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *ReferenceHandler) writeUsecaseError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, auth.ErrNoCompany):
		api.WriteError(w, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case errors.Is(err, usecase.ErrNameTaken):
		api.WriteError(w, http.StatusConflict, "name_taken", err.Error(), nil)
	default:
		h.logger.Error(msg, zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "internal_error", msg, nil)
	}
}
