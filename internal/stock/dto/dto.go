package dto

import (
	"time"

	"github.com/micaelrauan/stokk-backend/internal/model"
)

// VariantState is the resolved snapshot the engine mutates against.
type VariantState struct {
	ProductID    string `db:"product_id"`
	VariantID    string `db:"variant_id"`
	ProductName  string `db:"product_name"`
	Size         string `db:"size"`
	Color        string `db:"color"`
	MinStock     int    `db:"min_stock"`
	CurrentStock int    `db:"current_stock"`
}

func (s *VariantState) Label() string {
	return s.Size + "/" + s.Color
}

type AppliedItem struct {
	ProductID     string          `json:"product_id"`
	VariantID     string          `json:"variant_id"`
	PreviousStock int             `json:"previous_stock"`
	NewStock      int             `json:"new_stock"`
	AlertType     model.AlertType `json:"alert_type,omitempty"` // empty when no alert was raised
}

// MovementResult distinguishes processed items from silently unresolvable or
// failed ones, so callers can react per item.
type MovementResult struct {
	Applied []AppliedItem `json:"applied"`
	Skipped []string      `json:"skipped"` // variant ids that did not resolve
	Failed  []string      `json:"failed"`  // variant ids whose write failed
}

type LogFilters struct {
	CompanyID    string
	ProductID    string
	VariantID    string
	MovementType string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	PageSize     int
}
