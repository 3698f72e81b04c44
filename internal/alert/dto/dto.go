package dto

type AlertFilters struct {
	CompanyID  string
	UnreadOnly bool
	Page       int
	PageSize   int
}
