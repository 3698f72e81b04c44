package model

// Flat reference lists used for input validation and variant grid generation.

type Category struct {
	BaseModel
	CompanyID string `db:"company_id" json:"company_id"`
	Name      string `db:"name" json:"name"`
}

type Color struct {
	BaseModel
	CompanyID string `db:"company_id" json:"company_id"`
	Name      string `db:"name" json:"name"`
	Hex       string `db:"hex" json:"hex"`
}

type Size struct {
	BaseModel
	CompanyID string `db:"company_id" json:"company_id"`
	Name      string `db:"name" json:"name"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}
