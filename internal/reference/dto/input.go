package dto

type CreateCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

type UpdateCategoryInput struct {
	ID   string `json:"-"`
	Name string `json:"name" validate:"required"`
}

type CreateColorInput struct {
	Name string `json:"name" validate:"required"`
	Hex  string `json:"hex" validate:"omitempty,hexcolor"`
}

type UpdateColorInput struct {
	ID   string `json:"-"`
	Name string `json:"name" validate:"required"`
	Hex  string `json:"hex" validate:"omitempty,hexcolor"`
}

type CreateSizeInput struct {
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

type UpdateSizeInput struct {
	ID        string `json:"-"`
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sort_order"`
}
