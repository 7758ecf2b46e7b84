package dto

import "github.com/aarondl/null/v8"

// AreaRequestDTO: тело POST и PUT. PUT заменяет все изменяемые поля.
type AreaRequestDTO struct {
	Name        string      `json:"name" validate:"notblank"`
	Description null.String `json:"description"`
}

type AreaDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}
