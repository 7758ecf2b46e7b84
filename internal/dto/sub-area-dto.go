package dto

import "github.com/aarondl/null/v8"

type SubAreaRequestDTO struct {
	Name        string      `json:"name" validate:"notblank"`
	Description null.String `json:"description"`
	AreaID      string      `json:"area_id" validate:"notblank"`
}

type SubAreaDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	AreaID      string      `json:"area_id"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}
