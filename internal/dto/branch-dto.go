package dto

import "github.com/aarondl/null/v8"

type BranchRequestDTO struct {
	Name        string      `json:"name" validate:"notblank"`
	Description null.String `json:"description"`
	AreaID      string      `json:"area_id" validate:"notblank"`
	SubAreaID   string      `json:"sub_area_id" validate:"notblank"`
}

type BranchDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	AreaID      string      `json:"area_id"`
	SubAreaID   string      `json:"sub_area_id"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}
