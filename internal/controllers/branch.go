package controllers

import (
	"go.uber.org/zap"

	"region-service/internal/dto"
	"region-service/internal/services"
	"region-service/pkg/api"
)

type BranchController = CrudController[dto.BranchRequestDTO, dto.BranchDTO]

// GET /branches?area_id=&sub_area_id=: какой фильтр главнее, решает репозиторий
func NewBranchController(service services.BranchServiceInterface, responder *api.Responder, logger *zap.Logger) *BranchController {
	return newCrudController(service, responder, logger, "Branch", "sub_area_id", "area_id")
}
