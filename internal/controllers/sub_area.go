package controllers

import (
	"go.uber.org/zap"

	"region-service/internal/dto"
	"region-service/internal/services"
	"region-service/pkg/api"
)

type SubAreaController = CrudController[dto.SubAreaRequestDTO, dto.SubAreaDTO]

// GET /sub-areas?area_id=
func NewSubAreaController(service services.SubAreaServiceInterface, responder *api.Responder, logger *zap.Logger) *SubAreaController {
	return newCrudController(service, responder, logger, "Sub-area", "area_id")
}
