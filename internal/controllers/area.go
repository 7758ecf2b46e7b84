package controllers

import (
	"go.uber.org/zap"

	"region-service/internal/dto"
	"region-service/internal/services"
	"region-service/pkg/api"
)

type AreaController = CrudController[dto.AreaRequestDTO, dto.AreaDTO]

func NewAreaController(service services.AreaServiceInterface, responder *api.Responder, logger *zap.Logger) *AreaController {
	return newCrudController(service, responder, logger, "Area")
}
