package services

import (
	"go.uber.org/zap"

	"region-service/internal/dto"
	"region-service/internal/entities"
	"region-service/internal/repositories"
	"region-service/pkg/validation"
)

type AreaServiceInterface = CrudServiceInterface[dto.AreaRequestDTO, dto.AreaDTO]

func NewAreaService(repo repositories.AreaRepositoryInterface, v *validation.CustomValidator, logger *zap.Logger) AreaServiceInterface {
	return newCrudService(repo, v, logger, crudConfig[entities.Area, dto.AreaRequestDTO, dto.AreaDTO]{
		label: "Area",
		fieldMessages: map[string]string{
			"name": "Area name cannot be empty",
		},
		toEntity: areaDTOToEntity,
		toDTO:    areaEntityToDTO,
	})
}

func areaDTOToEntity(in dto.AreaRequestDTO) entities.Area {
	return entities.Area{Name: in.Name, Description: in.Description}
}

func areaEntityToDTO(entity *entities.Area) dto.AreaDTO {
	return dto.AreaDTO{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}
