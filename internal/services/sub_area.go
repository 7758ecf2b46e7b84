package services

import (
	"go.uber.org/zap"

	"region-service/internal/dto"
	"region-service/internal/entities"
	"region-service/internal/repositories"
	"region-service/pkg/validation"
)

type SubAreaServiceInterface = CrudServiceInterface[dto.SubAreaRequestDTO, dto.SubAreaDTO]

// Существование area_id не проверяется: это делает внешний ключ в БД.
func NewSubAreaService(repo repositories.SubAreaRepositoryInterface, v *validation.CustomValidator, logger *zap.Logger) SubAreaServiceInterface {
	return newCrudService(repo, v, logger, crudConfig[entities.SubArea, dto.SubAreaRequestDTO, dto.SubAreaDTO]{
		label: "Sub-area",
		fieldMessages: map[string]string{
			"name":    "Sub-area name cannot be empty",
			"area_id": "Area ID cannot be empty",
		},
		toEntity: subAreaDTOToEntity,
		toDTO:    subAreaEntityToDTO,
	})
}

func subAreaDTOToEntity(in dto.SubAreaRequestDTO) entities.SubArea {
	return entities.SubArea{Name: in.Name, Description: in.Description, AreaID: in.AreaID}
}

func subAreaEntityToDTO(entity *entities.SubArea) dto.SubAreaDTO {
	return dto.SubAreaDTO{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		AreaID:      entity.AreaID,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}
