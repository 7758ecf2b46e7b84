package services

import (
	"go.uber.org/zap"

	"region-service/internal/dto"
	"region-service/internal/entities"
	"region-service/internal/repositories"
	"region-service/pkg/validation"
)

type BranchServiceInterface = CrudServiceInterface[dto.BranchRequestDTO, dto.BranchDTO]

func NewBranchService(repo repositories.BranchRepositoryInterface, v *validation.CustomValidator, logger *zap.Logger) BranchServiceInterface {
	return newCrudService(repo, v, logger, crudConfig[entities.Branch, dto.BranchRequestDTO, dto.BranchDTO]{
		label: "Branch",
		fieldMessages: map[string]string{
			"name":        "Branch name cannot be empty",
			"area_id":     "Area ID cannot be empty",
			"sub_area_id": "Sub-area ID cannot be empty",
		},
		toEntity: branchDTOToEntity,
		toDTO:    branchEntityToDTO,
	})
}

func branchDTOToEntity(in dto.BranchRequestDTO) entities.Branch {
	return entities.Branch{
		Name:        in.Name,
		Description: in.Description,
		AreaID:      in.AreaID,
		SubAreaID:   in.SubAreaID,
	}
}

func branchEntityToDTO(entity *entities.Branch) dto.BranchDTO {
	return dto.BranchDTO{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		AreaID:      entity.AreaID,
		SubAreaID:   entity.SubAreaID,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}
