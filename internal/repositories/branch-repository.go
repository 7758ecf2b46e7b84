package repositories

import (
	"go.uber.org/zap"

	"region-service/internal/entities"
)

const branchTable = "branches"

// sub_area_id точнее area_id, поэтому проверяется первым.
var branchSchema = Schema{
	Table:         branchTable,
	Columns:       []string{"name", "description", "area_id", "sub_area_id"},
	FilterColumns: []string{"sub_area_id", "area_id"},
}

type BranchRepositoryInterface = CrudRepositoryInterface[entities.Branch]

func NewBranchRepository(storage Querier, logger *zap.Logger, opts ...Option) BranchRepositoryInterface {
	return NewRepository[entities.Branch](storage, branchSchema, logger, opts...)
}
