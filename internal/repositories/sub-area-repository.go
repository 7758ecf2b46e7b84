package repositories

import (
	"go.uber.org/zap"

	"region-service/internal/entities"
)

const subAreaTable = "sub_areas"

var subAreaSchema = Schema{
	Table:         subAreaTable,
	Columns:       []string{"name", "description", "area_id"},
	FilterColumns: []string{"area_id"},
}

type SubAreaRepositoryInterface = CrudRepositoryInterface[entities.SubArea]

func NewSubAreaRepository(storage Querier, logger *zap.Logger, opts ...Option) SubAreaRepositoryInterface {
	return NewRepository[entities.SubArea](storage, subAreaSchema, logger, opts...)
}
