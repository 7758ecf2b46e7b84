package repositories

import (
	"go.uber.org/zap"

	"region-service/internal/entities"
)

const areaTable = "areas"

var areaSchema = Schema{
	Table:   areaTable,
	Columns: []string{"name", "description"},
}

type AreaRepositoryInterface = CrudRepositoryInterface[entities.Area]

func NewAreaRepository(storage Querier, logger *zap.Logger, opts ...Option) AreaRepositoryInterface {
	return NewRepository[entities.Area](storage, areaSchema, logger, opts...)
}
