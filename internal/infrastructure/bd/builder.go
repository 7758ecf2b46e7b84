package bd

import (
	sq "github.com/Masterminds/squirrel"

	"region-service/pkg/types"
)

// ApplyFilter добавляет WHERE по первому заданному фильтру из columns.
// Порядок columns задает приоритет. Для филиалов sub_area_id важнее area_id.
func ApplyFilter(builder sq.SelectBuilder, filter types.Filter, columns []string) sq.SelectBuilder {
	for _, col := range columns {
		if val := filter.Get(col); val != "" {
			return builder.Where(sq.Eq{col: val})
		}
	}
	return builder
}
