package entities

import (
	"github.com/aarondl/null/v8"

	"region-service/pkg/types"
)

// Area: верхний уровень иерархии.
type Area struct {
	types.BaseEntity
	Name        string
	Description null.String
}

// Values: изменяемые колонки в порядке схемы: name, description.
func (a *Area) Values() []any {
	return []any{a.Name, a.Description}
}

// ScanTargets: все колонки в порядке SELECT.
func (a *Area) ScanTargets() []any {
	return []any{&a.ID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt}
}
