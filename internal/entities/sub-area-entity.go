package entities

import (
	"github.com/aarondl/null/v8"

	"region-service/pkg/types"
)

type SubArea struct {
	types.BaseEntity
	Name        string
	Description null.String
	AreaID      string
}

func (s *SubArea) Values() []any {
	return []any{s.Name, s.Description, s.AreaID}
}

func (s *SubArea) ScanTargets() []any {
	return []any{&s.ID, &s.Name, &s.Description, &s.AreaID, &s.CreatedAt, &s.UpdatedAt}
}
