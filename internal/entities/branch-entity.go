package entities

import (
	"github.com/aarondl/null/v8"

	"region-service/pkg/types"
)

type Branch struct {
	types.BaseEntity
	Name        string
	Description null.String
	AreaID      string
	SubAreaID   string
}

func (b *Branch) Values() []any {
	return []any{b.Name, b.Description, b.AreaID, b.SubAreaID}
}

func (b *Branch) ScanTargets() []any {
	return []any{&b.ID, &b.Name, &b.Description, &b.AreaID, &b.SubAreaID, &b.CreatedAt, &b.UpdatedAt}
}
