package bd

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"region-service/pkg/types"
)

func base() sq.SelectBuilder {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select("id").From("branches")
}

func TestApplyFilter_Precedence(t *testing.T) {
	filter := types.NewFilter(map[string]string{"area_id": "a-1", "sub_area_id": "s-1"})

	query, args, err := ApplyFilter(base(), filter, []string{"sub_area_id", "area_id"}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM branches WHERE sub_area_id = $1", query)
	assert.Equal(t, []interface{}{"s-1"}, args)
}

func TestApplyFilter_FallsBack(t *testing.T) {
	filter := types.NewFilter(map[string]string{"area_id": "a-1"})

	query, args, err := ApplyFilter(base(), filter, []string{"sub_area_id", "area_id"}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM branches WHERE area_id = $1", query)
	assert.Equal(t, []interface{}{"a-1"}, args)
}

func TestApplyFilter_IgnoresUnknownColumns(t *testing.T) {
	filter := types.NewFilter(map[string]string{"name": "North"})

	query, args, err := ApplyFilter(base(), filter, nil).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM branches", query)
	assert.Empty(t, args)
}
