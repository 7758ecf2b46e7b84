package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"region-service/internal/entities"
	apperrors "region-service/pkg/errors"
)

func TestExportService_BuildWorkbook(t *testing.T) {
	areas := new(MockRepository[entities.Area])
	subAreas := new(MockRepository[entities.SubArea])
	branches := new(MockRepository[entities.Branch])

	area := *storedArea("a-1", "North")
	area.Description = null.StringFrom("cold")
	sub := entities.SubArea{Name: "Coast", AreaID: "a-1"}
	sub.ID = "s-1"
	branch := entities.Branch{Name: "Harbor", AreaID: "a-1", SubAreaID: "s-1"}
	branch.ID = "b-1"

	areas.On("FindAll", mock.Anything, mock.Anything).Return([]entities.Area{area}, nil)
	subAreas.On("FindAll", mock.Anything, mock.Anything).Return([]entities.SubArea{sub}, nil)
	branches.On("FindAll", mock.Anything, mock.Anything).Return([]entities.Branch{branch}, nil)

	svc := NewExportService(areas, subAreas, branches, zap.NewNop())
	f, err := svc.BuildWorkbook(context.Background())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{AreasSheet, SubAreasSheet, BranchesSheet}, f.GetSheetList())

	rows, err := f.GetRows(AreasSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, []string{"a-1", "North", "cold", area.CreatedAt, area.UpdatedAt}, rows[1])

	value, err := f.GetCellValue(SubAreasSheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "a-1", value)

	value, err = f.GetCellValue(BranchesSheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "s-1", value)
}

func TestExportService_StorageErrorStopsExport(t *testing.T) {
	areas := new(MockRepository[entities.Area])
	subAreas := new(MockRepository[entities.SubArea])
	branches := new(MockRepository[entities.Branch])
	areas.On("FindAll", mock.Anything, mock.Anything).Return([]entities.Area{}, nil)
	subAreas.On("FindAll", mock.Anything, mock.Anything).
		Return([]entities.SubArea(nil), apperrors.NewStorageError("select sub_areas", errors.New("down")))

	svc := NewExportService(areas, subAreas, branches, zap.NewNop())
	f, err := svc.BuildWorkbook(context.Background())

	assert.Nil(t, f)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	branches.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}
