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

	"region-service/internal/dto"
	"region-service/internal/entities"
	apperrors "region-service/pkg/errors"
	"region-service/pkg/types"
	"region-service/pkg/validation"
)

// MockRepository реализует repositories.CrudRepositoryInterface[T]
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) FindAll(ctx context.Context, filter types.Filter) ([]T, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Create(ctx context.Context, input *T) (*T, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Update(ctx context.Context, id string, input *T) (int64, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func storedArea(id, name string) *entities.Area {
	a := &entities.Area{Name: name}
	a.ID = id
	a.CreatedAt = "2024-01-01T00:00:00.000000Z"
	a.UpdatedAt = "2024-01-01T00:00:00.000000Z"
	return a
}

func TestAreaService_CreateRejectsBlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		repo := new(MockRepository[entities.Area])
		svc := NewAreaService(repo, validation.New(), zap.NewNop())

		_, err := svc.Create(context.Background(), dto.AreaRequestDTO{Name: name})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Equal(t, "Area name cannot be empty", err.Error())
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestAreaService_Create(t *testing.T) {
	repo := new(MockRepository[entities.Area])
	svc := NewAreaService(repo, validation.New(), zap.NewNop())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *entities.Area) bool {
		return a.Name == "North" && a.Description == null.StringFrom("cold") && a.ID == ""
	})).Return(storedArea("a-1", "North"), nil)

	out, err := svc.Create(context.Background(), dto.AreaRequestDTO{Name: "North", Description: null.StringFrom("cold")})

	require.NoError(t, err)
	assert.Equal(t, "a-1", out.ID)
	assert.Equal(t, out.CreatedAt, out.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestAreaService_FindMissing(t *testing.T) {
	repo := new(MockRepository[entities.Area])
	svc := NewAreaService(repo, validation.New(), zap.NewNop())
	repo.On("FindByID", mock.Anything, "nope").Return(nil, nil)

	_, err := svc.Find(context.Background(), "nope")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Area not found", err.Error())
}

func TestAreaService_FindStorageError(t *testing.T) {
	repo := new(MockRepository[entities.Area])
	svc := NewAreaService(repo, validation.New(), zap.NewNop())
	repo.On("FindByID", mock.Anything, "a-1").Return(nil, apperrors.NewStorageError("select areas", errors.New("down")))

	_, err := svc.Find(context.Background(), "a-1")

	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAreaService_UpdateReturnsFreshRow(t *testing.T) {
	repo := new(MockRepository[entities.Area])
	svc := NewAreaService(repo, validation.New(), zap.NewNop())

	fresh := storedArea("a-1", "North Region")
	fresh.UpdatedAt = "2024-01-02T00:00:00.000000Z"
	repo.On("Update", mock.Anything, "a-1", mock.AnythingOfType("*entities.Area")).Return(int64(1), nil)
	repo.On("FindByID", mock.Anything, "a-1").Return(fresh, nil)

	out, err := svc.Update(context.Background(), "a-1", dto.AreaRequestDTO{Name: "North Region"})

	require.NoError(t, err)
	assert.Equal(t, "North Region", out.Name)
	assert.Greater(t, out.UpdatedAt, out.CreatedAt)
	repo.AssertExpectations(t)
}

func TestAreaService_UpdateMissing(t *testing.T) {
	repo := new(MockRepository[entities.Area])
	svc := NewAreaService(repo, validation.New(), zap.NewNop())
	repo.On("Update", mock.Anything, "nope", mock.Anything).Return(int64(0), nil)

	_, err := svc.Update(context.Background(), "nope", dto.AreaRequestDTO{Name: "x"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAreaService_UpdateRowVanished(t *testing.T) {
	repo := new(MockRepository[entities.Area])
	svc := NewAreaService(repo, validation.New(), zap.NewNop())
	repo.On("Update", mock.Anything, "a-1", mock.Anything).Return(int64(1), nil)
	repo.On("FindByID", mock.Anything, "a-1").Return(nil, nil)

	_, err := svc.Update(context.Background(), "a-1", dto.AreaRequestDTO{Name: "x"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAreaService_UpdateValidatesFirst(t *testing.T) {
	repo := new(MockRepository[entities.Area])
	svc := NewAreaService(repo, validation.New(), zap.NewNop())

	_, err := svc.Update(context.Background(), "a-1", dto.AreaRequestDTO{Name: " "})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestAreaService_Delete(t *testing.T) {
	repo := new(MockRepository[entities.Area])
	svc := NewAreaService(repo, validation.New(), zap.NewNop())
	repo.On("Delete", mock.Anything, "a-1").Return(int64(1), nil).Once()
	repo.On("Delete", mock.Anything, "a-1").Return(int64(0), nil).Once()

	require.NoError(t, svc.Delete(context.Background(), "a-1"))

	err := svc.Delete(context.Background(), "a-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAreaService_ListKeepsOrderAndEmptySlice(t *testing.T) {
	repo := new(MockRepository[entities.Area])
	svc := NewAreaService(repo, validation.New(), zap.NewNop())
	repo.On("FindAll", mock.Anything, types.Filter{}).Return([]entities.Area{*storedArea("a-2", "B"), *storedArea("a-1", "A")}, nil).Once()
	repo.On("FindAll", mock.Anything, types.Filter{}).Return([]entities.Area{}, nil).Once()

	out, err := svc.List(context.Background(), types.Filter{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a-2", out[0].ID)

	out, err = svc.List(context.Background(), types.Filter{})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSubAreaService_Validation(t *testing.T) {
	repo := new(MockRepository[entities.SubArea])
	svc := NewSubAreaService(repo, validation.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), dto.SubAreaRequestDTO{Name: "", AreaID: "a-1"})
	assert.Equal(t, "Sub-area name cannot be empty", err.Error())

	_, err = svc.Create(context.Background(), dto.SubAreaRequestDTO{Name: "S", AreaID: "  "})
	assert.Equal(t, "Area ID cannot be empty", err.Error())

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "area_id", vErr.Field)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubAreaService_DanglingParentIsNotPrechecked(t *testing.T) {
	repo := new(MockRepository[entities.SubArea])
	svc := NewSubAreaService(repo, validation.New(), zap.NewNop())
	fkErr := apperrors.NewStorageError("insert sub_areas", errors.New("violates foreign key constraint"))
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, fkErr)

	_, err := svc.Create(context.Background(), dto.SubAreaRequestDTO{Name: "S", AreaID: "ghost"})

	assert.ErrorIs(t, err, apperrors.ErrStorage)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestBranchService_ValidationOrder(t *testing.T) {
	repo := new(MockRepository[entities.Branch])
	svc := NewBranchService(repo, validation.New(), zap.NewNop())

	cases := []struct {
		input dto.BranchRequestDTO
		want  string
	}{
		{dto.BranchRequestDTO{}, "Branch name cannot be empty"},
		{dto.BranchRequestDTO{Name: "B"}, "Area ID cannot be empty"},
		{dto.BranchRequestDTO{Name: "B", AreaID: "a-1", SubAreaID: " "}, "Sub-area ID cannot be empty"},
	}
	for _, tc := range cases {
		_, err := svc.Create(context.Background(), tc.input)
		require.Error(t, err)
		assert.Equal(t, tc.want, err.Error())
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBranchService_FilterIsPassedThrough(t *testing.T) {
	repo := new(MockRepository[entities.Branch])
	svc := NewBranchService(repo, validation.New(), zap.NewNop())
	filter := types.NewFilter(map[string]string{"area_id": "a-1", "sub_area_id": "s-1"})
	repo.On("FindAll", mock.Anything, filter).Return([]entities.Branch{}, nil)

	_, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
