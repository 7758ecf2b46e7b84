package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"region-service/internal/repositories"
	apperrors "region-service/pkg/errors"
	"region-service/pkg/types"
	"region-service/pkg/validation"
)

// CrudServiceInterface: операции одного уровня иерархии в терминах DTO.
type CrudServiceInterface[In any, Out any] interface {
	List(ctx context.Context, filter types.Filter) ([]Out, error)
	Find(ctx context.Context, id string) (*Out, error)
	Create(ctx context.Context, input In) (*Out, error)
	Update(ctx context.Context, id string, input In) (*Out, error)
	Delete(ctx context.Context, id string) error
}

// crudConfig: то, чем уровни иерархии отличаются друг от друга.
type crudConfig[E any, In any, Out any] struct {
	// Label: имя сущности в сообщениях: "Area", "Sub-area", "Branch"
	label string
	// fieldMessages: сообщение для поля (по json-имени), не прошедшего валидацию
	fieldMessages map[string]string
	toEntity      func(In) E
	toDTO         func(*E) Out
}

type CrudService[E any, In any, Out any] struct {
	repository repositories.CrudRepositoryInterface[E]
	validator  *validation.CustomValidator
	logger     *zap.Logger
	cfg        crudConfig[E, In, Out]
}

func newCrudService[E any, In any, Out any](
	repository repositories.CrudRepositoryInterface[E],
	v *validation.CustomValidator,
	logger *zap.Logger,
	cfg crudConfig[E, In, Out],
) *CrudService[E, In, Out] {
	return &CrudService[E, In, Out]{repository: repository, validator: v, logger: logger, cfg: cfg}
}

func (s *CrudService[E, In, Out]) List(ctx context.Context, filter types.Filter) ([]Out, error) {
	items, err := s.repository.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]Out, 0, len(items))
	for i := range items {
		result = append(result, s.cfg.toDTO(&items[i]))
	}
	return result, nil
}

func (s *CrudService[E, In, Out]) Find(ctx context.Context, id string) (*Out, error) {
	item, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, s.notFound()
	}
	out := s.cfg.toDTO(item)
	return &out, nil
}

func (s *CrudService[E, In, Out]) Create(ctx context.Context, input In) (*Out, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	entity := s.cfg.toEntity(input)
	created, err := s.repository.Create(ctx, &entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Запись создана", zap.String("entity", s.cfg.label), zap.String("id", s.idOf(created)))
	out := s.cfg.toDTO(created)
	return &out, nil
}

// Update заменяет все изменяемые поля и возвращает запись, перечитанную из БД.
func (s *CrudService[E, In, Out]) Update(ctx context.Context, id string, input In) (*Out, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	entity := s.cfg.toEntity(input)
	affected, err := s.repository.Update(ctx, id, &entity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, s.notFound()
	}

	// строку могли удалить между UPDATE и SELECT
	updated, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, s.notFound()
	}

	s.logger.Info("Запись обновлена", zap.String("entity", s.cfg.label), zap.String("id", id))
	out := s.cfg.toDTO(updated)
	return &out, nil
}

func (s *CrudService[E, In, Out]) Delete(ctx context.Context, id string) error {
	affected, err := s.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return s.notFound()
	}
	s.logger.Info("Запись удалена", zap.String("entity", s.cfg.label), zap.String("id", id))
	return nil
}

func (s *CrudService[E, In, Out]) notFound() error {
	return apperrors.NewNotFoundError("%s not found", s.cfg.label)
}

// validate возвращает первую ошибку по порядку полей DTO.
func (s *CrudService[E, In, Out]) validate(input In) error {
	err := s.validator.Validate(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		s.logger.Error("Не удалось провалидировать запрос", zap.Error(err))
		return err
	}

	field := fieldErrors[0].Field()
	if msg, ok := s.cfg.fieldMessages[field]; ok {
		return apperrors.NewValidationError(field, "%s", msg)
	}
	return apperrors.NewValidationError(field, "%s is invalid", field)
}

func (s *CrudService[E, In, Out]) idOf(entity *E) string {
	if b, ok := any(entity).(interface{ Base() *types.BaseEntity }); ok {
		return b.Base().ID
	}
	return ""
}
