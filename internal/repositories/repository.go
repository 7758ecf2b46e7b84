package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"region-service/internal/infrastructure/bd"
	apperrors "region-service/pkg/errors"
	"region-service/pkg/types"
)

// Record: указатель на сущность, которую умеет хранить Repository.
// ScanTargets: id, Columns..., created_at, updated_at. Values: только Columns.
type Record[T any] interface {
	*T
	Base() *types.BaseEntity
	Values() []any
	ScanTargets() []any
}

// Schema описывает таблицу: изменяемые колонки и колонки фильтра в порядке приоритета.
type Schema struct {
	Table         string
	Columns       []string
	FilterColumns []string
}

func (s Schema) selectColumns() []string {
	cols := make([]string, 0, len(s.Columns)+3)
	cols = append(cols, "id")
	cols = append(cols, s.Columns...)
	return append(cols, "created_at", "updated_at")
}

// CrudRepositoryInterface: одинаковый набор операций для areas, sub_areas, branches.
// FindByID возвращает (nil, nil), если строки нет. Update и Delete возвращают число затронутых строк.
type CrudRepositoryInterface[T any] interface {
	FindAll(ctx context.Context, filter types.Filter) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, input *T) (*T, error)
	Update(ctx context.Context, id string, input *T) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

// WithClock подменяет источник времени (тесты).
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator подменяет генератор id (тесты).
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

type Repository[T any, PT Record[T]] struct {
	storage Querier
	schema  Schema
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

func NewRepository[T any, PT Record[T]](storage Querier, schema Schema, logger *zap.Logger, opts ...Option) *Repository[T, PT] {
	o := options{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Repository[T, PT]{
		storage: storage,
		schema:  schema,
		logger:  logger,
		now:     o.now,
		newID:   o.newID,
	}
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (r *Repository[T, PT]) storageError(op string, err error) error {
	return apperrors.NewStorageError(op+" "+r.schema.Table, err)
}

// FindAll: все строки, новые сверху.
func (r *Repository[T, PT]) FindAll(ctx context.Context, filter types.Filter) ([]T, error) {
	builder := psql().Select(r.schema.selectColumns()...).From(r.schema.Table)
	builder = bd.ApplyFilter(builder, filter, r.schema.FilterColumns)
	builder = builder.OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, r.storageError("select", err)
	}
	r.logger.Debug("SQL", zap.String("query", query), zap.Any("args", args))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, r.storageError("select", err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var item T
		if err := rows.Scan(PT(&item).ScanTargets()...); err != nil {
			return nil, r.storageError("scan", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageError("select", err)
	}
	return items, nil
}

func (r *Repository[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	query, args, err := psql().Select(r.schema.selectColumns()...).
		From(r.schema.Table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, r.storageError("select", err)
	}

	var item T
	err = r.storage.QueryRow(ctx, query, args...).Scan(PT(&item).ScanTargets()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.storageError("select", err)
	}
	return &item, nil
}

// Create присваивает новый id и обе метки времени, вход не меняет.
func (r *Repository[T, PT]) Create(ctx context.Context, input *T) (*T, error) {
	created := *input
	rec := PT(&created)

	now := types.FormatTimestamp(r.now())
	base := rec.Base()
	base.ID = r.newID()
	base.CreatedAt = now
	base.UpdatedAt = now

	values := make([]any, 0, len(r.schema.Columns)+3)
	values = append(values, base.ID)
	values = append(values, rec.Values()...)
	values = append(values, base.CreatedAt, base.UpdatedAt)

	query, args, err := psql().Insert(r.schema.Table).
		Columns(r.schema.selectColumns()...).
		Values(values...).
		ToSql()
	if err != nil {
		return nil, r.storageError("insert", err)
	}

	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return nil, r.storageError("insert", err)
	}
	return &created, nil
}

// Update перезаписывает изменяемые колонки и updated_at. created_at не трогается.
func (r *Repository[T, PT]) Update(ctx context.Context, id string, input *T) (int64, error) {
	values := PT(input).Values()

	builder := psql().Update(r.schema.Table)
	for i, col := range r.schema.Columns {
		builder = builder.Set(col, values[i])
	}
	builder = builder.Set("updated_at", types.FormatTimestamp(r.now())).Where(sq.Eq{"id": id})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, r.storageError("update", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return 0, r.storageError("update", err)
	}
	return result.RowsAffected(), nil
}

// Delete удаляет строку; зависимые строки удаляет сама БД (ON DELETE CASCADE).
func (r *Repository[T, PT]) Delete(ctx context.Context, id string) (int64, error) {
	query, args, err := psql().Delete(r.schema.Table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, r.storageError("delete", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return 0, r.storageError("delete", err)
	}
	return result.RowsAffected(), nil
}
