package postgresql

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitSchema создает таблицы areas, sub_areas, branches и индексы.
// Повторный вызов ничего не меняет: миграции записаны через IF NOT EXISTS, а goose помнит примененные версии.
func InitSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	// database/sql поверх того же пула: idle-соединения остаются за pgxpool
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("не удалось подготовить миграции: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}

	for _, res := range results {
		logger.Info("Миграция применена",
			zap.Int64("version", res.Source.Version),
			zap.String("file", res.Source.Path),
			zap.Duration("duration", res.Duration),
		)
	}
	logger.Info("Схема БД готова", zap.Int("applied", len(results)))
	return nil
}
