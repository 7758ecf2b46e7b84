package seeders

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"region-service/internal/entities"
	"region-service/internal/repositories"
	"region-service/pkg/types"
)

// SeedTaxonomy наполняет пустую БД демонстрационной иерархией в одной транзакции.
// Если в areas уже есть хотя бы одна запись, ничего не делает.
func SeedTaxonomy(ctx context.Context, txManager repositories.TxManagerInterface, logger *zap.Logger) error {
	logger.Info("▶️  Запуск наполнения иерархии регионов...")

	return txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		areas := repositories.NewAreaRepository(tx, logger)
		subAreas := repositories.NewSubAreaRepository(tx, logger)
		branches := repositories.NewBranchRepository(tx, logger)

		existing, err := areas.FindAll(ctx, types.Filter{})
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			logger.Info("  - Таблица 'areas' не пуста, пропускаем", zap.Int("count", len(existing)))
			return nil
		}

		var created int
		for _, a := range taxonomyData {
			area, err := areas.Create(ctx, &entities.Area{Name: a.Name, Description: optional(a.Description)})
			if err != nil {
				return err
			}
			created++

			for _, sa := range a.SubAreas {
				sub, err := subAreas.Create(ctx, &entities.SubArea{
					Name:        sa.Name,
					Description: optional(sa.Description),
					AreaID:      area.ID,
				})
				if err != nil {
					return err
				}
				created++

				for _, b := range sa.Branches {
					if _, err := branches.Create(ctx, &entities.Branch{
						Name:        b.Name,
						Description: optional(b.Description),
						AreaID:      area.ID,
						SubAreaID:   sub.ID,
					}); err != nil {
						return err
					}
					created++
				}
			}
		}

		logger.Info("✅ Иерархия регионов наполнена", zap.Int("records", created))
		return nil
	})
}

func optional(s string) null.String {
	return null.NewString(s, s != "")
}
