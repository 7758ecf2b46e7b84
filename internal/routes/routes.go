package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"region-service/internal/repositories"
	"region-service/pkg/api"
	"region-service/pkg/config"
	"region-service/pkg/validation"
)

// Repositories: все репозитории сервиса поверх одного пула.
type Repositories struct {
	Areas    repositories.AreaRepositoryInterface
	SubAreas repositories.SubAreaRepositoryInterface
	Branches repositories.BranchRepositoryInterface
}

func NewRepositories(db repositories.Querier, logger *zap.Logger) *Repositories {
	return &Repositories{
		Areas:    repositories.NewAreaRepository(db, logger),
		SubAreas: repositories.NewSubAreaRepository(db, logger),
		Branches: repositories.NewBranchRepository(db, logger),
	}
}

// InitRouter вешает все маршруты на /api/<service>.
func InitRouter(e *echo.Echo, repos *Repositories, responder *api.Responder, cfg *config.Config, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов", zap.String("base_path", cfg.Service.BasePath))

	v := validation.New()
	base := e.Group(cfg.Service.BasePath)

	runHealthRouter(base, cfg.Service.Name)
	runAreaRouter(base, repos.Areas, v, responder, logger)
	runSubAreaRouter(base, repos.SubAreas, v, responder, logger)
	runBranchRouter(base, repos.Branches, v, responder, logger)
	runExportRouter(base, repos, responder, logger)

	logger.Info("InitRouter: Все маршруты успешно созданы")
}
