package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"region-service/internal/controllers"
	"region-service/internal/services"
	"region-service/pkg/api"
)

func runExportRouter(g *echo.Group, repos *Repositories, responder *api.Responder, logger *zap.Logger) {
	var (
		exportService = services.NewExportService(repos.Areas, repos.SubAreas, repos.Branches, logger)
		exportCtrl    = controllers.NewExportController(exportService, responder, logger)
	)

	g.GET("/export", exportCtrl.Export)
}
