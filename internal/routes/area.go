package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"region-service/internal/controllers"
	"region-service/internal/repositories"
	"region-service/internal/services"
	"region-service/pkg/api"
	"region-service/pkg/validation"
)

func runAreaRouter(g *echo.Group, repo repositories.AreaRepositoryInterface, v *validation.CustomValidator, responder *api.Responder, logger *zap.Logger) {
	var (
		areaService = services.NewAreaService(repo, v, logger)
		areaCtrl    = controllers.NewAreaController(areaService, responder, logger)
	)

	g.GET("/areas", areaCtrl.List)
	g.GET("/areas/:id", areaCtrl.Find)
	g.POST("/areas", areaCtrl.Create)
	g.PUT("/areas/:id", areaCtrl.Update)
	g.DELETE("/areas/:id", areaCtrl.Delete)
}
