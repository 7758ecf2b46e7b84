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

func runSubAreaRouter(g *echo.Group, repo repositories.SubAreaRepositoryInterface, v *validation.CustomValidator, responder *api.Responder, logger *zap.Logger) {
	var (
		subAreaService = services.NewSubAreaService(repo, v, logger)
		subAreaCtrl    = controllers.NewSubAreaController(subAreaService, responder, logger)
	)

	g.GET("/sub-areas", subAreaCtrl.List)
	g.GET("/sub-areas/:id", subAreaCtrl.Find)
	g.POST("/sub-areas", subAreaCtrl.Create)
	g.PUT("/sub-areas/:id", subAreaCtrl.Update)
	g.DELETE("/sub-areas/:id", subAreaCtrl.Delete)
}
