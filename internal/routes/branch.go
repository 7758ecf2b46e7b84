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

func runBranchRouter(g *echo.Group, repo repositories.BranchRepositoryInterface, v *validation.CustomValidator, responder *api.Responder, logger *zap.Logger) {
	var (
		branchService = services.NewBranchService(repo, v, logger)
		branchCtrl    = controllers.NewBranchController(branchService, responder, logger)
	)

	g.GET("/branches", branchCtrl.List)
	g.GET("/branches/:id", branchCtrl.Find)
	g.POST("/branches", branchCtrl.Create)
	g.PUT("/branches/:id", branchCtrl.Update)
	g.DELETE("/branches/:id", branchCtrl.Delete)
}
