package routes

import (
	"github.com/labstack/echo/v4"

	"region-service/internal/controllers"
)

func runHealthRouter(g *echo.Group, serviceName string) {
	healthCtrl := controllers.NewHealthController(serviceName)

	g.GET("/health", healthCtrl.Health)
	g.GET("/actuator/health", healthCtrl.ActuatorHealth)
}
