package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"region-service/internal/dto"
)

// HealthController: проверки живости. БД не трогают и всегда отвечают без конверта.
type HealthController struct {
	serviceName string
	now         func() time.Time
}

func NewHealthController(serviceName string) *HealthController {
	return &HealthController{serviceName: serviceName, now: time.Now}
}

func (c *HealthController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, dto.HealthDTO{
		Status:    "healthy",
		Service:   c.serviceName,
		Timestamp: c.now().UTC().Format(time.RFC3339),
	})
}

func (c *HealthController) ActuatorHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, dto.ActuatorHealthDTO{
		Status: "UP",
		Components: map[string]dto.ComponentStatusDTO{
			"db":          {Status: "UP"},
			"application": {Status: "UP"},
		},
	})
}
