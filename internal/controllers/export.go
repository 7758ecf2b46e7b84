package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"region-service/internal/services"
	"region-service/pkg/api"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	exportService services.ExportServiceInterface
	responder     *api.Responder
	logger        *zap.Logger
}

func NewExportController(exportService services.ExportServiceInterface, responder *api.Responder, logger *zap.Logger) *ExportController {
	return &ExportController{exportService: exportService, responder: responder, logger: logger}
}

func (c *ExportController) Export(ctx echo.Context) error {
	f, err := c.exportService.BuildWorkbook(ctx.Request().Context())
	if err != nil {
		return c.responder.Error(ctx, err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.responder.Error(ctx, err)
	}

	fileName := fmt.Sprintf("regions_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
