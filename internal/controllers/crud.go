package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"region-service/internal/services"
	"region-service/pkg/api"
	apperrors "region-service/pkg/errors"
	"region-service/pkg/utils"
)

// CrudController: пять обработчиков одного уровня иерархии.
type CrudController[In any, Out any] struct {
	service    services.CrudServiceInterface[In, Out]
	responder  *api.Responder
	logger     *zap.Logger
	label      string
	filterKeys []string
}

func newCrudController[In any, Out any](
	service services.CrudServiceInterface[In, Out],
	responder *api.Responder,
	logger *zap.Logger,
	label string,
	filterKeys ...string,
) *CrudController[In, Out] {
	return &CrudController[In, Out]{
		service:    service,
		responder:  responder,
		logger:     logger,
		label:      label,
		filterKeys: filterKeys,
	}
}

func (c *CrudController[In, Out]) List(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams(), c.filterKeys...)

	res, err := c.service.List(ctx.Request().Context(), filter)
	if err != nil {
		return c.responder.Error(ctx, err)
	}
	return c.responder.Success(ctx, http.StatusOK, res, "")
}

func (c *CrudController[In, Out]) Find(ctx echo.Context) error {
	res, err := c.service.Find(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.responder.Error(ctx, err)
	}
	return c.responder.Success(ctx, http.StatusOK, res, "")
}

func (c *CrudController[In, Out]) Create(ctx echo.Context) error {
	var input In
	if err := ctx.Bind(&input); err != nil {
		c.logger.Warn("Create: не удалось разобрать тело запроса", zap.String("entity", c.label), zap.Error(err))
		return c.responder.Error(ctx, apperrors.NewValidationError("body", "Invalid request body"))
	}

	res, err := c.service.Create(ctx.Request().Context(), input)
	if err != nil {
		return c.responder.Error(ctx, err)
	}
	return c.responder.Success(ctx, http.StatusCreated, res, c.label+" created successfully")
}

func (c *CrudController[In, Out]) Update(ctx echo.Context) error {
	var input In
	if err := ctx.Bind(&input); err != nil {
		c.logger.Warn("Update: не удалось разобрать тело запроса", zap.String("entity", c.label), zap.Error(err))
		return c.responder.Error(ctx, apperrors.NewValidationError("body", "Invalid request body"))
	}

	res, err := c.service.Update(ctx.Request().Context(), ctx.Param("id"), input)
	if err != nil {
		return c.responder.Error(ctx, err)
	}
	return c.responder.Success(ctx, http.StatusOK, res, c.label+" updated successfully")
}

func (c *CrudController[In, Out]) Delete(ctx echo.Context) error {
	if err := c.service.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return c.responder.Error(ctx, err)
	}
	return c.responder.NoContent(ctx)
}
