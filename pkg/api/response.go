package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"region-service/pkg/config"
	apperrors "region-service/pkg/errors"
)

// Response: конверт успешного ответа: {"success": true, "data": ..., "message": ...}
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorBody: конверт ошибки: {"success": false, "message": ...}
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RawErrorBody: ошибка без конверта: {"error": ...}
type RawErrorBody struct {
	Error string `json:"error"`
}

// Responder пишет ответы в одном соглашении на весь деплой: envelope или raw.
type Responder struct {
	format string
	logger *zap.Logger
}

func NewResponder(format string, logger *zap.Logger) *Responder {
	if format != config.ResponseFormatRaw {
		format = config.ResponseFormatEnvelope
	}
	return &Responder{format: format, logger: logger}
}

func (r *Responder) Format() string { return r.format }

// Success: для возврата объекта или списка
func (r *Responder) Success(c echo.Context, code int, data any, message string) error {
	if r.format == config.ResponseFormatRaw {
		return c.JSON(code, data)
	}
	return c.JSON(code, Response[any]{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// NoContent: 204 без тела в обоих соглашениях
func (r *Responder) NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error переводит ошибку в код и сообщение. 5xx логируются с причиной, клиент причину не видит.
func (r *Responder) Error(c echo.Context, err error) error {
	httpErr := apperrors.ToHttpError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		r.logger.Error("Ошибка обработки запроса",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Int("status", httpErr.Code),
			zap.Error(httpErr.Err),
		)
	}
	return r.write(c, httpErr.Code, httpErr.Message)
}

// HandleHTTPError: глобальный обработчик echo (404/405 роутера, паники, ошибки биндинга).
func (r *Responder) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if he, ok := err.(*echo.HTTPError); ok {
		message := http.StatusText(he.Code)
		if msg, ok := he.Message.(string); ok && msg != "" {
			message = msg
		}
		if he.Code >= http.StatusInternalServerError {
			r.logger.Error("Ошибка обработки запроса", zap.Int("status", he.Code), zap.Error(err))
		}
		if writeErr := r.write(c, he.Code, message); writeErr != nil {
			r.logger.Error("Не удалось записать ответ", zap.Error(writeErr))
		}
		return
	}

	if writeErr := r.Error(c, err); writeErr != nil {
		r.logger.Error("Не удалось записать ответ", zap.Error(writeErr))
	}
}

func (r *Responder) write(c echo.Context, code int, message string) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(code)
	}
	if r.format == config.ResponseFormatRaw {
		return c.JSON(code, RawErrorBody{Error: message})
	}
	return c.JSON(code, ErrorBody{Success: false, Message: message})
}
