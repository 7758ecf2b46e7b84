package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	c := NewHealthController("region-service")
	c.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/region/health", nil), rec)

	require.NoError(t, c.Health(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"region-service","timestamp":"2024-05-01T12:00:00Z"}`, rec.Body.String())
}

func TestActuatorHealth(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/region/actuator/health", nil), rec)

	require.NoError(t, NewHealthController("region-service").ActuatorHealth(ctx))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UP", body["status"])
	components := body["components"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"status": "UP"}, components["db"])
	assert.Equal(t, map[string]interface{}{"status": "UP"}, components["application"])
}
