package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/0r3ntal/RigMonitor/internal/sensor"
	"github.com/0r3ntal/RigMonitor/internal/service"
	"github.com/0r3ntal/RigMonitor/internal/websocket"
)

// SensorHandler serves the dashboard API.
type SensorHandler struct {
	logger    *zap.Logger
	dashboard *service.DashboardService
	hub       *websocket.Manager
}

func NewSensorHandler(logger *zap.Logger, dashboard *service.DashboardService, hub *websocket.Manager) *SensorHandler {
	return &SensorHandler{
		logger:    logger,
		dashboard: dashboard,
		hub:       hub,
	}
}

// Health reports liveness.
// GET /api/health
func (h *SensorHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Categories returns chart metadata for every sensor category.
// GET /api/categories
func (h *SensorHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Categories())
}

// Overview returns the latest reading of every sensor in one category.
// GET /api/sensors/:category
func (h *SensorHandler) Overview(c echo.Context) error {
	cat, err := sensor.ParseCategory(c.Param("category"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	resp, err := h.dashboard.Overview(c.Request().Context(), cat)
	if err != nil {
		h.logger.Error("build sensor overview",
			zap.String("category", string(cat)),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to build overview"})
	}
	return c.JSON(http.StatusOK, resp)
}

// DetailQuery carries optional drill-down window overrides. Zero values
// mean "use the configured defaults".
type DetailQuery struct {
	Hours    int `query:"hours" validate:"omitempty,min=1,max=168"`
	Interval int `query:"interval" validate:"omitempty,min=1,max=1440"`
}

// Detail returns the full drill-down series for one sensor.
// GET /api/sensors/:category/:id
func (h *SensorHandler) Detail(c echo.Context) error {
	cat, err := sensor.ParseCategory(c.Param("category"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sensorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "sensor id must be an integer"})
	}

	var q DetailQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query parameters"})
	}
	if err := c.Validate(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	resp, err := h.dashboard.Detail(c.Request().Context(), cat, sensorID, q.Hours, q.Interval)
	if err != nil {
		if errors.Is(err, sensor.ErrInvalidCategory) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		h.logger.Error("build sensor detail",
			zap.String("category", string(cat)),
			zap.Int("sensorID", sensorID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to build detail series"})
	}
	return c.JSON(http.StatusOK, resp)
}

// Stream upgrades to a websocket and pushes snapshot frames.
// GET /api/ws
func (h *SensorHandler) Stream(c echo.Context) error {
	return h.hub.Serve(c.Response(), c.Request())
}
