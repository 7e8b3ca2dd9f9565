package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/trip-planner-go/internal/service"
	"github.com/jengzang/trip-planner-go/internal/weather"
	"github.com/jengzang/trip-planner-go/pkg/response"
)

// WeatherHandler handles HTTP requests for the destination weather
type WeatherHandler struct {
	service *service.WeatherService
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(service *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// Get handles GET /api/v1/weather
func (h *WeatherHandler) Get(c *gin.Context) {
	report, err := h.service.Report(c.Request.Context())
	if err == weather.ErrNotConfigured {
		response.Error(c, http.StatusServiceUnavailable, "Weather service not configured")
		return
	}
	if err != nil {
		response.BadGateway(c, "Failed to fetch weather")
		return
	}
	response.Success(c, report)
}
