package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/trip-planner-go/internal/middleware"
	"github.com/jengzang/trip-planner-go/internal/service"
	"github.com/jengzang/trip-planner-go/pkg/response"
)

// RouteHandler handles HTTP requests for day routes
type RouteHandler struct {
	service *service.RouteService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(service *service.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// Get handles GET /api/v1/plans/:dayId/route
func (h *RouteHandler) Get(c *gin.Context) {
	userName, _ := middleware.UserName(c)

	dayID := c.Param("dayId")
	info, err := h.service.RouteForDay(c.Request.Context(), userName, dayID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, info)
}
