package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/trip-planner-go/internal/middleware"
	"github.com/jengzang/trip-planner-go/internal/service"
	"github.com/jengzang/trip-planner-go/pkg/response"
)

// LocationHandler handles HTTP requests for the location catalog
type LocationHandler struct {
	service *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service *service.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// List handles GET /api/v1/locations. Anonymous callers get the
// curated catalog; authenticated callers get their added locations
// merged in.
func (h *LocationHandler) List(c *gin.Context) {
	userName, _ := middleware.UserName(c)

	locations, err := h.service.Catalog(userName)
	if err != nil {
		response.InternalError(c, "Failed to list locations")
		return
	}
	response.Success(c, locations)
}

type deleteUserLocationRequest struct {
	Name string `json:"name" binding:"required"`
}

// DeleteUserLocation handles DELETE /api/v1/user-locations
func (h *LocationHandler) DeleteUserLocation(c *gin.Context) {
	userName, ok := middleware.UserName(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req deleteUserLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name required")
		return
	}

	if err := h.service.RemoveUserLocation(userName, req.Name); err != nil {
		response.InternalError(c, "Failed to delete location")
		return
	}
	response.Success(c, gin.H{"deleted": req.Name})
}
