package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/trip-planner-go/internal/middleware"
	"github.com/jengzang/trip-planner-go/internal/models"
	"github.com/jengzang/trip-planner-go/internal/places"
	"github.com/jengzang/trip-planner-go/internal/service"
	"github.com/jengzang/trip-planner-go/pkg/response"
)

// DiscoverHandler handles HTTP requests for nearby-place discovery
type DiscoverHandler struct {
	service *service.DiscoverService
}

// NewDiscoverHandler creates a new discover handler
func NewDiscoverHandler(service *service.DiscoverService) *DiscoverHandler {
	return &DiscoverHandler{service: service}
}

type searchRequest struct {
	Lat      *float64 `json:"lat" binding:"required"`
	Lng      *float64 `json:"lng" binding:"required"`
	Radius   *float64 `json:"radius" binding:"required"`
	Category string   `json:"category"`
}

// Search handles POST /api/v1/discover
func (h *DiscoverHandler) Search(c *gin.Context) {
	userName, _ := middleware.UserName(c)

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "lat, lng and radius required")
		return
	}

	found, err := h.service.Search(c.Request.Context(), userName, *req.Lat, *req.Lng, *req.Radius, req.Category)
	switch {
	case err == service.ErrInvalidRadius:
		response.BadRequest(c, err.Error())
		return
	case err == places.ErrNotConfigured:
		response.Error(c, http.StatusServiceUnavailable, "Discover service not configured")
		return
	case err == context.Canceled:
		// A newer search for this user superseded this one
		response.Error(c, http.StatusConflict, "Search superseded by a newer request")
		return
	case err != nil:
		response.BadGateway(c, "Upstream search failed")
		return
	}

	response.Success(c, gin.H{"places": found})
}

type detailsRequest struct {
	PlaceID string `json:"placeId" binding:"required"`
}

// Details handles POST /api/v1/discover/details
func (h *DiscoverHandler) Details(c *gin.Context) {
	var req detailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "placeId required")
		return
	}

	details, err := h.service.Details(c.Request.Context(), req.PlaceID)
	if err == places.ErrNotConfigured {
		response.Error(c, http.StatusServiceUnavailable, "Discover service not configured")
		return
	}
	if err != nil {
		response.BadGateway(c, "Failed to fetch place details")
		return
	}
	response.Success(c, details)
}

type promoteRequest struct {
	Place   models.DiscoveredPlace `json:"place" binding:"required"`
	Details *models.PlaceDetails   `json:"details"`
}

// Promote handles POST /api/v1/user-locations: converts a discovered
// place into one of the caller's catalog locations.
func (h *DiscoverHandler) Promote(c *gin.Context) {
	userName, ok := middleware.UserName(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req promoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Place.Name == "" {
		response.BadRequest(c, "place required")
		return
	}

	loc, err := h.service.Promote(userName, req.Place, req.Details)
	if err != nil {
		response.InternalError(c, "Failed to save location")
		return
	}
	response.Success(c, gin.H{"location": loc})
}
