package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/trip-planner-go/internal/middleware"
	"github.com/jengzang/trip-planner-go/internal/models"
	"github.com/jengzang/trip-planner-go/internal/service"
	"github.com/jengzang/trip-planner-go/pkg/response"
)

// PlanHandler handles HTTP requests for day plans
type PlanHandler struct {
	service *service.PlanService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(service *service.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// Get handles GET /api/v1/plans
func (h *PlanHandler) Get(c *gin.Context) {
	userName, _ := middleware.UserName(c)

	days, err := h.service.GetDays(userName)
	if err != nil {
		response.InternalError(c, "Failed to get plans")
		return
	}
	response.Success(c, days)
}

type savePlansRequest struct {
	Plans []models.DayPlan `json:"plans" binding:"required"`
}

// Save handles PUT /api/v1/plans. The write is coalesced; the
// response confirms acceptance, not durability.
func (h *PlanHandler) Save(c *gin.Context) {
	userName, _ := middleware.UserName(c)

	var req savePlansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "plans required")
		return
	}

	days, err := h.service.SaveDays(userName, req.Plans)
	if err != nil {
		response.InternalError(c, "Failed to save plans")
		return
	}
	response.Success(c, days)
}

// Reset handles POST /api/v1/plans/reset
func (h *PlanHandler) Reset(c *gin.Context) {
	userName, _ := middleware.UserName(c)

	days, err := h.service.Reset(userName)
	if err != nil {
		response.InternalError(c, "Failed to reset plans")
		return
	}
	response.Success(c, days)
}

type moveRequest struct {
	Source string `json:"source" binding:"required"`
	Target string `json:"target" binding:"required"`
}

// Move handles POST /api/v1/plans/move. Source and target are drag
// references: "unassigned::<name>", "<dayId>::<name>", or a bare
// "<dayId>". Unresolvable moves leave the plan unchanged.
func (h *PlanHandler) Move(c *gin.Context) {
	userName, _ := middleware.UserName(c)

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "source and target required")
		return
	}

	days, activeDayID, moved, err := h.service.Move(userName, req.Source, req.Target)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"plans":       days,
		"activeDayId": activeDayID,
		"moved":       moved,
	})
}

type removeRequest struct {
	DayID string `json:"dayId" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// Remove handles POST /api/v1/plans/remove
func (h *PlanHandler) Remove(c *gin.Context) {
	userName, _ := middleware.UserName(c)

	var req removeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dayId and name required")
		return
	}

	days, err := h.service.Remove(userName, req.DayID, req.Name)
	if err != nil {
		response.InternalError(c, "Failed to remove location")
		return
	}
	response.Success(c, days)
}

// Suggestions handles GET /api/v1/plans/suggestions?day=<dayId>
func (h *PlanHandler) Suggestions(c *gin.Context) {
	userName, _ := middleware.UserName(c)

	dayID := c.Query("day")
	if dayID == "" {
		response.BadRequest(c, "day query parameter required")
		return
	}

	suggestions, err := h.service.Suggest(userName, dayID)
	if err != nil {
		response.InternalError(c, "Failed to compute suggestions")
		return
	}
	response.Success(c, suggestions)
}

// Unassigned handles GET /api/v1/plans/unassigned
func (h *PlanHandler) Unassigned(c *gin.Context) {
	userName, _ := middleware.UserName(c)

	groups, err := h.service.Unassigned(userName)
	if err != nil {
		response.InternalError(c, "Failed to list unassigned locations")
		return
	}
	response.Success(c, groups)
}
