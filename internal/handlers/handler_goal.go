package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
)

type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := &goalHandler{goalService: goalService}

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.PUT("/:goal_id", h.updateGoal)
		goals.DELETE("/:goal_id", h.deleteGoal)
	}
}

func (h *goalHandler) createGoal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.GoalEnvelope{
		Message: "goal created successfully",
		Goal:    dto.ToGoalResponse(goal),
	})
}

func (h *goalHandler) listGoals(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	goals, err := h.goalService.ListGoals(c.Request.Context(), userID, c.Query("account_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListGoalsResponse(goals))
}

func (h *goalHandler) updateGoal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), c.Param("goal_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GoalEnvelope{
		Message: "goal updated successfully",
		Goal:    dto.ToGoalResponse(goal),
	})
}

func (h *goalHandler) deleteGoal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.goalService.DeleteGoal(c.Request.Context(), c.Param("goal_id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "goal deleted successfully"})
}
