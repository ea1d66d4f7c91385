package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
)

type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := &investmentHandler{investmentService: investmentService}

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
		investments.PUT("/:investment_id", h.updateInvestment)
		investments.DELETE("/:investment_id", h.deleteInvestment)
	}
}

func (h *investmentHandler) createInvestment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	asset, err := h.investmentService.CreateInvestment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.InvestmentEnvelope{
		Message:    "investment created successfully",
		Investment: dto.ToInvestmentResponse(asset),
	})
}

func (h *investmentHandler) listInvestments(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	assets, err := h.investmentService.ListInvestments(c.Request.Context(), userID, c.Query("account_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvestmentsResponse(assets))
}

func (h *investmentHandler) updateInvestment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	asset, err := h.investmentService.UpdateInvestment(c.Request.Context(), c.Param("investment_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.InvestmentEnvelope{
		Message:    "investment updated successfully",
		Investment: dto.ToInvestmentResponse(asset),
	})
}

func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.investmentService.DeleteInvestment(c.Request.Context(), c.Param("investment_id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "investment deleted successfully"})
}
