package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
	"github.com/lucasll37/myfinanceapp-backend/internal/middleware"
)

// accountHandler handles accounts and their memberships.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := &accountHandler{accountService: accountService}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deleteAccount)

		accounts.GET("/:account_id/members", h.listMembers)
		accounts.POST("/:account_id/members", h.inviteMember)
		accounts.POST("/:account_id/members/accept", h.acceptInvite)
		accounts.DELETE("/:account_id/members/:user_id", h.removeMember)
	}
}

// callerID pulls the authenticated user id or aborts with 401.
func callerID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("unauthorized"))
	}
	return userID, ok
}

func (h *accountHandler) createAccount(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.AccountEnvelope{
		Message: "account created successfully",
		Account: dto.ToAccountResponse(account, domain.RoleOwner),
	})
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	accounts, err := h.accountService.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	account, role, err := h.accountService.GetAccount(c.Request.Context(), c.Param("account_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AccountEnvelope{Account: dto.ToAccountResponse(account, role)})
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	account, role, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("account_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AccountEnvelope{
		Message: "account updated successfully",
		Account: dto.ToAccountResponse(account, role),
	})
}

func (h *accountHandler) deleteAccount(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("account_id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "account deleted successfully"})
}

func (h *accountHandler) listMembers(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	members, err := h.accountService.ListMembers(c.Request.Context(), c.Param("account_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	res := dto.ListMembersResponse{Members: make([]dto.MemberResponse, len(members))}
	for i := range members {
		res.Members[i] = dto.ToMemberResponse(&members[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *accountHandler) inviteMember(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	member, err := h.accountService.InviteMember(c.Request.Context(), c.Param("account_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MemberEnvelope{
		Message: "invitation sent successfully",
		Member:  dto.ToMemberResponse(member),
	})
}

func (h *accountHandler) acceptInvite(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	member, err := h.accountService.AcceptInvite(c.Request.Context(), c.Param("account_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MemberEnvelope{
		Message: "invitation accepted",
		Member:  dto.ToMemberResponse(member),
	})
}

func (h *accountHandler) removeMember(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.accountService.RemoveMember(c.Request.Context(), c.Param("account_id"), c.Param("user_id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "member removed successfully"})
}
