package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
)

// GoogleOAuthHandler exchanges Google authorization codes for application
// tokens.
type GoogleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(os portssvc.GoogleOAuthSvcFacade, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{oauthService: os, userService: us, tokenService: ts}
}

func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)
	rg.POST("/google/exchange-code", h.ExchangeCode)
}

// ExchangeCode exchanges an authorization code, validates the Google ID
// token, finds or creates the user and returns an application JWT.
func (h *GoogleOAuthHandler) ExchangeCode(c *gin.Context) {
	if !h.oauthService.Enabled() {
		respondError(c, apperrors.NewNotFoundError("google login is not configured"))
		return
	}

	var req dto.GoogleExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, apperrors.NewUnauthorizedError("invalid authorization code"))
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		respondError(c, apperrors.NewUnauthorizedError("no id token in google response"))
		return
	}

	payload, err := h.oauthService.ValidateGoogleIDToken(c.Request.Context(), rawIDToken)
	if err != nil {
		respondError(c, apperrors.NewUnauthorizedError("invalid google id token"))
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		respondError(c, apperrors.NewUnauthorizedError("google account has no email"))
		return
	}

	user, err := h.userService.CreateOAuthUser(c.Request.Context(), name, email, domain.ProviderGoogle, payload.Subject)
	if err != nil {
		respondError(c, err)
		return
	}

	appToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "login successful",
		User:    dto.ToUserResponse(user),
		Token:   appToken,
	})
}
