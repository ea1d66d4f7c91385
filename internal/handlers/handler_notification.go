package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
)

type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := &notificationHandler{notificationService: notificationService}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.PUT("/:notification_id/read", h.markRead)
		notifications.PUT("/read-all", h.markAllRead)
	}
}

func (h *notificationHandler) listNotifications(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications))
}

func (h *notificationHandler) markRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	notification, err := h.notificationService.MarkRead(c.Request.Context(), c.Param("notification_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NotificationEnvelope{
		Message:      "notification marked as read",
		Notification: dto.ToNotificationResponse(notification),
	})
}

func (h *notificationHandler) markAllRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.notificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "all notifications marked as read"})
}
