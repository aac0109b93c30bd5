package handlers

import (
	"net/http"

	"campus_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("/:userEmail", h.GetUserNotifications)
		notifications.GET("/:userEmail/unread-count", h.GetUnreadCount)
		notifications.PUT("/:id/read", h.MarkAsRead)
		notifications.PUT("/read-all/:userEmail", h.MarkAllAsRead)
		notifications.DELETE("/:id", h.DeleteNotification)
		notifications.DELETE("/clear-all/:userEmail", h.DeleteUserNotifications)
	}
}

func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	userEmail := c.Param("userEmail")

	notifications, err := h.notificationService.GetNotificationsForUser(userEmail)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userEmail := c.Param("userEmail")

	count, err := h.notificationService.UnreadCount(userEmail)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	notification, err := h.notificationService.MarkAsRead(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userEmail := c.Param("userEmail")

	notifications, err := h.notificationService.MarkAllAsRead(userEmail)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.notificationService.DeleteNotification(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

func (h *NotificationHandler) DeleteUserNotifications(c *gin.Context) {
	userEmail := c.Param("userEmail")

	if err := h.notificationService.DeleteAllForUser(userEmail); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}
