package handlers

import (
	"errors"
	"net/http"

	notificationRepo "easyislanders/database/repository/notification"
	"easyislanders/services/notification"
	"easyislanders/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the notification log over HTTP.
type NotificationHandler struct {
	Svc    notification.NotificationService
	Logger *zap.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

// ListNotificationsHandler returns the caller's notifications, newest first.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	userID := requestUserID(c)
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing user id", "the X-User-ID header is required")
		return
	}

	notifications, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("notification list failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "could not load notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkReadHandler flips one notification's read flag.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Svc.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not found", "no notification with id "+id)
			return
		}
		h.Logger.Error("notification mark-read failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "could not update notification")
		return
	}

	c.JSON(http.StatusOK, gin.H{"read": true})
}
