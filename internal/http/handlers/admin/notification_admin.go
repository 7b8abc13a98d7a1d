package admin

import (
	"strconv"
	"strings"

	"github.com/saralchem/orderdesk/internal/http/response"
	"github.com/saralchem/orderdesk/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListNotifications returns the activity feed, newest first.
func (h *Handler) ListNotifications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var orderID uint
	if raw := strings.TrimSpace(c.Query("order_id")); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			orderID = uint(parsed)
		}
	}

	notifications, total, err := h.NotificationService.List(repository.NotificationListFilter{
		Page:       page,
		PageSize:   pageSize,
		Kind:       strings.TrimSpace(c.Query("kind")),
		OrderID:    orderID,
		UnreadOnly: c.Query("unread_only") == "true",
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list notifications", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, notifications, pagination)
}

// MarkNotificationRead marks one feed entry as read.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := parseResourceID(c)
	if !ok {
		return
	}
	if err := h.NotificationService.MarkRead(id); err != nil {
		respondError(c, response.CodeInternal, "failed to mark notification read", err)
		return
	}
	response.SuccessWithMsg(c, "notification marked read", nil)
}
