package admin

import (
	"strconv"

	"github.com/saralchem/orderdesk/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview returns order counts per status plus recent
// activity for the landing page.
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	recent, _ := strconv.Atoi(c.DefaultQuery("recent", "10"))
	if recent < 1 || recent > 50 {
		recent = 10
	}
	counts, orders, err := h.OrderService.Overview(recent)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load dashboard overview", err)
		return
	}
	response.Success(c, gin.H{
		"status_counts": counts,
		"recent_orders": orders,
	})
}
