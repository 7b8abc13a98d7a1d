package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/saralchem/orderdesk/internal/http/response"
	"github.com/saralchem/orderdesk/internal/repository"
	"github.com/saralchem/orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

func parseOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return 0, false
	}
	return uint(id), true
}

func parseTimeNullable(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
	}
	return &parsed, nil
}

// ListOrders lists orders with workflow filters.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	status := strings.TrimSpace(c.Query("status"))
	orderNo := strings.TrimSpace(c.Query("order_no"))
	partialOnly := c.Query("partial_only") == "true"
	var customerID uint
	if raw := strings.TrimSpace(c.Query("customer_id")); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			customerID = uint(parsed)
		}
	}
	createdFrom, err := parseTimeNullable(strings.TrimSpace(c.Query("created_from")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid created_from", err)
		return
	}
	createdTo, err := parseTimeNullable(strings.TrimSpace(c.Query("created_to")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid created_to", err)
		return
	}

	orders, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		CustomerID:  customerID,
		Status:      status,
		OrderNo:     orderNo,
		PartialOnly: partialOnly,
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list orders", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, orders, pagination)
}

// GetOrder returns one order with items, invoice and back-orders.
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.Get(orderID)
	if err != nil {
		respondServiceError(c, err, "failed to load order")
		return
	}
	response.Success(c, order)
}

// ListBackOrders lists the back-orders spawned by an order.
func (h *Handler) ListBackOrders(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	backOrders, err := h.OrderService.ListBackOrders(orderID)
	if err != nil {
		respondServiceError(c, err, "failed to list back-orders")
		return
	}
	response.Success(c, backOrders)
}

// CreateOrderRequest is the order creation payload.
type CreateOrderRequest struct {
	CustomerID uint                           `json:"customer_id" binding:"required"`
	Items      []service.CreateOrderItemInput `json:"items" binding:"required"`
}

// CreateOrder places a new order for a customer.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	order, err := h.OrderService.Create(req.CustomerID, req.Items)
	if err != nil {
		respondServiceError(c, err, "failed to create order")
		return
	}
	response.Success(c, order)
}

// ItemActionsRequest carries an item action log against a base version.
type ItemActionsRequest struct {
	Version uint                 `json:"version"`
	Actions []service.ItemAction `json:"actions"`
}

// UpdateItems applies an action log while the order is still editable.
func (h *Handler) UpdateItems(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	actor, ok := getActor(c)
	if !ok {
		return
	}
	var req ItemActionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	order, err := h.OrderService.SubmitItemActions(orderID, req.Version, req.Actions, actor)
	if err != nil {
		respondServiceError(c, err, "failed to update order items")
		return
	}
	response.Success(c, order)
}

// SendToWarehouse hands the order over to warehouse processing.
func (h *Handler) SendToWarehouse(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	actor, ok := getActor(c)
	if !ok {
		return
	}
	var req ItemActionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	result, err := h.OrderService.SendToWarehouse(orderID, req.Version, req.Actions, actor)
	if err != nil {
		respondServiceError(c, err, "failed to send order to warehouse")
		return
	}
	response.SuccessWithMsg(c, result.Message, result)
}

// WarehouseStockRequest carries the reported quantities.
type WarehouseStockRequest struct {
	Version uint                        `json:"version"`
	Items   []service.AvailabilityInput `json:"items" binding:"required"`
}

// ReportWarehouseStock records reported quantities and moves the order to
// admin review.
func (h *Handler) ReportWarehouseStock(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	actor, ok := getActor(c)
	if !ok {
		return
	}
	var req WarehouseStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	result, err := h.OrderService.ReportWarehouseStock(orderID, req.Version, req.Items, actor)
	if err != nil {
		respondServiceError(c, err, "failed to record warehouse stock")
		return
	}
	response.SuccessWithMsg(c, result.Message, result)
}

// StockDecisionRequest resolves the admin stock review.
type StockDecisionRequest struct {
	Version  uint   `json:"version"`
	Decision string `json:"decision" binding:"required"`
}

// StockDecision accepts the reported stock (splitting any shortfall into a
// back-order) or sends the order back for a recheck.
func (h *Handler) StockDecision(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	actor, ok := getActor(c)
	if !ok {
		return
	}
	var req StockDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	result, err := h.OrderService.StockDecision(orderID, req.Version, req.Decision, actor)
	if err != nil {
		respondServiceError(c, err, "failed to apply stock decision")
		return
	}
	response.SuccessWithMsg(c, result.Message, result)
}

// UploadInvoiceRequest attaches the invoice document.
type UploadInvoiceRequest struct {
	Version uint                 `json:"version"`
	Invoice service.InvoiceInput `json:"invoice" binding:"required"`
}

// UploadInvoice attaches the tax invoice and moves the order to
// verification.
func (h *Handler) UploadInvoice(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	actor, ok := getActor(c)
	if !ok {
		return
	}
	var req UploadInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	result, err := h.OrderService.UploadInvoice(orderID, req.Version, req.Invoice, actor)
	if err != nil {
		respondServiceError(c, err, "failed to upload invoice")
		return
	}
	response.SuccessWithMsg(c, result.Message, result)
}

// ReviewInvoiceRequest resolves the invoice verification step.
type ReviewInvoiceRequest struct {
	Version  uint   `json:"version"`
	Decision string `json:"decision" binding:"required"`
	Reason   string `json:"reason"`
}

// ReviewInvoice approves or rejects the uploaded invoice.
func (h *Handler) ReviewInvoice(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	actor, ok := getActor(c)
	if !ok {
		return
	}
	var req ReviewInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	result, err := h.OrderService.ReviewInvoice(orderID, req.Version, req.Decision, strings.TrimSpace(req.Reason), actor)
	if err != nil {
		respondServiceError(c, err, "failed to review invoice")
		return
	}
	response.SuccessWithMsg(c, result.Message, result)
}

// UpdateStatusRequest is the manual status override payload.
type UpdateStatusRequest struct {
	Version        uint   `json:"version"`
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
}

// UpdateStatus advances the order along the shipping tail or cancels it.
func (h *Handler) UpdateStatus(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	actor, ok := getActor(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	result, err := h.OrderService.UpdateStatus(orderID, req.Version, strings.TrimSpace(req.Status), strings.TrimSpace(req.TrackingNumber), actor)
	if err != nil {
		respondServiceError(c, err, "failed to update order status")
		return
	}
	response.SuccessWithMsg(c, result.Message, result)
}
