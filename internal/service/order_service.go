package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/saralchem/orderdesk/internal/constants"
	"github.com/saralchem/orderdesk/internal/logger"
	"github.com/saralchem/orderdesk/internal/models"
	"github.com/saralchem/orderdesk/internal/queue"
	"github.com/saralchem/orderdesk/internal/repository"

	"gorm.io/gorm"
)

// Actor identifies the operator triggering a workflow step.
type Actor struct {
	Name  string
	Role  string
	Super bool
}

// CreateOrderItemInput is one requested line on a new order.
type CreateOrderItemInput struct {
	ProductID uint   `json:"product_id"`
	Variant   string `json:"variant"`
	Quantity  int    `json:"quantity"`
}

// AvailabilityInput is one reported warehouse quantity.
type AvailabilityInput struct {
	ProductID         uint   `json:"product_id"`
	Variant           string `json:"variant"`
	AvailableQuantity int    `json:"available_quantity"`
}

// InvoiceInput mirrors the uploaded tax invoice document.
type InvoiceInput struct {
	InvoiceNumber      string                     `json:"invoice_number"`
	Date               time.Time                  `json:"date"`
	PartyName          string                     `json:"party_name"`
	PartyAddress       string                     `json:"party_address"`
	Transport          string                     `json:"transport"`
	GSTINBuyer         string                     `json:"gstin_buyer"`
	IRN                string                     `json:"irn"`
	AckNo              string                     `json:"ack_no"`
	AckDate            *time.Time                 `json:"ack_date,omitempty"`
	Items              models.InvoiceLineItemList `json:"items"`
	TotalAmount        models.Money               `json:"total_amount"`
	RoundOff           models.Money               `json:"round_off"`
	TotalQuantity      int                        `json:"total_quantity"`
	GrandTotal         models.Money               `json:"grand_total"`
	TaxBreakdown       models.TaxBreakdown        `json:"tax_breakdown"`
	TotalTaxableAmount models.Money               `json:"total_taxable_amount"`
	TotalTax           models.Money               `json:"total_tax"`
}

// WorkflowResult is the outcome of a workflow step.
type WorkflowResult struct {
	Message     string        `json:"message"`
	Order       *models.Order `json:"order"`
	BackOrderID *uint         `json:"backorder_id,omitempty"`
	BackOrderNo string        `json:"backorder_no,omitempty"`
}

// OrderService drives the fulfillment workflow: status transitions, item
// mutation, shortfall splitting and invoice review.
type OrderService struct {
	db           *gorm.DB
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	queueClient  *queue.Client
}

// NewOrderService creates an order service.
func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		db:           db,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		queueClient:  queueClient,
	}
}

// Get fetches one order with its relations.
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrOrderNotFound, id)
	}
	return order, nil
}

// List lists orders for the admin dashboard.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// ListBackOrders lists the back-orders spawned by an order.
func (s *OrderService) ListBackOrders(parentID uint) ([]models.Order, error) {
	if _, err := s.Get(parentID); err != nil {
		return nil, err
	}
	return s.orderRepo.ListBackOrders(parentID)
}

// Create places a new order in "Order Placed" on behalf of a customer.
func (s *OrderService) Create(customerID uint, items []CreateOrderItemInput) (*models.Order, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrCustomerNotFound, customerID)
	}
	if len(items) == 0 {
		return nil, newValidationError("items", "an order needs at least one item")
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, input := range items {
		if input.Quantity <= 0 {
			return nil, newValidationError("quantity", "must be greater than zero")
		}
		product, err := s.lookupProduct(input.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.HasVariant(input.Variant) {
			return nil, newValidationError("variant", fmt.Sprintf("'%s' is not an option for product '%s'", input.Variant, product.Name))
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Variant:   input.Variant,
			Name:      product.Name,
			Unit:      product.Unit,
			Quantity:  input.Quantity,
		})
	}

	order := &models.Order{
		OrderNo:    generateOrderNo(),
		CustomerID: customer.ID,
		Status:     constants.OrderStatusPlaced,
		Version:    1,
	}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, orderItems)
	}); err != nil {
		return nil, err
	}
	return s.Get(order.ID)
}

// SubmitItemActions applies an action log to an order that is still
// editable, replacing its item list with the reconciled result.
func (s *OrderService) SubmitItemActions(orderID uint, version uint, actions []ItemAction, actor Actor) (*models.Order, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !CanEditItems(order.Status) {
		return nil, newValidationError("status", fmt.Sprintf("items can only be edited while the order is in '%s', current status is '%s'", constants.OrderStatusPlaced, order.Status))
	}
	next, err := s.reconcileAgainstCatalog(order, actions)
	if err != nil {
		return nil, err
	}

	expected := expectedVersion(order, version)
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.orderRepo.WithTx(tx)
		if err := txRepo.ReplaceItems(order.ID, next); err != nil {
			return err
		}
		return applyVersioned(txRepo, order.ID, expected, map[string]interface{}{})
	}); err != nil {
		return nil, err
	}
	return s.Get(order.ID)
}

// SendToWarehouse applies any pending item actions and moves the order from
// "Order Placed" to "Warehouse Processing".
func (s *OrderService) SendToWarehouse(orderID uint, version uint, actions []ItemAction, actor Actor) (*WorkflowResult, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(order.Status, constants.OrderStatusWarehouseProcessing, actor.Role, actor.Super); err != nil {
		return nil, err
	}
	next := order.Items
	if len(actions) > 0 {
		next, err = s.reconcileAgainstCatalog(order, actions)
		if err != nil {
			return nil, err
		}
	}
	if len(next) == 0 {
		return nil, newValidationError("items", "cannot send an empty order to the warehouse")
	}

	from := order.Status
	expected := expectedVersion(order, version)
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.orderRepo.WithTx(tx)
		if len(actions) > 0 {
			if err := txRepo.ReplaceItems(order.ID, next); err != nil {
				return err
			}
		}
		return applyVersioned(txRepo, order.ID, expected, map[string]interface{}{
			"status":        constants.OrderStatusWarehouseProcessing,
			"updated_items": nil,
		})
	}); err != nil {
		return nil, err
	}

	s.notifyStatusChanged(order, from, constants.OrderStatusWarehouseProcessing, actor)
	refreshed, err := s.Get(order.ID)
	if err != nil {
		return nil, err
	}
	return &WorkflowResult{
		Message: fmt.Sprintf("Order %s sent to warehouse", order.OrderNo),
		Order:   refreshed,
	}, nil
}

// ReportWarehouseStock records reported quantities and moves the order from
// "Warehouse Processing" to "Admin Stock Review". Items without a reported
// value default to their previous report, else zero.
func (s *OrderService) ReportWarehouseStock(orderID uint, version uint, availability []AvailabilityInput, actor Actor) (*WorkflowResult, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(order.Status, constants.OrderStatusAdminStockReview, actor.Role, actor.Super); err != nil {
		return nil, err
	}

	ledger := NewItemLedger(order.Items)
	for _, input := range availability {
		if err := ledger.SetAvailable(input.ProductID, input.Variant, input.AvailableQuantity); err != nil {
			return nil, err
		}
	}
	snapshot := ledger.Snapshot()

	from := order.Status
	expected := expectedVersion(order, version)
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.orderRepo.WithTx(tx)
		for _, entry := range snapshot {
			if err := txRepo.UpdateItemAvailability(order.ID, entry.ProductID, entry.Variant, entry.AvailableQuantity); err != nil {
				return err
			}
		}
		return applyVersioned(txRepo, order.ID, expected, map[string]interface{}{
			"status":        constants.OrderStatusAdminStockReview,
			"updated_items": snapshot,
		})
	}); err != nil {
		return nil, err
	}

	s.notifyStatusChanged(order, from, constants.OrderStatusAdminStockReview, actor)
	refreshed, err := s.Get(order.ID)
	if err != nil {
		return nil, err
	}
	return &WorkflowResult{
		Message: fmt.Sprintf("Stock report recorded for order %s", order.OrderNo),
		Order:   refreshed,
	}, nil
}

// StockDecision resolves the admin review: "recheck" bounces the order back
// to the warehouse, "accept" confirms the reported quantities, splits any
// shortfall into a back-order and advances to "Awaiting Invoice".
func (s *OrderService) StockDecision(orderID uint, version uint, decision string, actor Actor) (*WorkflowResult, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	switch decision {
	case constants.StockDecisionRecheck:
		// The reported quantities are discarded; the warehouse reports fresh.
		extra := map[string]interface{}{"updated_items": nil}
		return s.transition(order, version, constants.OrderStatusWarehouseProcessing, extra, actor,
			fmt.Sprintf("Order %s returned to warehouse for re-verification", order.OrderNo))
	case constants.StockDecisionAccept:
		return s.acceptStock(order, version, actor)
	default:
		return nil, newValidationError("decision", "must be 'accept' or 'recheck'")
	}
}

// acceptStock runs the shortfall split. The transition is validated before
// any item mutation; parent and back-order are persisted atomically.
func (s *OrderService) acceptStock(order *models.Order, version uint, actor Actor) (*WorkflowResult, error) {
	if err := ValidateTransition(order.Status, constants.OrderStatusAwaitingInvoice, actor.Role, actor.Super); err != nil {
		return nil, err
	}

	snapshot := order.UpdatedItems
	if len(snapshot) == 0 {
		snapshot = NewItemLedger(order.Items).Snapshot()
	}
	confirmed, removed, shortfall := splitShortfall(order.Items, snapshot)

	from := order.Status
	expected := expectedVersion(order, version)
	var backOrder *models.Order
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.orderRepo.WithTx(tx)

		if len(shortfall) > 0 {
			existing, err := txRepo.ListBackOrders(order.ID)
			if err != nil {
				return err
			}
			parentID := order.ID
			backOrder = &models.Order{
				OrderNo:         buildBackOrderNo(order.OrderNo, len(existing)+1),
				CustomerID:      order.CustomerID,
				Status:          constants.OrderStatusPlaced,
				IsPartialOrder:  true,
				OriginalOrderID: &parentID,
				Version:         1,
			}
			if err := txRepo.Create(backOrder, shortfall); err != nil {
				return err
			}
		}

		if err := txRepo.ReplaceItems(order.ID, confirmed); err != nil {
			return err
		}
		return applyVersioned(txRepo, order.ID, expected, map[string]interface{}{
			"status":        constants.OrderStatusAwaitingInvoice,
			"updated_items": nil,
			"removed_items": removed,
		})
	}); err != nil {
		return nil, err
	}

	s.notifyStatusChanged(order, from, constants.OrderStatusAwaitingInvoice, actor)
	message := fmt.Sprintf("Order %s confirmed and moved to %s", order.OrderNo, constants.OrderStatusAwaitingInvoice)
	result := &WorkflowResult{}
	if backOrder != nil {
		s.notifyBackOrderCreated(order, backOrder, actor)
		result.BackOrderID = &backOrder.ID
		result.BackOrderNo = backOrder.OrderNo
		message = fmt.Sprintf("%s; back-order %s created for unavailable quantities", message, backOrder.OrderNo)
	}

	refreshed, err := s.Get(order.ID)
	if err != nil {
		return nil, err
	}
	result.Message = message
	result.Order = refreshed
	return result, nil
}

// UploadInvoice attaches the invoice document and moves the order to
// "Invoice Verification". Re-upload after a rejection replaces the document.
func (s *OrderService) UploadInvoice(orderID uint, version uint, input InvoiceInput, actor Actor) (*WorkflowResult, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(order.Status, constants.OrderStatusInvoiceVerification, actor.Role, actor.Super); err != nil {
		return nil, err
	}
	if input.InvoiceNumber == "" {
		return nil, newValidationError("invoice_number", "is required")
	}
	if input.PartyName == "" {
		return nil, newValidationError("party_name", "is required")
	}
	if len(input.Items) == 0 {
		return nil, newValidationError("items", "an invoice needs at least one line")
	}

	invoice := &models.Invoice{
		OrderID:            order.ID,
		InvoiceNumber:      input.InvoiceNumber,
		Date:               input.Date,
		PartyName:          input.PartyName,
		PartyAddress:       input.PartyAddress,
		Transport:          input.Transport,
		GSTINBuyer:         input.GSTINBuyer,
		IRN:                input.IRN,
		AckNo:              input.AckNo,
		AckDate:            input.AckDate,
		Items:              input.Items,
		TotalAmount:        input.TotalAmount,
		RoundOff:           input.RoundOff,
		TotalQuantity:      input.TotalQuantity,
		GrandTotal:         input.GrandTotal,
		TaxBreakdown:       input.TaxBreakdown,
		TotalTaxableAmount: input.TotalTaxableAmount,
		TotalTax:           input.TotalTax,
	}

	from := order.Status
	expected := expectedVersion(order, version)
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.orderRepo.WithTx(tx)
		if err := txRepo.SaveInvoice(invoice); err != nil {
			return err
		}
		return applyVersioned(txRepo, order.ID, expected, map[string]interface{}{
			"status": constants.OrderStatusInvoiceVerification,
		})
	}); err != nil {
		return nil, err
	}

	s.notifyStatusChanged(order, from, constants.OrderStatusInvoiceVerification, actor)
	refreshed, err := s.Get(order.ID)
	if err != nil {
		return nil, err
	}
	return &WorkflowResult{
		Message: fmt.Sprintf("Invoice %s uploaded for order %s", input.InvoiceNumber, order.OrderNo),
		Order:   refreshed,
	}, nil
}

// ReviewInvoice resolves the verification step: approve moves the order to
// "Invoice Uploaded" and clears the rejection reason; reject reverts to
// "Awaiting Invoice" with the supplied reason (empty string when none).
func (s *OrderService) ReviewInvoice(orderID uint, version uint, decision, reason string, actor Actor) (*WorkflowResult, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order.Invoice == nil {
		return nil, fmt.Errorf("%w: order %s", ErrInvoiceMissing, order.OrderNo)
	}

	var result *WorkflowResult
	switch decision {
	case constants.InvoiceDecisionApprove:
		result, err = s.transition(order, version, constants.OrderStatusInvoiceUploaded, map[string]interface{}{
			"invoice_rejected_reason": "",
		}, actor, fmt.Sprintf("Invoice approved for order %s", order.OrderNo))
	case constants.InvoiceDecisionReject:
		result, err = s.transition(order, version, constants.OrderStatusAwaitingInvoice, map[string]interface{}{
			"invoice_rejected_reason": reason,
		}, actor, fmt.Sprintf("Invoice rejected for order %s", order.OrderNo))
	default:
		return nil, newValidationError("decision", "must be 'approve' or 'reject'")
	}
	if err != nil {
		return nil, err
	}

	if n := len(result.Order.BackOrders); n > 0 {
		last := result.Order.BackOrders[n-1]
		result.BackOrderID = &last.ID
		result.BackOrderNo = last.OrderNo
	}
	return result, nil
}

// UpdateStatus is the manual override path over the shipping tail, plus the
// Cancelled escape hatch.
func (s *OrderService) UpdateStatus(orderID uint, version uint, target, trackingNumber string, actor Actor) (*WorkflowResult, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	var extra map[string]interface{}
	if trackingNumber != "" {
		extra = map[string]interface{}{"tracking_number": trackingNumber}
	}
	return s.transition(order, version, target, extra, actor,
		fmt.Sprintf("Order %s moved to %s", order.OrderNo, target))
}

// transition validates and persists a plain status change.
func (s *OrderService) transition(order *models.Order, version uint, target string, extra map[string]interface{}, actor Actor, message string) (*WorkflowResult, error) {
	if err := ValidateTransition(order.Status, target, actor.Role, actor.Super); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": target}
	for k, v := range extra {
		updates[k] = v
	}

	from := order.Status
	expected := expectedVersion(order, version)
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return applyVersioned(s.orderRepo.WithTx(tx), order.ID, expected, updates)
	}); err != nil {
		return nil, err
	}

	s.notifyStatusChanged(order, from, target, actor)
	refreshed, err := s.Get(order.ID)
	if err != nil {
		return nil, err
	}
	return &WorkflowResult{Message: message, Order: refreshed}, nil
}

// Overview returns order counts per status plus the latest activity.
func (s *OrderService) Overview(recent int) (map[string]int64, []models.Order, error) {
	counts, err := s.orderRepo.CountByStatus()
	if err != nil {
		return nil, nil, err
	}
	orders, err := s.orderRepo.ListRecent(recent)
	if err != nil {
		return nil, nil, err
	}
	return counts, orders, nil
}

// reconcileAgainstCatalog validates an action log against the product
// catalog and returns the reconciled item list.
func (s *OrderService) reconcileAgainstCatalog(order *models.Order, actions []ItemAction) ([]models.OrderItem, error) {
	if err := ValidateActions(actions); err != nil {
		return nil, err
	}
	for i := range actions {
		action := &actions[i]
		switch action.Type {
		case constants.ItemActionAdd:
			product, err := s.lookupProduct(action.ProductID)
			if err != nil {
				return nil, err
			}
			if !product.HasVariant(action.Variant) {
				return nil, newValidationError("variant", fmt.Sprintf("'%s' is not an option for product '%s'", action.Variant, product.Name))
			}
			if action.Name == "" {
				action.Name = product.Name
			}
			if action.Unit == "" {
				action.Unit = product.Unit
			}
		case constants.ItemActionReplace:
			if action.NewVariant == "" {
				continue
			}
			product, err := s.lookupProduct(action.ProductID)
			if err != nil {
				return nil, err
			}
			if !product.HasVariant(action.NewVariant) {
				return nil, newValidationError("new_variant", fmt.Sprintf("'%s' is not an option for product '%s'", action.NewVariant, product.Name))
			}
		}
	}
	return ReconcileItems(order.Items, actions), nil
}

func (s *OrderService) lookupProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: product catalog lookup: %v", ErrExternalService, err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	return product, nil
}

func (s *OrderService) notifyStatusChanged(order *models.Order, from, to string, actor Actor) {
	if s.queueClient == nil {
		return
	}
	err := s.queueClient.EnqueueOrderStatusChanged(queue.OrderStatusChangedPayload{
		OrderID:    order.ID,
		OrderNo:    order.OrderNo,
		FromStatus: from,
		ToStatus:   to,
		Actor:      actor.Name,
	})
	if err != nil {
		logger.Warnw("order_status_notify_enqueue_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"from", from,
			"to", to,
			"error", err,
		)
	}
}

func (s *OrderService) notifyBackOrderCreated(parent, backOrder *models.Order, actor Actor) {
	if s.queueClient == nil {
		return
	}
	err := s.queueClient.EnqueueBackOrderCreated(queue.BackOrderCreatedPayload{
		ParentOrderID: parent.ID,
		ParentOrderNo: parent.OrderNo,
		BackOrderID:   backOrder.ID,
		BackOrderNo:   backOrder.OrderNo,
		Actor:         actor.Name,
	})
	if err != nil {
		logger.Warnw("backorder_notify_enqueue_failed",
			"parent_order_id", parent.ID,
			"backorder_id", backOrder.ID,
			"error", err,
		)
	}
}

// splitShortfall partitions the review snapshot into the parent's confirmed
// items, the audit list of items confirmed at zero, and the back-order's
// shortfall items. A snapshot with every item fully available yields the
// original quantities and no shortfall.
func splitShortfall(items []models.OrderItem, snapshot models.ReviewItemList) (confirmed []models.OrderItem, removed models.ReviewItemList, shortfall []models.OrderItem) {
	reported := make(map[itemKey]models.ReviewItem, len(snapshot))
	for _, entry := range snapshot {
		reported[itemKey{ProductID: entry.ProductID, Variant: entry.Variant}] = entry
	}

	anyShort := false
	for _, entry := range snapshot {
		if entry.AvailableQuantity < entry.Quantity {
			anyShort = true
			break
		}
	}

	for _, item := range items {
		key := itemKey{ProductID: item.ProductID, Variant: item.Variant}
		entry, ok := reported[key]
		if !ok {
			entry = models.ReviewItem{
				ProductID: item.ProductID,
				Variant:   item.Variant,
				Name:      item.Name,
				Quantity:  item.Quantity,
			}
		}

		confirmedQty := item.Quantity
		if anyShort {
			if entry.AvailableQuantity < confirmedQty {
				confirmedQty = entry.AvailableQuantity
			}
		}
		if short := item.Quantity - entry.AvailableQuantity; short > 0 {
			shortfall = append(shortfall, models.OrderItem{
				ProductID: item.ProductID,
				Variant:   item.Variant,
				Name:      item.Name,
				Unit:      item.Unit,
				Quantity:  short,
			})
		}

		if confirmedQty > 0 {
			kept := item
			kept.ID = 0
			kept.Quantity = confirmedQty
			available := entry.AvailableQuantity
			kept.AvailableQuantity = &available
			confirmed = append(confirmed, kept)
		} else {
			removed = append(removed, models.ReviewItem{
				ProductID:         item.ProductID,
				Variant:           item.Variant,
				Name:              item.Name,
				Quantity:          item.Quantity,
				AvailableQuantity: entry.AvailableQuantity,
			})
		}
	}
	return confirmed, removed, shortfall
}

// applyVersioned runs the compare-and-swap update; zero rows means the base
// state went stale under us.
func applyVersioned(repo *repository.GormOrderRepository, id uint, version uint, updates map[string]interface{}) error {
	rows, err := repo.UpdateVersioned(id, version, updates)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: order id=%d", ErrOrderConflict, id)
	}
	return nil
}

// expectedVersion resolves the optimistic-concurrency base: callers that
// supply a version pin it, callers that don't ride on the fetched row.
func expectedVersion(order *models.Order, version uint) uint {
	if version > 0 {
		return version
	}
	return order.Version
}

// generateOrderNo builds an order number: SC + timestamp + 6 random digits.
func generateOrderNo() string {
	return "SC" + time.Now().Format("20060102150405") + randNumeric(6)
}

// buildBackOrderNo derives a child order number from the parent's.
func buildBackOrderNo(parentOrderNo string, seq int) string {
	return fmt.Sprintf("%s-B%02d", parentOrderNo, seq)
}

func randNumeric(n int) string {
	const digits = "0123456789"
	result := make([]byte, n)
	for i := range result {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			result[i] = digits[time.Now().Nanosecond()%len(digits)]
			continue
		}
		result[i] = digits[idx.Int64()]
	}
	return string(result)
}
