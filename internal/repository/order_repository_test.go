package repository

import (
	"fmt"
	"testing"

	"github.com/saralchem/orderdesk/internal/constants"
	"github.com/saralchem/orderdesk/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Order{}, &models.OrderItem{}, &models.Invoice{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func createTestOrder(t *testing.T, repo *GormOrderRepository, orderNo, status string) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:    orderNo,
		CustomerID: 1,
		Status:     status,
		Version:    1,
	}
	items := []models.OrderItem{
		{ProductID: 1, Variant: "25L", Name: "Acetone", Quantity: 5},
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestUpdateVersionedCompareAndSwap(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	order := createTestOrder(t, repo, "SC-100", constants.OrderStatusPlaced)

	rows, err := repo.UpdateVersioned(order.ID, 1, map[string]interface{}{
		"status": constants.OrderStatusWarehouseProcessing,
	})
	if err != nil {
		t.Fatalf("versioned update failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rows want 1 got %d", rows)
	}

	// The stale version no longer matches.
	rows, err = repo.UpdateVersioned(order.ID, 1, map[string]interface{}{
		"status": constants.OrderStatusAdminStockReview,
	})
	if err != nil {
		t.Fatalf("versioned update failed: %v", err)
	}
	if rows != 0 {
		t.Fatalf("stale version must match no rows, got %d", rows)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != constants.OrderStatusWarehouseProcessing {
		t.Fatalf("status want %s got %s", constants.OrderStatusWarehouseProcessing, got.Status)
	}
	if got.Version != 2 {
		t.Fatalf("version want 2 got %d", got.Version)
	}
}

func TestReplaceItemsSwapsRows(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order := createTestOrder(t, repo, "SC-101", constants.OrderStatusPlaced)

	next := []models.OrderItem{
		{ProductID: 1, Variant: "50L", Name: "Acetone", Quantity: 3},
		{ProductID: 2, Variant: "25kg", Name: "Soda Ash", Quantity: 7},
	}
	if err := repo.ReplaceItems(order.ID, next); err != nil {
		t.Fatalf("replace items failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(got.Items))
	}

	// The old row is soft-deleted, not reused.
	var total int64
	if err := db.Unscoped().Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&total).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 rows including the soft-deleted one, got %d", total)
	}
}

func TestSaveInvoiceUpserts(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	order := createTestOrder(t, repo, "SC-102", constants.OrderStatusAwaitingInvoice)

	first := &models.Invoice{OrderID: order.ID, InvoiceNumber: "INV-001", PartyName: "Mehta Coatings"}
	if err := repo.SaveInvoice(first); err != nil {
		t.Fatalf("save invoice failed: %v", err)
	}
	second := &models.Invoice{OrderID: order.ID, InvoiceNumber: "INV-002", PartyName: "Mehta Coatings"}
	if err := repo.SaveInvoice(second); err != nil {
		t.Fatalf("save replacement invoice failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("replacement must reuse the row, want id %d got %d", first.ID, second.ID)
	}

	got, err := repo.GetInvoiceByOrderID(order.ID)
	if err != nil {
		t.Fatalf("get invoice failed: %v", err)
	}
	if got == nil || got.InvoiceNumber != "INV-002" {
		t.Fatalf("expected the replacement invoice, got %+v", got)
	}
}

func TestCountByStatusAndBackOrders(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	parent := createTestOrder(t, repo, "SC-103", constants.OrderStatusAwaitingInvoice)
	createTestOrder(t, repo, "SC-104", constants.OrderStatusPlaced)

	child := &models.Order{
		OrderNo:         "SC-103-B01",
		CustomerID:      parent.CustomerID,
		Status:          constants.OrderStatusPlaced,
		IsPartialOrder:  true,
		OriginalOrderID: &parent.ID,
		Version:         1,
	}
	if err := repo.Create(child, []models.OrderItem{{ProductID: 1, Variant: "25L", Name: "Acetone", Quantity: 2}}); err != nil {
		t.Fatalf("create back-order failed: %v", err)
	}

	counts, err := repo.CountByStatus()
	if err != nil {
		t.Fatalf("count by status failed: %v", err)
	}
	if counts[constants.OrderStatusPlaced] != 2 {
		t.Fatalf("placed count want 2 got %d", counts[constants.OrderStatusPlaced])
	}
	if counts[constants.OrderStatusAwaitingInvoice] != 1 {
		t.Fatalf("awaiting invoice count want 1 got %d", counts[constants.OrderStatusAwaitingInvoice])
	}

	children, err := repo.ListBackOrders(parent.ID)
	if err != nil {
		t.Fatalf("list back-orders failed: %v", err)
	}
	if len(children) != 1 || children[0].OrderNo != "SC-103-B01" {
		t.Fatalf("expected the back-order, got %+v", children)
	}

	got, err := repo.GetByID(parent.ID)
	if err != nil {
		t.Fatalf("get parent failed: %v", err)
	}
	if len(got.BackOrders) != 1 {
		t.Fatalf("parent must preload its back-orders, got %d", len(got.BackOrders))
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	got, err := repo.GetByID(999)
	if err != nil {
		t.Fatalf("missing order must not error: %v", err)
	}
	if got != nil {
		t.Fatalf("missing order must be nil, got %+v", got)
	}
}
