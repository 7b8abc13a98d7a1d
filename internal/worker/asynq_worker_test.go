package worker

import (
	"context"
	"fmt"
	"testing"

	"github.com/saralchem/orderdesk/internal/constants"
	"github.com/saralchem/orderdesk/internal/models"
	"github.com/saralchem/orderdesk/internal/provider"
	"github.com/saralchem/orderdesk/internal/queue"
	"github.com/saralchem/orderdesk/internal/repository"
	"github.com/saralchem/orderdesk/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func newConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Notification{}); err != nil {
		t.Fatalf("migrate notifications failed: %v", err)
	}
	container := &provider.Container{
		NotificationService: service.NewNotificationService(repository.NewNotificationRepository(db)),
	}
	return NewConsumer(container), db
}

func TestHandleOrderStatusChangedRecordsFeedEntry(t *testing.T) {
	consumer, db := newConsumerTest(t)

	task, err := queue.NewOrderStatusChangedTask(queue.OrderStatusChangedPayload{
		OrderID:    42,
		OrderNo:    "SC20250101000001",
		FromStatus: constants.OrderStatusPlaced,
		ToStatus:   constants.OrderStatusWarehouseProcessing,
		Actor:      "sunita",
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderStatusChanged(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	var entry models.Notification
	if err := db.First(&entry, "order_id = ?", 42).Error; err != nil {
		t.Fatalf("feed entry not written: %v", err)
	}
	if entry.Kind != constants.NotificationKindStatusChange {
		t.Fatalf("kind want %s got %s", constants.NotificationKindStatusChange, entry.Kind)
	}
	want := "Order SC20250101000001 moved from Order Placed to Warehouse Processing by sunita"
	if entry.Message != want {
		t.Fatalf("message want %q got %q", want, entry.Message)
	}
}

func TestHandleBackOrderCreatedRecordsFeedEntry(t *testing.T) {
	consumer, db := newConsumerTest(t)

	task, err := queue.NewBackOrderCreatedTask(queue.BackOrderCreatedPayload{
		ParentOrderID: 42,
		ParentOrderNo: "SC20250101000001",
		BackOrderID:   43,
		BackOrderNo:   "SC20250101000001-B01",
		Actor:         "admin",
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleBackOrderCreated(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	var entry models.Notification
	if err := db.First(&entry, "order_id = ?", 43).Error; err != nil {
		t.Fatalf("feed entry not written: %v", err)
	}
	if entry.Kind != constants.NotificationKindBackOrderCreated {
		t.Fatalf("kind want %s got %s", constants.NotificationKindBackOrderCreated, entry.Kind)
	}
	want := "Back-order SC20250101000001-B01 created from order SC20250101000001 for unavailable quantities"
	if entry.Message != want {
		t.Fatalf("message want %q got %q", want, entry.Message)
	}
}

func TestHandleTaskSkipsInvalidPayload(t *testing.T) {
	consumer, db := newConsumerTest(t)

	task := asynq.NewTask(queue.TaskOrderStatusChanged, []byte(`{"order_id":0}`))
	if err := consumer.handleOrderStatusChanged(context.Background(), task); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Notification{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no entry expected, got %d", count)
	}
}
