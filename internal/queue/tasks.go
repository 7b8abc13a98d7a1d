package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusChanged is the status transition notification task.
	TaskOrderStatusChanged = "order:status_changed"
	// TaskBackOrderCreated is the back-order creation notification task.
	TaskBackOrderCreated = "order:backorder_created"
)

// OrderStatusChangedPayload carries one status transition.
type OrderStatusChangedPayload struct {
	OrderID    uint   `json:"order_id"`
	OrderNo    string `json:"order_no"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Actor      string `json:"actor"`
}

// BackOrderCreatedPayload carries one shortfall split.
type BackOrderCreatedPayload struct {
	ParentOrderID uint   `json:"parent_order_id"`
	ParentOrderNo string `json:"parent_order_no"`
	BackOrderID   uint   `json:"backorder_id"`
	BackOrderNo   string `json:"backorder_no"`
	Actor         string `json:"actor"`
}

// NewOrderStatusChangedTask builds the status transition task.
func NewOrderStatusChangedTask(payload OrderStatusChangedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusChanged, body), nil
}

// NewBackOrderCreatedTask builds the back-order creation task.
func NewBackOrderCreatedTask(payload BackOrderCreatedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBackOrderCreated, body), nil
}
