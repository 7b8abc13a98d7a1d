package worker

import (
	"context"
	"encoding/json"

	"github.com/saralchem/orderdesk/internal/logger"
	"github.com/saralchem/orderdesk/internal/provider"
	"github.com/saralchem/orderdesk/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued workflow events and turns them into activity
// feed entries.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires the task handlers into the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusChanged, c.handleOrderStatusChanged)
	mux.HandleFunc(queue.TaskBackOrderCreated, c.handleBackOrderCreated)
}

func (c *Consumer) handleOrderStatusChanged(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_changed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusChangedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_changed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_changed_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.NotificationService == nil {
		logger.Warnw("worker_order_status_changed_skip_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := c.NotificationService.RecordStatusChange(payload.OrderID, payload.OrderNo, payload.FromStatus, payload.ToStatus, payload.Actor); err != nil {
		logger.Warnw("worker_order_status_changed_record_failed",
			"order_id", payload.OrderID,
			"order_no", payload.OrderNo,
			"from", payload.FromStatus,
			"to", payload.ToStatus,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_order_status_changed_recorded",
		"order_id", payload.OrderID,
		"order_no", payload.OrderNo,
		"from", payload.FromStatus,
		"to", payload.ToStatus,
		"actor", payload.Actor,
	)
	return nil
}

func (c *Consumer) handleBackOrderCreated(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_backorder_created_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.BackOrderCreatedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_backorder_created_unmarshal_failed", "error", err)
		return err
	}
	if payload.BackOrderID == 0 {
		logger.Debugw("worker_backorder_created_skip_invalid_payload", "backorder_id", payload.BackOrderID)
		return nil
	}
	if c.NotificationService == nil {
		logger.Warnw("worker_backorder_created_skip_service_nil", "backorder_id", payload.BackOrderID)
		return nil
	}
	if err := c.NotificationService.RecordBackOrder(payload.BackOrderID, payload.BackOrderNo, payload.ParentOrderNo, payload.Actor); err != nil {
		logger.Warnw("worker_backorder_created_record_failed",
			"backorder_id", payload.BackOrderID,
			"backorder_no", payload.BackOrderNo,
			"parent_order_no", payload.ParentOrderNo,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_backorder_created_recorded",
		"backorder_id", payload.BackOrderID,
		"backorder_no", payload.BackOrderNo,
		"parent_order_no", payload.ParentOrderNo,
		"actor", payload.Actor,
	)
	return nil
}
