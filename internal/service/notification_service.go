package service

import (
	"fmt"

	"github.com/saralchem/orderdesk/internal/constants"
	"github.com/saralchem/orderdesk/internal/models"
	"github.com/saralchem/orderdesk/internal/repository"
)

// NotificationService maintains the dashboard activity feed.
type NotificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a notification service.
func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// List returns feed entries, newest first.
func (s *NotificationService) List(filter repository.NotificationListFilter) ([]models.Notification, int64, error) {
	return s.repo.List(filter)
}

// MarkRead marks one entry as read. Already-read entries are left alone.
func (s *NotificationService) MarkRead(id uint) error {
	return s.repo.MarkRead(id)
}

// RecordStatusChange writes a feed entry for a workflow transition. Called
// from the queue consumer.
func (s *NotificationService) RecordStatusChange(orderID uint, orderNo, from, to, actor string) error {
	message := fmt.Sprintf("Order %s moved from %s to %s", orderNo, from, to)
	if actor != "" {
		message = fmt.Sprintf("%s by %s", message, actor)
	}
	return s.repo.Create(&models.Notification{
		Kind:       constants.NotificationKindStatusChange,
		OrderID:    orderID,
		OrderNo:    orderNo,
		FromStatus: from,
		ToStatus:   to,
		Actor:      actor,
		Message:    message,
	})
}

// RecordBackOrder writes a feed entry for a back-order split. Called from
// the queue consumer.
func (s *NotificationService) RecordBackOrder(backOrderID uint, backOrderNo, parentOrderNo, actor string) error {
	message := fmt.Sprintf("Back-order %s created from order %s for unavailable quantities", backOrderNo, parentOrderNo)
	return s.repo.Create(&models.Notification{
		Kind:    constants.NotificationKindBackOrderCreated,
		OrderID: backOrderID,
		OrderNo: backOrderNo,
		Actor:   actor,
		Message: message,
	})
}
