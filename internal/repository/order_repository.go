package repository

import (
	"errors"

	"github.com/saralchem/orderdesk/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNo(orderNo string) (*models.Order, error)
	ListBackOrders(parentID uint) ([]models.Order, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateVersioned(id uint, version uint, updates map[string]interface{}) (int64, error)
	ReplaceItems(orderID uint, items []models.OrderItem) error
	UpdateItemAvailability(orderID uint, productID uint, variant string, available int) error
	SaveInvoice(invoice *models.Invoice) error
	GetInvoiceByOrderID(orderID uint) (*models.Invoice, error)
	CountByStatus() (map[string]int64, error)
	ListRecent(limit int) ([]models.Order, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) withRelations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Items").
		Preload("Invoice").
		Preload("Customer").
		Preload("BackOrders").
		Preload("BackOrders.Items")
}

// Create persists an order together with its items.
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID fetches an order with its relations; nil when absent.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withRelations(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNo fetches an order by its order number; nil when absent.
func (r *GormOrderRepository) GetByOrderNo(orderNo string) (*models.Order, error) {
	var order models.Order
	if err := r.withRelations(r.db).Where("order_no = ?", orderNo).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListBackOrders lists the back-orders spawned by a parent order.
func (r *GormOrderRepository) ListBackOrders(parentID uint) ([]models.Order, error) {
	var orders []models.Order
	if parentID == 0 {
		return orders, nil
	}
	if err := r.db.Preload("Items").
		Where("original_order_id = ?", parentID).
		Order("id asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAdmin lists orders for the admin dashboard.
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{})

	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.PartialOnly {
		query = query.Where("is_partial_order = ?", true)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query.Preload("Items").Preload("Customer").Order("id DESC"), filter.Page, filter.PageSize)
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateVersioned applies updates guarded by the version column and returns
// the number of rows touched (0 means a stale base state).
func (r *GormOrderRepository) UpdateVersioned(id uint, version uint, updates map[string]interface{}) (int64, error) {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["version"] = version + 1
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ReplaceItems swaps the order's item rows for the given set.
func (r *GormOrderRepository) ReplaceItems(orderID uint, items []models.OrderItem) error {
	if err := r.db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].ID = 0
		items[i].OrderID = orderID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// UpdateItemAvailability sets the reported available quantity on one item row.
func (r *GormOrderRepository) UpdateItemAvailability(orderID uint, productID uint, variant string, available int) error {
	return r.db.Model(&models.OrderItem{}).
		Where("order_id = ? AND product_id = ? AND variant = ?", orderID, productID, variant).
		Update("available_quantity", available).Error
}

// SaveInvoice upserts the invoice attached to an order.
func (r *GormOrderRepository) SaveInvoice(invoice *models.Invoice) error {
	existing, err := r.GetInvoiceByOrderID(invoice.OrderID)
	if err != nil {
		return err
	}
	if existing != nil {
		invoice.ID = existing.ID
		invoice.CreatedAt = existing.CreatedAt
	}
	return r.db.Save(invoice).Error
}

// GetInvoiceByOrderID fetches the order's invoice; nil when absent.
func (r *GormOrderRepository) GetInvoiceByOrderID(orderID uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.Where("order_id = ?", orderID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

// CountByStatus returns the order count per status.
func (r *GormOrderRepository) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// ListRecent returns the most recently updated orders.
func (r *GormOrderRepository) ListRecent(limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	var orders []models.Order
	if err := r.db.Preload("Customer").
		Order("updated_at DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
