package repository

import (
	"errors"
	"time"

	"chopnow/entity"
	"chopnow/pkg/apperr"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// CreateOrderItem persists the item and its addon snapshots together.
func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// OrderSummary is the order-history row for the customer app.
type OrderSummary struct {
	ID            uint      `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	Qty           int64     `json:"qty"`
	Total         int64     `json:"total"`
	OrderStatusID uint      `json:"orderStatusId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListOrdersForUser returns the user's orders, most recent first.
func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, qty, total, order_status_id, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// VendorOrderSummary is the vendor app's order-queue row.
type VendorOrderSummary struct {
	ID            uint      `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	UserID        uint      `json:"userId"`
	CustomerName  string    `json:"customerName"`
	Qty           int64     `json:"qty"`
	Total         int64     `json:"total"`
	OrderStatusID uint      `json:"orderStatusId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForVendor(statusID *uint, page, limit int) ([]VendorOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	countQ := r.DB.Model(&entity.Order{})
	if statusID != nil && *statusID != 0 {
		countQ = countQ.Where("order_status_id = ?", *statusID)
	}
	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.DB.Table("orders AS o").
		Select("o.id, o.order_number, o.user_id, u.username AS customer_name, o.qty, o.total, o.order_status_id, o.created_at").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.deleted_at IS NULL")
	if statusID != nil && *statusID != 0 {
		q = q.Where("o.order_status_id = ?", *statusID)
	}

	var rows []VendorOrderSummary
	if err := q.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.
		Preload("Addons").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// ---------------- Status transitions ----------------

// UpdateStatusGuard is a conditional write: it only succeeds when the
// order is still in fromID, so racing transitions cannot both win.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromID).
		Updates(map[string]any{"order_status_id": toID, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

// CancelGuard moves the order to cancelled unless it already reached a
// terminal status.
func (r *OrderRepository) CancelGuard(tx *gorm.DB, orderID, cancelledID uint, terminalIDs []uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id NOT IN ?", orderID, terminalIDs).
		Updates(map[string]any{"order_status_id": cancelledID, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

// CountUnavailableDishes tells whether any dish on the order has been
// switched off the menu since it was placed.
func (r *OrderRepository) CountUnavailableDishes(tx *gorm.DB, orderID uint) (int64, error) {
	var cnt int64
	err := tx.Table("order_items AS oi").
		Joins("JOIN dishes d ON d.id = oi.dish_id").
		Where("oi.order_id = ? AND d.available = ?", orderID, false).
		Count(&cnt).Error
	return cnt, err
}

// GetStatusIDByName resolves a seeded lookup row.
func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}
