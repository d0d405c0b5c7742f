package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"chopnow/cart"
	"chopnow/entity"
	"chopnow/pkg/apperr"
	"chopnow/pricing"
	"chopnow/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusIDs struct {
	Placed    uint
	Preparing uint
	Ready     uint
	Completed uint
	Cancelled uint
}

func (ids StatusIDs) terminal() []uint {
	return []uint{ids.Completed, ids.Cancelled}
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Carts    *cart.Store
	Log      *slog.Logger

	Status StatusIDs
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	carts *cart.Store,
	log *slog.Logger,
) *OrderService {
	s := &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Carts: carts, Log: log}

	if id, err := repo.GetStatusIDByName("Placed"); err == nil {
		s.Status.Placed = id
	}
	if id, err := repo.GetStatusIDByName("Preparing"); err == nil {
		s.Status.Preparing = id
	}
	if id, err := repo.GetStatusIDByName("Ready"); err == nil {
		s.Status.Ready = id
	}
	if id, err := repo.GetStatusIDByName("Completed"); err == nil {
		s.Status.Completed = id
	}
	if id, err := repo.GetStatusIDByName("Cancelled"); err == nil {
		s.Status.Cancelled = id
	}

	return s
}

// ----- DTOs -----

type CheckoutIn struct {
	LocationID   uint   `json:"locationId" binding:"required"`
	Instructions string `json:"instructions"`
}

type CheckoutRes struct {
	ID           uint   `json:"id"`
	OrderNumber  string `json:"orderNumber"`
	Total        int64  `json:"total"`
	DisplayTotal string `json:"displayTotal"`
}

// Checkout persists the whole cart as one order in a single
// transaction: header, every item and every addon snapshot together.
// The cart is cleared only after the transaction commits, so a failed
// submission never loses the user's lines.
func (s *OrderService) Checkout(userID uint, in *CheckoutIn) (*CheckoutRes, error) {
	if userID == 0 {
		return nil, apperr.ErrUnauthenticated
	}

	c := s.Carts.For(userID)
	lines := c.Lines()
	if len(lines) == 0 {
		return nil, apperr.ErrCartEmpty
	}

	res, err := s.createOrder(userID, lines, c.Totals(), in)
	if err != nil {
		return nil, err
	}

	c.Clear()
	s.Log.Info("order placed",
		"orderNumber", res.OrderNumber, "userId", userID, "lines", len(lines), "total", res.Total)
	return res, nil
}

// SubmitLine is the single-line path (the "order now" button): the same
// atomic creation with just one cart line, which is removed from the
// cart on success.
func (s *OrderService) SubmitLine(userID uint, lineID string, in *CheckoutIn) (*CheckoutRes, error) {
	if userID == 0 {
		return nil, apperr.ErrUnauthenticated
	}

	c := s.Carts.For(userID)
	line, err := c.Line(lineID)
	if err != nil {
		return nil, err
	}

	totals := cart.Totals{
		TotalItems: line.Qty,
		TotalPrice: pricing.LineTotal(line.UnitPrice, line.Qty),
	}
	res, err := s.createOrder(userID, []cart.Line{line}, totals, in)
	if err != nil {
		return nil, err
	}

	// last-write-wins: the line may already be gone if the cart changed
	// while the request was in flight
	_ = c.RemoveLine(lineID)
	s.Log.Info("order placed",
		"orderNumber", res.OrderNumber, "userId", userID, "lines", 1, "total", res.Total)
	return res, nil
}

func (s *OrderService) createOrder(userID uint, lines []cart.Line, totals cart.Totals, in *CheckoutIn) (*CheckoutRes, error) {
	ok, err := s.MenuRepo.LocationExists(in.LocationID)
	if err != nil {
		return nil, apperr.Creation("location lookup failed", err)
	}
	if !ok {
		return nil, fmt.Errorf("location: %w", apperr.ErrNotFound)
	}

	order := entity.Order{
		OrderNumber:   newOrderNumber(),
		UserID:        userID,
		OrderStatusID: s.Status.Placed,
		Qty:           int64(totals.TotalItems),
		Total:         totals.TotalPrice,
		LocationID:    in.LocationID,
		PackagingID:   lines[0].Packaging.ID, // header snapshot; per-line packaging lives in the unit prices
		Instructions:  in.Instructions,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, ln := range lines {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				DishID:    ln.DishID,
				Qty:       ln.Qty,
				UnitPrice: ln.UnitPrice,
				Total:     pricing.LineTotal(ln.UnitPrice, ln.Qty),
			}
			for _, sel := range ln.Selections {
				oi.Addons = append(oi.Addons, entity.OrderItemAddon{
					AddonID:   sel.AddonID,
					AddonName: sel.Name,
					Price:     sel.Price,
					Qty:       sel.Qty,
				})
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Creation("backend rejected the order", err)
	}

	return &CheckoutRes{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		Total:        order.Total,
		DisplayTotal: pricing.Display(order.Total),
	}, nil
}

// ----- List & detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	if userID == 0 {
		return nil, apperr.ErrUnauthenticated
	}
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	ID            uint               `json:"id"`
	OrderNumber   string             `json:"orderNumber"`
	OrderStatusID uint               `json:"orderStatusId"`
	Qty           int64              `json:"qty"`
	Total         int64              `json:"total"`
	DisplayTotal  string             `json:"displayTotal"`
	LocationID    uint               `json:"locationId"`
	Instructions  string             `json:"instructions"`
	CreatedAt     time.Time          `json:"createdAt"`
	Items         []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	if userID == 0 {
		return nil, apperr.ErrUnauthenticated
	}
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, OrderNumber: o.OrderNumber, OrderStatusID: o.OrderStatusID,
		Qty: o.Qty, Total: o.Total, DisplayTotal: pricing.Display(o.Total),
		LocationID: o.LocationID, Instructions: o.Instructions,
		CreatedAt: o.CreatedAt, Items: items,
	}, nil
}

type VendorOrderListOut struct {
	Items []repository.VendorOrderSummary `json:"items"`
	Total int64                           `json:"total"`
	Page  int                             `json:"page"`
	Limit int                             `json:"limit"`
}

func (s *OrderService) ListForVendor(statusID *uint, page, limit int) (*VendorOrderListOut, error) {
	items, total, err := s.Repo.ListOrdersForVendor(statusID, page, limit)
	if err != nil {
		return nil, err
	}
	return &VendorOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

type VendorOrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForVendor(orderID uint) (*VendorOrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &VendorOrderDetail{Order: *o, Items: items}, nil
}

func newOrderNumber() string {
	return fmt.Sprintf("CHP-%s-%s",
		time.Now().Format("20060102"),
		strings.ToUpper(uuid.NewString()[:6]))
}
