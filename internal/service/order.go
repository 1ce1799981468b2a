package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/AveQY/ddhj/internal/models"
	"gorm.io/gorm"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// GenerateOrderNumber builds a 20-character order number: the current
// timestamp down to the second plus a six-digit random suffix. The unique
// index on order_number catches the (vanishingly rare) collision.
func GenerateOrderNumber() string {
	return time.Now().Format("20060102150405") + fmt.Sprintf("%06d", rand.Intn(1000000))
}

// Create inserts the order and deducts stock for every line item inside
// one transaction. Any failed deduction rolls the whole order back, stock
// included.
func (s *OrderService) Create(order *models.Order) error {
	if order.OrderNumber == "" {
		order.OrderNumber = GenerateOrderNumber()
	}
	now := models.Now()
	if order.OrderDate.IsZero() {
		order.OrderDate = now
	}
	order.CreateTime = now
	order.UpdateTime = now

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range order.Items.List {
			if err := deductStock(tx, item.SpecID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns one page of orders, newest order date first, optionally
// restricted to an order-date range.
func (s *OrderService) List(page, size int, start, end models.DateTime) ([]models.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	query := s.db.Model(&models.Order{})
	if !start.IsZero() {
		query = query.Where("order_date >= ?", start)
	}
	if !end.IsZero() {
		query = query.Where("order_date <= ?", end)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Order("order_date desc").
		Limit(size).
		Offset((page - 1) * size).
		Find(&orders).Error
	return orders, total, err
}

func (s *OrderService) GetByID(id int64) (*models.Order, error) {
	var order models.Order
	err := s.db.First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) GetByNumber(number string) (*models.Order, error) {
	var order models.Order
	err := s.db.Where("order_number = ?", number).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete soft-deletes an order. Stock is not restored; cancelled goods go
// back on the shelf through the specification editor.
func (s *OrderService) Delete(id int64) error {
	return s.db.Delete(&models.Order{}, id).Error
}
