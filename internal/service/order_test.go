package service

import (
	"testing"
	"time"

	"github.com/AveQY/ddhj/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	number := GenerateOrderNumber()
	assert.Len(t, number, 20)
	assert.Regexp(t, `^\d{20}$`, number)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[GenerateOrderNumber()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestOrderCreateDeductsStock(t *testing.T) {
	db := newTestDB(t)
	specA := seedSpecification(t, db, 1, 5)
	specB := seedSpecification(t, db, 2, 3)

	order := &models.Order{
		Items: models.OrderItems{List: models.OrderItemList{
			{ProductID: 1, SpecID: specA.ID, Quantity: 2},
			{ProductID: 2, SpecID: specB.ID, Quantity: 3},
		}},
		TotalAmount: 50,
		PaidAmount:  45,
	}
	require.NoError(t, NewOrderService(db).Create(order))

	assert.NotEmpty(t, order.OrderNumber)
	assert.False(t, order.OrderDate.IsZero())

	specs := NewSpecificationService(db)
	a, err := specs.GetByID(specA.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Stock)
	b, err := specs.GetByID(specB.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Stock)
}

func TestOrderCreateRollsBackOnInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	specA := seedSpecification(t, db, 1, 5)
	specB := seedSpecification(t, db, 2, 0)

	order := &models.Order{
		Items: models.OrderItems{List: models.OrderItemList{
			{ProductID: 1, SpecID: specA.ID, Quantity: 2},
			{ProductID: 2, SpecID: specB.ID, Quantity: 1},
		}},
	}
	err := NewOrderService(db).Create(order)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Neither the order row nor the first deduction survives.
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)

	a, err := NewSpecificationService(db).GetByID(specA.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, a.Stock)
}

func TestOrderGetByNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	order := seedOrderAt(t, db, time.Now(), 10, nil)

	got, err := svc.GetByNumber(order.OrderNumber)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.ID, got.ID)

	missing, err := svc.GetByNumber("00000000000000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOrderListFiltersByDateRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	day := time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local)
	seedOrderAt(t, db, day.AddDate(0, 0, -2), 10, nil)
	inRange := seedOrderAt(t, db, day, 20, nil)
	seedOrderAt(t, db, day.AddDate(0, 0, 2), 30, nil)

	start := models.DateTime(time.Date(2026, 8, 9, 0, 0, 0, 0, time.Local))
	end := models.DateTime(time.Date(2026, 8, 11, 23, 59, 59, 0, time.Local))
	orders, total, err := svc.List(1, 10, start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, inRange.ID, orders[0].ID)
}

func TestOrderListPaginates(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		seedOrderAt(t, db, base.AddDate(0, 0, i), 10, nil)
	}

	orders, total, err := svc.List(2, 2, models.DateTime{}, models.DateTime{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, orders, 2)
	// Newest first, so page 2 holds the third and fourth newest.
	assert.True(t, orders[0].OrderDate.Time().After(orders[1].OrderDate.Time()))
}

func TestOrderReadBackfillsLegacyNotes(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	order := seedOrderAt(t, db, time.Now(), 10, nil)

	// A row still in the legacy map form, notes inside the items JSON.
	legacy := `{"5":[{"规格id":7,"购买数量":2}],"notes":"到店自取"}`
	require.NoError(t, db.Exec("UPDATE orders SET items = ?, notes = '' WHERE id = ?", legacy, order.ID).Error)

	got, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "到店自取", got.Notes)
	require.Len(t, got.Items.List, 1)
	assert.Equal(t, int64(5), got.Items.List[0].ProductID)
}

func TestOrderReadKeepsColumnNotes(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	order := seedOrderAt(t, db, time.Now(), 10, nil)

	legacy := `{"5":[{"规格id":7,"购买数量":2}],"notes":"旧备注"}`
	require.NoError(t, db.Exec("UPDATE orders SET items = ?, notes = '新备注' WHERE id = ?", legacy, order.ID).Error)

	got, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "新备注", got.Notes)
}

func TestOrderCreateKeepsSuppliedNumber(t *testing.T) {
	db := newTestDB(t)
	spec := seedSpecification(t, db, 1, 5)

	order := &models.Order{
		OrderNumber: "20260810120000123456",
		Items: models.OrderItems{List: models.OrderItemList{
			{ProductID: 1, SpecID: spec.ID, Quantity: 1},
		}},
	}
	require.NoError(t, NewOrderService(db).Create(order))
	assert.Equal(t, "20260810120000123456", order.OrderNumber)

	got, err := NewOrderService(db).GetByNumber("20260810120000123456")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.ID, got.ID)
}

func TestOrderSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	order := seedOrderAt(t, db, time.Now(), 10, nil)

	require.NoError(t, svc.Delete(order.ID))

	got, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
