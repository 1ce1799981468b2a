package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/AveQY/ddhj/internal/models"
	"github.com/AveQY/ddhj/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// createOrderRequest carries the legacy wire shape: items is a map keyed
// by product-id strings with a reserved "notes" entry.
type createOrderRequest struct {
	OrderNumber string                 `json:"orderNumber"`
	Items       map[string]interface{} `json:"items" binding:"required"`
	TotalAmount float64                `json:"totalAmount"`
	PaidAmount  float64                `json:"paidAmount"`
	OrderDate   models.DateTime        `json:"orderDate"`
}

// orderView re-encodes the stored line items into the legacy map before
// the order leaves the API.
type orderView struct {
	*models.Order
	Items map[string]interface{} `json:"items"`
}

func newOrderView(order *models.Order) orderView {
	return orderView{Order: order, Items: models.EncodeLegacyItems(order.Items.List, order.Notes)}
}

func newOrderViews(orders []models.Order) []orderView {
	views := make([]orderView, len(orders))
	for i := range orders {
		views[i] = newOrderView(&orders[i])
	}
	return views
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, "参数错误")
		return
	}
	items, notes, err := models.DecodeLegacyItems(req.Items)
	if err != nil {
		zap.L().Warn("reject malformed order items", zap.Error(err))
		Fail(c, "参数错误")
		return
	}
	order := models.Order{
		OrderNumber: req.OrderNumber,
		Items:       models.OrderItems{List: items},
		Notes:       notes,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
		OrderDate:   req.OrderDate,
	}
	if err := h.orders.Create(&order); err != nil {
		if errors.Is(err, service.ErrInsufficientStock) {
			Fail(c, "商品库存不足，下单失败")
			return
		}
		zap.L().Error("create order failed", zap.Error(err))
		Fail(c, "创建订单失败")
		return
	}
	Success(c, order.OrderNumber)
}

func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("pageNum", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	start := parseRangeTime(c.Query("startDate"))
	end := parseRangeTime(c.Query("endDate"))

	orders, total, err := h.orders.List(page, size, start, end)
	if err != nil {
		zap.L().Error("list orders failed", zap.Error(err))
		Fail(c, "获取订单列表失败")
		return
	}
	Success(c, PageResult{Records: newOrderViews(orders), Total: total, Current: page, Size: size})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	order, err := h.orders.GetByID(id)
	if err != nil {
		zap.L().Error("get order failed", zap.Int64("id", id), zap.Error(err))
		Fail(c, "获取订单失败")
		return
	}
	if order == nil {
		Success(c, nil)
		return
	}
	Success(c, newOrderView(order))
}

func (h *OrderHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	order, err := h.orders.GetByNumber(number)
	if err != nil {
		zap.L().Error("get order by number failed", zap.String("number", number), zap.Error(err))
		Fail(c, "获取订单失败")
		return
	}
	if order == nil {
		Success(c, nil)
		return
	}
	Success(c, newOrderView(order))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	if err := h.orders.Delete(id); err != nil {
		zap.L().Error("delete order failed", zap.Int64("id", id), zap.Error(err))
		Fail(c, "删除订单失败")
		return
	}
	Success(c, nil)
}

// parseRangeTime accepts either a full timestamp or a bare date; anything
// else means no bound.
func parseRangeTime(value string) models.DateTime {
	if value == "" {
		return models.DateTime{}
	}
	for _, layout := range []string{models.DateTimeLayout, "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return models.DateTime(t)
		}
	}
	return models.DateTime{}
}
