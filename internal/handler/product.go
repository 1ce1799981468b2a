package handler

import (
	"strconv"

	"github.com/AveQY/ddhj/internal/models"
	"github.com/AveQY/ddhj/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("pageNum", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	categoryID, _ := strconv.ParseInt(c.DefaultQuery("categoryId", "0"), 10, 64)

	products, total, err := h.products.List(page, size, categoryID)
	if err != nil {
		zap.L().Error("list products failed", zap.Error(err))
		Fail(c, "获取商品列表失败")
		return
	}
	Success(c, PageResult{Records: products, Total: total, Current: page, Size: size})
}

func (h *ProductHandler) ListAll(c *gin.Context) {
	products, err := h.products.ListAll()
	if err != nil {
		zap.L().Error("list all products failed", zap.Error(err))
		Fail(c, "获取商品列表失败")
		return
	}
	Success(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	product, err := h.products.GetByID(id)
	if err != nil {
		zap.L().Error("get product failed", zap.Int64("id", id), zap.Error(err))
		Fail(c, "获取商品失败")
		return
	}
	Success(c, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		Fail(c, "参数错误")
		return
	}
	if err := h.products.Create(&product); err != nil {
		zap.L().Error("create product failed", zap.Error(err))
		Fail(c, "创建商品失败")
		return
	}
	Success(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		Fail(c, "参数错误")
		return
	}
	product.ID = id
	if err := h.products.Update(&product); err != nil {
		zap.L().Error("update product failed", zap.Int64("id", id), zap.Error(err))
		Fail(c, "更新商品失败")
		return
	}
	Success(c, nil)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	if err := h.products.Delete(id); err != nil {
		zap.L().Error("delete product failed", zap.Int64("id", id), zap.Error(err))
		Fail(c, "删除商品失败")
		return
	}
	Success(c, nil)
}
