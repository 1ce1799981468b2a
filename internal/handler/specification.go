package handler

import (
	"strconv"

	"github.com/AveQY/ddhj/internal/models"
	"github.com/AveQY/ddhj/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SpecificationHandler struct {
	specs *service.SpecificationService
}

func NewSpecificationHandler(specs *service.SpecificationService) *SpecificationHandler {
	return &SpecificationHandler{specs: specs}
}

func (h *SpecificationHandler) ListByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	specs, err := h.specs.ListByProduct(productID)
	if err != nil {
		zap.L().Error("list specifications failed", zap.Int64("productId", productID), zap.Error(err))
		Fail(c, "获取规格列表失败")
		return
	}
	Success(c, specs)
}

func (h *SpecificationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	spec, err := h.specs.GetByID(id)
	if err != nil {
		zap.L().Error("get specification failed", zap.Int64("id", id), zap.Error(err))
		Fail(c, "获取规格失败")
		return
	}
	Success(c, spec)
}

func (h *SpecificationHandler) Create(c *gin.Context) {
	var spec models.Specification
	if err := c.ShouldBindJSON(&spec); err != nil {
		Fail(c, "参数错误")
		return
	}
	if err := h.specs.Create(&spec); err != nil {
		zap.L().Error("create specification failed", zap.Error(err))
		Fail(c, "创建规格失败")
		return
	}
	Success(c, spec)
}

func (h *SpecificationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	var spec models.Specification
	if err := c.ShouldBindJSON(&spec); err != nil {
		Fail(c, "参数错误")
		return
	}
	spec.ID = id
	if err := h.specs.Update(&spec); err != nil {
		zap.L().Error("update specification failed", zap.Int64("id", id), zap.Error(err))
		Fail(c, "更新规格失败")
		return
	}
	Success(c, nil)
}

func (h *SpecificationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	if err := h.specs.Delete(id); err != nil {
		zap.L().Error("delete specification failed", zap.Int64("id", id), zap.Error(err))
		Fail(c, "删除规格失败")
		return
	}
	Success(c, nil)
}
