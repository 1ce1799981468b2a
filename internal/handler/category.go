package handler

import (
	"strconv"

	"github.com/AveQY/ddhj/internal/models"
	"github.com/AveQY/ddhj/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List()
	if err != nil {
		zap.L().Error("list categories failed", zap.Error(err))
		Fail(c, "获取分类列表失败")
		return
	}
	Success(c, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	category, err := h.categories.GetByID(id)
	if err != nil {
		zap.L().Error("get category failed", zap.Int64("id", id), zap.Error(err))
		Fail(c, "获取分类失败")
		return
	}
	Success(c, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		Fail(c, "参数错误")
		return
	}
	if err := h.categories.Create(&category); err != nil {
		zap.L().Error("create category failed", zap.Error(err))
		Fail(c, "创建分类失败")
		return
	}
	Success(c, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		Fail(c, "参数错误")
		return
	}
	category.ID = id
	if err := h.categories.Update(&category); err != nil {
		zap.L().Error("update category failed", zap.Int64("id", id), zap.Error(err))
		Fail(c, "更新分类失败")
		return
	}
	Success(c, nil)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	if err := h.categories.Delete(id); err != nil {
		zap.L().Error("delete category failed", zap.Int64("id", id), zap.Error(err))
		Fail(c, "删除分类失败")
		return
	}
	Success(c, nil)
}

// Sort receives the full list of category ids in display order.
func (h *CategoryHandler) Sort(c *gin.Context) {
	var ids []int64
	if err := c.ShouldBindJSON(&ids); err != nil {
		Fail(c, "参数错误")
		return
	}
	if err := h.categories.UpdateSortOrder(ids); err != nil {
		zap.L().Error("sort categories failed", zap.Error(err))
		Fail(c, "分类排序失败")
		return
	}
	Success(c, nil)
}
