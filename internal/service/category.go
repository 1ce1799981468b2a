package service

import (
	"errors"

	"github.com/AveQY/ddhj/internal/models"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns every category ordered for display.
func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("sort_order asc, create_time asc").Find(&categories).Error
	return categories, err
}

// GetByID returns nil when no category has the given id.
func (s *CategoryService) GetByID(id int64) (*models.Category, error) {
	var category models.Category
	err := s.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Create(category *models.Category) error {
	now := models.Now()
	category.CreateTime = now
	category.UpdateTime = now
	return s.db.Create(category).Error
}

func (s *CategoryService) Update(category *models.Category) error {
	category.UpdateTime = models.Now()
	result := s.db.Model(&models.Category{}).Where("id = ?", category.ID).Updates(map[string]interface{}{
		"name":        category.Name,
		"sort_order":  category.SortOrder,
		"update_time": category.UpdateTime,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *CategoryService) Delete(id int64) error {
	return s.db.Delete(&models.Category{}, id).Error
}

// UpdateSortOrder rewrites the display order: the position of each id in
// the slice becomes its sort_order. Unknown ids are ignored.
func (s *CategoryService) UpdateSortOrder(ids []int64) error {
	now := models.Now()
	for i, id := range ids {
		err := s.db.Model(&models.Category{}).Where("id = ?", id).Updates(map[string]interface{}{
			"sort_order":  i,
			"update_time": now,
		}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
