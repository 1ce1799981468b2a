package service

import (
	"errors"

	"github.com/AveQY/ddhj/internal/models"
	"gorm.io/gorm"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns one page of products, newest first, optionally restricted
// to a category.
func (s *ProductService) List(page, size int, categoryID int64) ([]models.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	query := s.db.Model(&models.Product{})
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.Order("create_time desc").
		Limit(size).
		Offset((page - 1) * size).
		Find(&products).Error
	return products, total, err
}

// ListAll returns every product without pagination, for pickers.
func (s *ProductService) ListAll() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("create_time desc").Find(&products).Error
	return products, err
}

func (s *ProductService) GetByID(id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(product *models.Product) error {
	now := models.Now()
	product.CreateTime = now
	product.UpdateTime = now
	return s.db.Create(product).Error
}

func (s *ProductService) Update(product *models.Product) error {
	product.UpdateTime = models.Now()
	result := s.db.Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":           product.Name,
		"images":         product.Images,
		"sell_price":     product.SellPrice,
		"purchase_price": product.PurchasePrice,
		"category_id":    product.CategoryID,
		"update_time":    product.UpdateTime,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *ProductService) Delete(id int64) error {
	return s.db.Delete(&models.Product{}, id).Error
}
