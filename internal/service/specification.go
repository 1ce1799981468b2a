package service

import (
	"errors"

	"github.com/AveQY/ddhj/internal/models"
	"gorm.io/gorm"
)

// ErrInsufficientStock reports that a conditional stock deduction matched
// no row: either the specification is gone or its stock is too low.
var ErrInsufficientStock = errors.New("insufficient stock")

type SpecificationService struct {
	db *gorm.DB
}

func NewSpecificationService(db *gorm.DB) *SpecificationService {
	return &SpecificationService{db: db}
}

// ListByProduct returns all specifications of one product.
func (s *SpecificationService) ListByProduct(productID int64) ([]models.Specification, error) {
	var specs []models.Specification
	err := s.db.Where("product_id = ?", productID).Order("id asc").Find(&specs).Error
	return specs, err
}

func (s *SpecificationService) GetByID(id int64) (*models.Specification, error) {
	var spec models.Specification
	err := s.db.First(&spec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *SpecificationService) Create(spec *models.Specification) error {
	now := models.Now()
	spec.CreateTime = now
	spec.UpdateTime = now
	return s.db.Create(spec).Error
}

func (s *SpecificationService) Update(spec *models.Specification) error {
	spec.UpdateTime = models.Now()
	result := s.db.Model(&models.Specification{}).Where("id = ?", spec.ID).Updates(map[string]interface{}{
		"product_id":  spec.ProductID,
		"name":        spec.Name,
		"specs":       spec.Specs,
		"stock":       spec.Stock,
		"update_time": spec.UpdateTime,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *SpecificationService) Delete(id int64) error {
	return s.db.Delete(&models.Specification{}, id).Error
}

// DeductStock atomically takes quantity units off a specification's stock.
func (s *SpecificationService) DeductStock(specID int64, quantity int) error {
	return deductStock(s.db, specID, quantity)
}

// deductStock issues a single conditional UPDATE so that two concurrent
// orders can never both take the last unit. A check-then-write pair would
// leave a window between the read and the write.
func deductStock(db *gorm.DB, specID int64, quantity int) error {
	if quantity <= 0 {
		return nil
	}
	result := db.Model(&models.Specification{}).
		Where("id = ? AND stock >= ?", specID, quantity).
		Updates(map[string]interface{}{
			"stock":       gorm.Expr("stock - ?", quantity),
			"update_time": models.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
