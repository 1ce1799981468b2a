package service

import (
	"testing"
	"time"

	"github.com/AveQY/ddhj/internal/models"
	"github.com/AveQY/ddhj/pkg/database"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedSpecification(t *testing.T, db *gorm.DB, productID int64, stock int) *models.Specification {
	t.Helper()
	spec := &models.Specification{
		ProductID: productID,
		Name:      "默认规格",
		Specs:     models.StringMap{"颜色": "红"},
		Stock:     stock,
	}
	require.NoError(t, NewSpecificationService(db).Create(spec))
	return spec
}

func seedOrderAt(t *testing.T, db *gorm.DB, at time.Time, paid float64, items models.OrderItemList) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNumber: GenerateOrderNumber(),
		Items:       models.OrderItems{List: items},
		TotalAmount: paid,
		PaidAmount:  paid,
		OrderDate:   models.DateTime(at),
		CreateTime:  models.Now(),
		UpdateTime:  models.Now(),
	}
	require.NoError(t, db.Create(order).Error)
	return order
}
