package database

import (
	"github.com/AveQY/ddhj/internal/models"
	"gorm.io/gorm"
)

// Tables lists every model kept in schema migration order.
var Tables = []interface{}{
	&models.Category{},
	&models.Product{},
	&models.Specification{},
	&models.Order{},
}

// Migrate creates or updates the schema for all registered tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Tables...)
}
