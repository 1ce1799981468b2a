package models

import "gorm.io/gorm"

type Product struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"size:200;not null" json:"name"`
	Images    StringList `gorm:"type:json" json:"images"`
	SellPrice float64    `gorm:"type:decimal(10,2)" json:"sellPrice"`
	// CategoryID references category.id but is intentionally not a foreign
	// key; products keep their category id even after the category is gone.
	CategoryID    int64          `gorm:"index" json:"categoryId"`
	PurchasePrice float64        `gorm:"type:decimal(10,2)" json:"purchasePrice"`
	CreateTime    DateTime       `gorm:"type:datetime" json:"createTime"`
	UpdateTime    DateTime       `gorm:"type:datetime" json:"updateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "product"
}
