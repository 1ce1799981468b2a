package models

import "gorm.io/gorm"

// Specification is a purchasable variant (SKU) of a product carrying its
// own stock count. Specs holds the attribute pairs shown to the buyer,
// e.g. {"颜色": "红", "尺寸": "L"}.
type Specification struct {
	ID         int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  int64          `gorm:"index" json:"productId"`
	Name       string         `gorm:"size:200" json:"name"`
	Specs      StringMap      `gorm:"type:json" json:"specs"`
	Stock      int            `gorm:"default:0" json:"stock"`
	CreateTime DateTime       `gorm:"type:datetime" json:"createTime"`
	UpdateTime DateTime       `gorm:"type:datetime" json:"updateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Specification) TableName() string {
	return "specification"
}
