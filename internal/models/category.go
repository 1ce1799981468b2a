package models

import "gorm.io/gorm"

type Category struct {
	ID         int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string         `gorm:"size:100;not null" json:"name"`
	SortOrder  int            `gorm:"default:0" json:"sortOrder"`
	CreateTime DateTime       `gorm:"type:datetime" json:"createTime"`
	UpdateTime DateTime       `gorm:"type:datetime" json:"updateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Category) TableName() string {
	return "category"
}
