package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/gorm"
)

// OrderItem is one purchased line: a specification of a product and the
// quantity bought.
type OrderItem struct {
	ProductID int64 `json:"productId"`
	SpecID    int64 `json:"specId"`
	Quantity  int   `json:"quantity"`
}

type OrderItemList []OrderItem

// OrderItems stores the tagged line items as a JSON column.
//
// Scanning is lenient on purpose: rows written by the legacy system hold a
// nested map keyed by product-id strings instead of a list, and historical
// rows may carry malformed entries. Neither must ever fail a read, so Scan
// falls back to the legacy decoder and drops whatever cannot be parsed.
// The legacy map also carried the notes text inside the items JSON; Scan
// keeps it so Order.AfterFind can surface it through the Notes column.
type OrderItems struct {
	List        OrderItemList
	legacyNotes string
}

func (o OrderItems) Value() (driver.Value, error) {
	if o.List == nil {
		return "[]", nil
	}
	data, err := json.Marshal(o.List)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (o *OrderItems) Scan(value interface{}) error {
	o.List = nil
	o.legacyNotes = ""
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	var items OrderItemList
	if err := json.Unmarshal(data, &items); err == nil {
		o.List = items
		return nil
	}
	var legacy map[string]interface{}
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil
	}
	o.List, o.legacyNotes = decodeLegacyItemsLoose(legacy)
	return nil
}

func (o OrderItems) MarshalJSON() ([]byte, error) {
	if o.List == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(o.List)
}

func (o *OrderItems) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &o.List)
}

type Order struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string         `gorm:"size:32;uniqueIndex" json:"orderNumber"`
	Items       OrderItems     `gorm:"type:json" json:"items"`
	TotalAmount float64        `gorm:"type:decimal(10,2)" json:"totalAmount"`
	PaidAmount  float64        `gorm:"type:decimal(10,2)" json:"paidAmount"`
	Notes       string         `gorm:"type:text" json:"notes"`
	OrderDate   DateTime       `gorm:"type:datetime;index" json:"orderDate"`
	CreateTime  DateTime       `gorm:"type:datetime" json:"createTime"`
	UpdateTime  DateTime       `gorm:"type:datetime" json:"updateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

// AfterFind backfills the notes of rows still stored in the legacy map
// form, where the text lived inside the items JSON instead of the notes
// column.
func (o *Order) AfterFind(*gorm.DB) error {
	if o.Notes == "" {
		o.Notes = o.Items.legacyNotes
	}
	return nil
}
