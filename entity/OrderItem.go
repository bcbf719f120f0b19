package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	// name and price are captured at order time; menu edits must not
	// rewrite tickets that were already taken
	MenuItemName string `json:"menuItemName"`
	Qty          int    `json:"qty"`
	UnitPrice    int64  `json:"unitPrice"`
	Total        int64  `json:"total"`
}
