package entity

import (
	"gorm.io/gorm"
)

// RecipeLine is one ingredient draw of a menu item: Quantity stock units
// are consumed per plate ordered.
type RecipeLine struct {
	gorm.Model
	MenuItemID uint `gorm:"index" json:"menuItemId"`

	InventoryItemID uint          `json:"inventoryItemId"`
	InventoryItem   InventoryItem `json:"-"`

	Quantity float64 `json:"quantity"`
}

func (RecipeLine) TableName() string { return "menu_item_ingredients" }
