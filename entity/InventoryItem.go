package entity

import (
	"gorm.io/gorm"
)

type InventoryItem struct {
	gorm.Model
	Name     string  `gorm:"uniqueIndex;not null" json:"name"`
	Unit     string  `json:"unit"` // kg, litros, unidades...
	Quantity float64 `json:"quantity"`

	// at or below this level the item shows up in the low-stock report
	MinQuantity float64 `json:"minQuantity"`
	Category    string  `json:"category"`

	RecipeLines []RecipeLine `gorm:"foreignKey:InventoryItemID" json:"-"`
}
