package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	Price     int64  `json:"price"`
	Category  string `json:"category"`
	Available bool   `gorm:"default:true" json:"available"`

	// a menu item with no recipe lines is never stock-constrained
	Ingredients []RecipeLine `gorm:"foreignKey:MenuItemID" json:"ingredients,omitempty"`

	OrderItems []OrderItem `json:"-"`
}
