package entity

import (
	"gorm.io/gorm"
)

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

type Table struct {
	gorm.Model
	Number   int    `gorm:"uniqueIndex;not null" json:"number"`
	Capacity int    `json:"capacity"`
	Status   string `gorm:"not null;default:available" json:"status"`

	// set while the table has an open order, nil otherwise
	CurrentOrderID *uint `json:"currentOrderId"`

	Orders []Order `gorm:"foreignKey:TableID" json:"-"`
}
