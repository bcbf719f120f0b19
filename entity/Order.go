package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderActive = "active"
	OrderPaid   = "paid"
)

type Order struct {
	gorm.Model
	TableID uint  `gorm:"index" json:"tableId"`
	Table   Table `json:"-"` // preload only when the table row itself is needed

	// snapshots so tickets survive later table/user edits
	TableNumber int    `json:"tableNumber"`
	WaiterID    uint   `json:"waiterId"`
	WaiterName  string `json:"waiterName"`

	Total  int64      `json:"total"`
	Status string     `gorm:"not null;default:active" json:"status"`
	PaidAt *time.Time `json:"paidAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}
