package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:waiter" json:"role"` // admin | waiter

	Orders []Order `gorm:"foreignKey:WaiterID" json:"-"`
}
