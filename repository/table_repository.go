package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListAll returns the dining room sorted by table number.
func (r *TableRepository) ListAll() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("number").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Create(tx *gorm.DB, t *entity.Table) error {
	return tx.Create(t).Error
}

// MaxNumber returns the highest table number, 0 when the room is empty.
func (r *TableRepository) MaxNumber() (int, error) {
	var row struct{ N *int }
	if err := r.DB.Model(&entity.Table{}).Select("MAX(number) AS n").Scan(&row).Error; err != nil {
		return 0, err
	}
	if row.N == nil {
		return 0, nil
	}
	return *row.N, nil
}

// SetStatus flips status without touching the order reference.
func (r *TableRepository) SetStatus(tx *gorm.DB, tableID uint, status string) error {
	return tx.Model(&entity.Table{}).Where("id = ?", tableID).
		Update("status", status).Error
}

// Occupy marks the table busy and points it at its open order.
func (r *TableRepository) Occupy(tx *gorm.DB, tableID, orderID uint) error {
	return tx.Model(&entity.Table{}).Where("id = ?", tableID).
		Updates(map[string]any{
			"status":           entity.TableOccupied,
			"current_order_id": orderID,
		}).Error
}

// Release returns the table to the floor and clears the order reference.
func (r *TableRepository) Release(tx *gorm.DB, tableID uint) error {
	return tx.Model(&entity.Table{}).Where("id = ?", tableID).
		Updates(map[string]any{
			"status":           entity.TableAvailable,
			"current_order_id": nil,
		}).Error
}
