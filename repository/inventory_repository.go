package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) FindByID(id uint) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) FindByIDs(ids []uint) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *InventoryRepository) ListAll() ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.DB.Order("category, name").Find(&items).Error
	return items, err
}

// ListLowStock returns items at or below their minimum level.
func (r *InventoryRepository) ListLowStock() ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.DB.Where("quantity <= min_quantity").Order("category, name").Find(&items).Error
	return items, err
}

func (r *InventoryRepository) Create(item *entity.InventoryItem) error {
	return r.DB.Create(item).Error
}

func (r *InventoryRepository) Update(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.InventoryItem{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *InventoryRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.InventoryItem{}, id)
	return res.RowsAffected, res.Error
}

// DeductGuard subtracts qty only while enough stock remains. The WHERE
// clause doubles as the race guard: two concurrent orders cannot both
// pass it past zero.
func (r *InventoryRepository) DeductGuard(tx *gorm.DB, itemID uint, qty float64) (bool, error) {
	res := tx.Model(&entity.InventoryItem{}).
		Where("id = ? AND quantity >= ?", itemID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
