package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ListAll returns the menu with recipes, grouped the way the card reads.
func (r *MenuRepository) ListAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Ingredients").
		Order("category, name").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Ingredients").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDs resolves a batch of menu items with their recipes in one query.
func (r *MenuRepository) FindByIDs(ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Preload("Ingredients").Where("id IN ?", ids).Find(&items).Error
	return items, err
}
