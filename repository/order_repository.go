package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindOpenForTable returns the table's unpaid order, if any.
func (r *OrderRepository) FindOpenForTable(tableID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Where("table_id = ? AND status <> ?", tableID, entity.OrderPaid).
		Order("created_at DESC").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListActive() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("status <> ?", entity.OrderPaid).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// ListPaidSince returns paid orders whose pay time (created time when the
// pay stamp is missing on legacy rows) falls at or after the cutoff.
func (r *OrderRepository) ListPaidSince(cutoff time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("status = ?", entity.OrderPaid).
		Where("COALESCE(paid_at, created_at) >= ?", cutoff).
		Order("COALESCE(paid_at, created_at) DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListPaid() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("status = ?", entity.OrderPaid).
		Order("COALESCE(paid_at, created_at) DESC").
		Find(&orders).Error
	return orders, err
}

// MarkPaidGuard flips active → paid exactly once; RowsAffected 0 means the
// order was already paid (or gone) and nothing changed.
func (r *OrderRepository) MarkPaidGuard(tx *gorm.DB, orderID uint, paidAt time.Time) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderActive).
		Updates(map[string]any{
			"status":  entity.OrderPaid,
			"paid_at": paidAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) UpdateTotal(tx *gorm.DB, orderID uint, total int64) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("total", total).Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// SumItems recomputes an order's total from its rows.
func (r *OrderRepository) SumItems(tx *gorm.DB, orderID uint) (int64, error) {
	var row struct{ Total *int64 }
	err := tx.Model(&entity.OrderItem{}).
		Select("SUM(total) AS total").
		Where("order_id = ?", orderID).
		Scan(&row).Error
	if err != nil {
		return 0, err
	}
	if row.Total == nil {
		return 0, nil
	}
	return *row.Total, nil
}
