package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// LedgerService answers whether the kitchen can plate an item and burns
// stock when it does. Menu and inventory are its reference data.
type LedgerService struct {
	DB       *gorm.DB
	MenuRepo *repository.MenuRepository
	InvRepo  *repository.InventoryRepository
}

func NewLedgerService(db *gorm.DB, menuRepo *repository.MenuRepository, invRepo *repository.InventoryRepository) *LedgerService {
	return &LedgerService{DB: db, MenuRepo: menuRepo, InvRepo: invRepo}
}

type StockCheck struct {
	Available    bool     `json:"available"`
	MissingItems []string `json:"missingItems"`
}

// CheckStock reports whether qty plates of a menu item are coverable by
// current stock, naming every ingredient that falls short. Items without a
// recipe are unconstrained (drinks tracked at bottle granularity).
func (s *LedgerService) CheckStock(menuItemID uint, qty int) (*StockCheck, error) {
	item, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return s.checkRecipe(item.Ingredients, qty)
}

func (s *LedgerService) checkRecipe(lines []entity.RecipeLine, qty int) (*StockCheck, error) {
	check := &StockCheck{Available: true, MissingItems: []string{}}
	if len(lines) == 0 {
		return check, nil
	}

	for _, line := range lines {
		inv, err := s.InvRepo.FindByID(line.InventoryItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// recipe pointing at a deleted ingredient does not block the dish
				continue
			}
			return nil, err
		}
		if inv.Quantity < line.Quantity*float64(qty) {
			check.MissingItems = append(check.MissingItems, inv.Name)
		}
	}
	check.Available = len(check.MissingItems) == 0
	return check, nil
}

// Deduct burns stock for qty plates. Returns false with inventory untouched
// when any ingredient falls short; the per-row guarded updates keep a lost
// race from driving quantities negative.
func (s *LedgerService) Deduct(menuItemID uint, qty int) (bool, error) {
	item, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrMenuItemNotFound
		}
		return false, err
	}
	if len(item.Ingredients) == 0 {
		return true, nil
	}

	check, err := s.checkRecipe(item.Ingredients, qty)
	if err != nil {
		return false, err
	}
	if !check.Available {
		return false, nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, line := range item.Ingredients {
			ok, err := s.InvRepo.DeductGuard(tx, line.InventoryItemID, line.Quantity*float64(qty))
			if err != nil {
				return err
			}
			if !ok {
				var gone entity.InventoryItem
				if errors.Is(tx.First(&gone, line.InventoryItemID).Error, gorm.ErrRecordNotFound) {
					// recipe pointing at a deleted ingredient, same as the check
					continue
				}
				// raced with another deduction; roll the whole batch back
				return &StockError{Issues: []StockIssue{{ItemName: item.Name}}}
			}
		}
		return nil
	})
	if err != nil {
		if _, isStock := AsStockError(err); isStock {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// LowStock lists inventory at or below its minimum level.
func (s *LedgerService) LowStock() ([]entity.InventoryItem, error) {
	return s.InvRepo.ListLowStock()
}

// ----- Admin inventory management -----

func (s *LedgerService) ListInventory() ([]entity.InventoryItem, error) {
	return s.InvRepo.ListAll()
}

func (s *LedgerService) AddInventoryItem(item *entity.InventoryItem) error {
	if item.Quantity < 0 || item.MinQuantity < 0 {
		return errors.New("quantity must not be negative")
	}
	return s.InvRepo.Create(item)
}

// UpdateInventoryItem restocks or re-thresholds an item. Only quantity and
// min_quantity are writable; both must stay non-negative.
func (s *LedgerService) UpdateInventoryItem(id uint, quantity, minQuantity *float64) (*entity.InventoryItem, error) {
	updates := map[string]any{}
	if quantity != nil {
		if *quantity < 0 {
			return nil, errors.New("quantity must not be negative")
		}
		updates["quantity"] = *quantity
	}
	if minQuantity != nil {
		if *minQuantity < 0 {
			return nil, errors.New("min quantity must not be negative")
		}
		updates["min_quantity"] = *minQuantity
	}
	if len(updates) == 0 {
		return nil, errors.New("nothing to update")
	}

	affected, err := s.InvRepo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInventoryItemNotFound
	}
	return s.InvRepo.FindByID(id)
}

func (s *LedgerService) RemoveInventoryItem(id uint) error {
	affected, err := s.InvRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInventoryItemNotFound
	}
	return nil
}
