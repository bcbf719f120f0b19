package services

import (
	"testing"

	"backend/entity"
	"backend/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Table{},
		&entity.InventoryItem{},
		&entity.MenuItem{}, &entity.RecipeLine{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
		repository.NewMenuRepository(db),
		repository.NewInventoryRepository(db),
		repository.NewUserRepository(db),
	)
}

func newLedgerService(db *gorm.DB) *LedgerService {
	return NewLedgerService(db,
		repository.NewMenuRepository(db),
		repository.NewInventoryRepository(db),
	)
}

// ----- fixtures -----

func createWaiter(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	u := entity.User{Username: "mesero", Password: "x", Name: "Juan Pérez", Role: "waiter"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create waiter: %v", err)
	}
	return &u
}

func createTable(t *testing.T, db *gorm.DB, number int) *entity.Table {
	t.Helper()
	tbl := entity.Table{Number: number, Capacity: 4, Status: entity.TableAvailable}
	if err := db.Create(&tbl).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	return &tbl
}

func createInventory(t *testing.T, db *gorm.DB, name string, qty, min float64) *entity.InventoryItem {
	t.Helper()
	item := entity.InventoryItem{Name: name, Unit: "kg", Quantity: qty, MinQuantity: min, Category: "Test"}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create inventory item: %v", err)
	}
	return &item
}

type recipeIn struct {
	invID uint
	qty   float64
}

func createMenuItem(t *testing.T, db *gorm.DB, name string, price int64, recipe ...recipeIn) *entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{Name: name, Price: price, Category: "Test", Available: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	for _, r := range recipe {
		line := entity.RecipeLine{MenuItemID: item.ID, InventoryItemID: r.invID, Quantity: r.qty}
		if err := db.Create(&line).Error; err != nil {
			t.Fatalf("create recipe line: %v", err)
		}
	}
	return &item
}

func inventoryQty(t *testing.T, db *gorm.DB, id uint) float64 {
	t.Helper()
	var item entity.InventoryItem
	if err := db.First(&item, id).Error; err != nil {
		t.Fatalf("reload inventory item: %v", err)
	}
	return item.Quantity
}
