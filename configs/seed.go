package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedUsers creates the initial admin and waiter accounts from env.
// Skipped silently when the credentials are not configured.
func SeedUsers(db *gorm.DB) error {
	seed := []struct {
		userKey, passKey, name, role string
	}{
		{"ADMIN_USERNAME", "ADMIN_PASSWORD", "Administrador", "admin"},
		{"WAITER_USERNAME", "WAITER_PASSWORD", "Juan Pérez", "waiter"},
	}

	for _, s := range seed {
		username := getEnv(s.userKey, "")
		pass := getEnv(s.passKey, "")
		if username == "" || pass == "" {
			log.Printf("skip seeding %s user: missing %s/%s", s.role, s.userKey, s.passKey)
			continue
		}

		var count int64
		if err := db.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entity.User{Username: username, Password: string(hash), Name: s.name, Role: s.role}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedTables creates the dining room: 12 tables, capacity by the house
// pattern (every third table seats 6, even tables seat 4, the rest 2).
func SeedTables(db *gorm.DB) error {
	for i := 1; i <= 12; i++ {
		capacity := 2
		if i%3 == 0 {
			capacity = 6
		} else if i%2 == 0 {
			capacity = 4
		}
		t := entity.Table{Number: i, Capacity: capacity, Status: entity.TableAvailable}
		if err := db.Where(entity.Table{Number: i}).FirstOrCreate(&t).Error; err != nil {
			return err
		}
	}
	return nil
}

type seedIngredient struct {
	name string
	qty  float64
}

// SeedMenu loads the inventory and the menu with its recipes. Idempotent:
// keyed on names, safe to run on every start.
func SeedMenu(db *gorm.DB) error {
	inventory := []entity.InventoryItem{
		{Name: "Carne de Res", Unit: "kg", Quantity: 50, MinQuantity: 10, Category: "Carnes"},
		{Name: "Pollo", Unit: "kg", Quantity: 40, MinQuantity: 15, Category: "Carnes"},
		{Name: "Pescado", Unit: "kg", Quantity: 25, MinQuantity: 8, Category: "Pescados"},
		{Name: "Tomates", Unit: "kg", Quantity: 30, MinQuantity: 10, Category: "Verduras"},
		{Name: "Cebollas", Unit: "kg", Quantity: 20, MinQuantity: 5, Category: "Verduras"},
		{Name: "Papas", Unit: "kg", Quantity: 60, MinQuantity: 20, Category: "Verduras"},
		{Name: "Arroz", Unit: "kg", Quantity: 45, MinQuantity: 15, Category: "Granos"},
		{Name: "Harina", Unit: "kg", Quantity: 35, MinQuantity: 10, Category: "Granos"},
		{Name: "Aceite", Unit: "litros", Quantity: 25, MinQuantity: 8, Category: "Aceites"},
		{Name: "Leche", Unit: "litros", Quantity: 40, MinQuantity: 15, Category: "Lácteos"},
		{Name: "Queso", Unit: "kg", Quantity: 15, MinQuantity: 5, Category: "Lácteos"},
		{Name: "Huevos", Unit: "unidades", Quantity: 120, MinQuantity: 30, Category: "Lácteos"},
		{Name: "Pisco", Unit: "litros", Quantity: 10, MinQuantity: 3, Category: "Bebidas Alcohólicas"},
		{Name: "Vino Tinto", Unit: "litros", Quantity: 15, MinQuantity: 5, Category: "Bebidas Alcohólicas"},
		{Name: "Coca Cola", Unit: "litros", Quantity: 50, MinQuantity: 20, Category: "Bebidas"},
		{Name: "Agua Mineral", Unit: "litros", Quantity: 80, MinQuantity: 30, Category: "Bebidas"},
	}
	invIDs := make(map[string]uint, len(inventory))
	for _, item := range inventory {
		row := item
		if err := db.Where(entity.InventoryItem{Name: item.Name}).FirstOrCreate(&row).Error; err != nil {
			return err
		}
		invIDs[row.Name] = row.ID
	}

	menu := []struct {
		name        string
		price       int64
		category    string
		ingredients []seedIngredient
	}{
		{"Empanadas de Pino", 3500, "Entradas", []seedIngredient{
			{"Carne de Res", 0.15}, {"Cebollas", 0.05}, {"Harina", 0.1}, {"Huevos", 1},
		}},
		{"Ceviche", 8500, "Entradas", []seedIngredient{
			{"Pescado", 0.2}, {"Cebollas", 0.05}, {"Tomates", 0.05},
		}},
		{"Pastel de Choclo", 9500, "Platos Principales", []seedIngredient{
			{"Carne de Res", 0.2}, {"Pollo", 0.1}, {"Cebollas", 0.05}, {"Huevos", 2},
		}},
		{"Cazuela", 8000, "Platos Principales", []seedIngredient{
			{"Carne de Res", 0.2}, {"Papas", 0.2}, {"Arroz", 0.1},
		}},
		{"Lomo a lo Pobre", 12500, "Platos Principales", []seedIngredient{
			{"Carne de Res", 0.3}, {"Papas", 0.2}, {"Huevos", 2}, {"Cebollas", 0.05},
		}},
		{"Completo", 4500, "Platos Principales", []seedIngredient{
			{"Tomates", 0.05}, {"Cebollas", 0.02},
		}},
		{"Sopaipillas", 2500, "Acompañamientos", []seedIngredient{
			{"Harina", 0.15}, {"Aceite", 0.02},
		}},
		{"Ensalada Chilena", 3000, "Acompañamientos", []seedIngredient{
			{"Tomates", 0.1}, {"Cebollas", 0.05},
		}},
		{"Mote con Huesillo", 2500, "Postres", []seedIngredient{
			{"Arroz", 0.1},
		}},
		{"Leche Asada", 3500, "Postres", []seedIngredient{
			{"Leche", 0.3}, {"Huevos", 3},
		}},
		{"Pisco Sour", 5500, "Bebidas", []seedIngredient{
			{"Pisco", 0.05}, {"Huevos", 1},
		}},
		{"Coca Cola", 2000, "Bebidas", []seedIngredient{
			{"Coca Cola", 0.5},
		}},
		{"Agua Mineral", 1500, "Bebidas", []seedIngredient{
			{"Agua Mineral", 0.5},
		}},
	}

	for _, m := range menu {
		item := entity.MenuItem{Name: m.name, Price: m.price, Category: m.category, Available: true}
		if err := db.Where(entity.MenuItem{Name: m.name}).FirstOrCreate(&item).Error; err != nil {
			return err
		}

		var lines int64
		if err := db.Model(&entity.RecipeLine{}).Where("menu_item_id = ?", item.ID).Count(&lines).Error; err != nil {
			return err
		}
		if lines > 0 {
			continue
		}
		for _, ing := range m.ingredients {
			invID, ok := invIDs[ing.name]
			if !ok {
				continue
			}
			line := entity.RecipeLine{MenuItemID: item.ID, InventoryItemID: invID, Quantity: ing.qty}
			if err := db.Create(&line).Error; err != nil {
				return err
			}
		}
	}

	log.Println("menu and inventory seeded")
	return nil
}
