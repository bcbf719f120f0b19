package configs

import (
	"backend/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the configured database. sqlite is the development
// default; postgres is selected with DB_DRIVER=postgres.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	default:
		dialector = sqlite.Open(cfg.DBSource)
	}
	return gorm.Open(dialector, &gorm.Config{})
}

// SetupDatabase migrates the schema. Order matters: reference data first,
// then orders and their items.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Table{},
		&entity.InventoryItem{},
		&entity.MenuItem{}, &entity.RecipeLine{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
