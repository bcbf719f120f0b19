package configs

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	require.NoError(t, SetupDatabase(db))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "admin123")
	t.Setenv("WAITER_USERNAME", "mesero")
	t.Setenv("WAITER_PASSWORD", "mesero123")

	for i := 0; i < 2; i++ {
		require.NoError(t, SeedUsers(db))
		require.NoError(t, SeedTables(db))
		require.NoError(t, SeedMenu(db))
	}

	var users, tables, menu, inventory, recipes int64
	db.Model(&entity.User{}).Count(&users)
	db.Model(&entity.Table{}).Count(&tables)
	db.Model(&entity.MenuItem{}).Count(&menu)
	db.Model(&entity.InventoryItem{}).Count(&inventory)
	db.Model(&entity.RecipeLine{}).Count(&recipes)

	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(12), tables)
	assert.Equal(t, int64(13), menu)
	assert.Equal(t, int64(16), inventory)
	assert.Greater(t, recipes, int64(0))
}

func TestSeedDetails(t *testing.T) {
	db := setupSeedDB(t)

	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "admin123")
	t.Setenv("WAITER_USERNAME", "")
	t.Setenv("WAITER_PASSWORD", "")

	require.NoError(t, SeedUsers(db))
	require.NoError(t, SeedTables(db))
	require.NoError(t, SeedMenu(db))

	t.Run("admin password is hashed", func(t *testing.T) {
		var admin entity.User
		require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
		assert.Equal(t, "admin", admin.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))
	})

	t.Run("waiter skipped when unset", func(t *testing.T) {
		var count int64
		db.Model(&entity.User{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("table capacities follow the house pattern", func(t *testing.T) {
		var tables []entity.Table
		require.NoError(t, db.Order("number").Find(&tables).Error)
		require.Len(t, tables, 12)
		assert.Equal(t, 2, tables[0].Capacity)  // 1
		assert.Equal(t, 4, tables[1].Capacity)  // 2
		assert.Equal(t, 6, tables[2].Capacity)  // 3
		assert.Equal(t, 6, tables[11].Capacity) // 12
	})

	t.Run("recipes resolve to inventory rows", func(t *testing.T) {
		var item entity.MenuItem
		require.NoError(t, db.Preload("Ingredients").
			Where("name = ?", "Empanadas de Pino").First(&item).Error)
		require.Len(t, item.Ingredients, 4)

		var beef entity.InventoryItem
		require.NoError(t, db.Where("name = ?", "Carne de Res").First(&beef).Error)
		found := false
		for _, line := range item.Ingredients {
			if line.InventoryItemID == beef.ID {
				found = true
				assert.InDelta(t, 0.15, line.Quantity, 1e-9)
			}
		}
		assert.True(t, found)
	})
}
