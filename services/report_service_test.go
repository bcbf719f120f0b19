package services

import (
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPaidOrder(t *testing.T, db *gorm.DB, total int64, paidAt time.Time) *entity.Order {
	t.Helper()
	o := entity.Order{
		TableID: 1, TableNumber: 1, WaiterName: "Juan Pérez",
		Total: total, Status: entity.OrderPaid, PaidAt: &paidAt,
	}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("create paid order: %v", err)
	}
	return &o
}

func TestSalesReport(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(repository.NewOrderRepository(db))

	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

	today := createPaidOrder(t, db, 13500, now.Add(-2*time.Hour))
	thisWeek := createPaidOrder(t, db, 8000, now.Add(-3*24*time.Hour))
	thisMonth := createPaidOrder(t, db, 9500, now.Add(-10*24*time.Hour))
	thisYear := createPaidOrder(t, db, 2500, now.Add(-60*24*time.Hour))
	createPaidOrder(t, db, 100000, now.Add(-400*24*time.Hour)) // last year

	// open order must never count
	active := entity.Order{TableID: 2, TableNumber: 2, Total: 5000, Status: entity.OrderActive}
	require.NoError(t, db.Create(&active).Error)

	t.Run("day", func(t *testing.T) {
		rep, err := svc.salesAt("day", now)
		require.NoError(t, err)
		assert.Equal(t, int64(13500), rep.TotalSales)
		assert.Equal(t, 1, rep.OrderCount)
		require.Len(t, rep.Orders, 1)
		assert.Equal(t, today.ID, rep.Orders[0].ID)
	})

	t.Run("week is rolling seven days", func(t *testing.T) {
		rep, err := svc.salesAt("week", now)
		require.NoError(t, err)
		assert.Equal(t, int64(13500+8000), rep.TotalSales)
		assert.Equal(t, 2, rep.OrderCount)
		require.Len(t, rep.Orders, 2)
		assert.Equal(t, today.ID, rep.Orders[0].ID)
		assert.Equal(t, thisWeek.ID, rep.Orders[1].ID)
	})

	t.Run("month matches calendar month", func(t *testing.T) {
		rep, err := svc.salesAt("month", now)
		require.NoError(t, err)
		assert.Equal(t, int64(13500+8000+9500), rep.TotalSales)
		assert.Equal(t, 3, rep.OrderCount)
	})

	t.Run("year matches calendar year", func(t *testing.T) {
		rep, err := svc.salesAt("year", now)
		require.NoError(t, err)
		assert.Equal(t, int64(13500+8000+9500+2500), rep.TotalSales)
		assert.Equal(t, 4, rep.OrderCount)
	})

	t.Run("orders come most recent first", func(t *testing.T) {
		rep, err := svc.salesAt("year", now)
		require.NoError(t, err)
		require.Len(t, rep.Orders, 4)
		assert.Equal(t, today.ID, rep.Orders[0].ID)
		assert.Equal(t, thisWeek.ID, rep.Orders[1].ID)
		assert.Equal(t, thisMonth.ID, rep.Orders[2].ID)
		assert.Equal(t, thisYear.ID, rep.Orders[3].ID)
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := svc.salesAt("quarter", now)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestSalesReportEdgeCases(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(repository.NewOrderRepository(db))
	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

	t.Run("empty window", func(t *testing.T) {
		rep, err := svc.salesAt("day", now)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rep.TotalSales)
		assert.Equal(t, 0, rep.OrderCount)
		assert.NotNil(t, rep.Orders)
		assert.Len(t, rep.Orders, 0)
	})

	t.Run("paid order with no items counts with total zero", func(t *testing.T) {
		createPaidOrder(t, db, 0, now.Add(-time.Hour))
		rep, err := svc.salesAt("day", now)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rep.TotalSales)
		assert.Equal(t, 1, rep.OrderCount)
	})

	t.Run("missing pay stamp falls back to creation time", func(t *testing.T) {
		o := entity.Order{TableID: 3, TableNumber: 3, Total: 4500, Status: entity.OrderPaid}
		require.NoError(t, db.Create(&o).Error)
		// legacy row: paid but never stamped
		require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", o.ID).
			Updates(map[string]any{"paid_at": nil, "created_at": now.Add(-30 * time.Minute)}).Error)

		rep, err := svc.salesAt("day", now)
		require.NoError(t, err)
		assert.Equal(t, int64(4500), rep.TotalSales)
		assert.Equal(t, 2, rep.OrderCount)
	})
}
