package services

import (
	"errors"
	"sync"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// EventPublisher pushes state changes to dashboard clients. The websocket
// hub implements it; a nil publisher is a no-op.
type EventPublisher interface {
	Publish(event string, payload any)
}

// OrderService owns the only multi-step write flow in the system: validate
// stock, burn it, persist the ticket, flip the table.
type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	TableRepo *repository.TableRepository
	MenuRepo  *repository.MenuRepository
	InvRepo   *repository.InventoryRepository
	UserRepo  *repository.UserRepository
	Events    EventPublisher

	// one writer per table across validate+deduct+persist
	mu         sync.Mutex
	tableLocks map[uint]*sync.Mutex
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	menuRepo *repository.MenuRepository,
	invRepo *repository.InventoryRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{
		DB:         db,
		Repo:       repo,
		TableRepo:  tableRepo,
		MenuRepo:   menuRepo,
		InvRepo:    invRepo,
		UserRepo:   userRepo,
		tableLocks: make(map[uint]*sync.Mutex),
	}
}

func (s *OrderService) lockTable(tableID uint) func() {
	s.mu.Lock()
	l, ok := s.tableLocks[tableID]
	if !ok {
		l = &sync.Mutex{}
		s.tableLocks[tableID] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (s *OrderService) publish(event string, payload any) {
	if s.Events != nil {
		s.Events.Publish(event, payload)
	}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty" binding:"required,min=1"`
}

type CreateOrderReq struct {
	TableID uint          `json:"tableId" binding:"required"`
	Items   []OrderItemIn `json:"items" binding:"required,min=1"`
}

// pendingItem carries the menu snapshot from validation to persistence.
type pendingItem struct {
	menuItemID uint
	name       string
	qty        int
	unitPrice  int64
}

// pendingDeduction is an accumulated ingredient draw for one order batch.
type pendingDeduction struct {
	inventoryItemID uint
	qty             float64
}

// validateBatch resolves the requested items and runs one stock pass over
// hypothetical post-deduction balances, so two dishes drawing on the same
// ingredient are validated together rather than independently.
func (s *OrderService) validateBatch(items []OrderItemIn) ([]pendingItem, []pendingDeduction, error) {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.MenuItemID)
	}
	menuItems, err := s.MenuRepo.FindByIDs(ids)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[uint]*entity.MenuItem, len(menuItems))
	for i := range menuItems {
		byID[menuItems[i].ID] = &menuItems[i]
	}

	invIDs := make([]uint, 0)
	seen := make(map[uint]bool)
	for _, m := range menuItems {
		for _, line := range m.Ingredients {
			if !seen[line.InventoryItemID] {
				seen[line.InventoryItemID] = true
				invIDs = append(invIDs, line.InventoryItemID)
			}
		}
	}
	balances := make(map[uint]float64, len(invIDs))
	invNames := make(map[uint]string, len(invIDs))
	if len(invIDs) > 0 {
		invItems, err := s.InvRepo.FindByIDs(invIDs)
		if err != nil {
			return nil, nil, err
		}
		for _, inv := range invItems {
			balances[inv.ID] = inv.Quantity
			invNames[inv.ID] = inv.Name
		}
	}

	issues := []StockIssue{}
	draws := make(map[uint]float64)
	pending := make([]pendingItem, 0, len(items))

	for _, it := range items {
		m, ok := byID[it.MenuItemID]
		if !ok {
			return nil, nil, ErrMenuItemNotFound
		}
		pending = append(pending, pendingItem{
			menuItemID: m.ID, name: m.Name, qty: it.Qty, unitPrice: m.Price,
		})

		for _, line := range m.Ingredients {
			name, tracked := invNames[line.InventoryItemID]
			if !tracked {
				// ingredient row was deleted; treat the line as unconstrained
				continue
			}
			required := line.Quantity * float64(it.Qty)
			remaining := balances[line.InventoryItemID] - draws[line.InventoryItemID]
			if remaining < required {
				issues = append(issues, StockIssue{ItemName: m.Name, IngredientName: name})
			} else {
				draws[line.InventoryItemID] += required
			}
		}
	}

	if len(issues) > 0 {
		return nil, nil, &StockError{Issues: issues}
	}

	deductions := make([]pendingDeduction, 0, len(draws))
	for invID, qty := range draws {
		deductions = append(deductions, pendingDeduction{inventoryItemID: invID, qty: qty})
	}
	return pending, deductions, nil
}

// applyDeductions burns the accumulated draws with per-row guards; any
// guard miss aborts the transaction with a stock error.
func (s *OrderService) applyDeductions(tx *gorm.DB, deductions []pendingDeduction) error {
	for _, d := range deductions {
		ok, err := s.InvRepo.DeductGuard(tx, d.inventoryItemID, d.qty)
		if err != nil {
			return err
		}
		if !ok {
			var inv entity.InventoryItem
			lookErr := tx.First(&inv, d.inventoryItemID).Error
			if errors.Is(lookErr, gorm.ErrRecordNotFound) {
				// ingredient row deleted since validation; the line is unconstrained
				continue
			}
			if lookErr != nil {
				return lookErr
			}
			return &StockError{Issues: []StockIssue{{IngredientName: inv.Name}}}
		}
	}
	return nil
}

// ----- Create -----

// Create opens an order for a table. A table that already has an open order
// gets the new items merged into it instead of a second ticket; the waiter
// screen fires "create" for both gestures.
func (s *OrderService) Create(waiterID uint, req *CreateOrderReq) (*entity.Order, error) {
	unlock := s.lockTable(req.TableID)
	defer unlock()

	waiterName := ""
	if waiter, err := s.UserRepo.FindByID(waiterID); err == nil {
		waiterName = waiter.Name
	}

	table, err := s.TableRepo.FindByID(req.TableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	if open, err := s.Repo.FindOpenForTable(table.ID); err == nil {
		return s.addItems(open, req.Items)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pending, deductions, err := s.validateBatch(req.Items)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, p := range pending {
		total += p.unitPrice * int64(p.qty)
	}

	var created entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.applyDeductions(tx, deductions); err != nil {
			return err
		}

		created = entity.Order{
			TableID:     table.ID,
			TableNumber: table.Number,
			WaiterID:    waiterID,
			WaiterName:  waiterName,
			Total:       total,
			Status:      entity.OrderActive,
		}
		if err := s.Repo.Create(tx, &created); err != nil {
			return err
		}
		for _, p := range pending {
			oi := entity.OrderItem{
				OrderID:      created.ID,
				MenuItemID:   p.menuItemID,
				MenuItemName: p.name,
				Qty:          p.qty,
				UnitPrice:    p.unitPrice,
				Total:        p.unitPrice * int64(p.qty),
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
		}
		return s.TableRepo.Occupy(tx, table.ID, created.ID)
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Repo.FindByID(created.ID)
	if err != nil {
		return nil, err
	}
	s.publish("order-created", out)
	return out, nil
}

// ----- Add items -----

// AddItems appends a batch to an open order, validating only the new items
// and recomputing the total over everything on the ticket.
func (s *OrderService) AddItems(orderID uint, items []OrderItemIn) (*entity.Order, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	unlock := s.lockTable(order.TableID)
	defer unlock()

	// re-read under the lock; the order may have been paid meanwhile
	order, err = s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.addItems(order, items)
}

func (s *OrderService) addItems(order *entity.Order, items []OrderItemIn) (*entity.Order, error) {
	if order.Status == entity.OrderPaid {
		return nil, ErrOrderClosed
	}

	pending, deductions, err := s.validateBatch(items)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.applyDeductions(tx, deductions); err != nil {
			return err
		}
		for _, p := range pending {
			oi := entity.OrderItem{
				OrderID:      order.ID,
				MenuItemID:   p.menuItemID,
				MenuItemName: p.name,
				Qty:          p.qty,
				UnitPrice:    p.unitPrice,
				Total:        p.unitPrice * int64(p.qty),
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
		}
		total, err := s.Repo.SumItems(tx, order.ID)
		if err != nil {
			return err
		}
		return s.Repo.UpdateTotal(tx, order.ID, total)
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Repo.FindByID(order.ID)
	if err != nil {
		return nil, err
	}
	s.publish("order-updated", out)
	return out, nil
}

// ----- Pay / Release -----

// Pay settles an order and frees its table. Idempotent: paying a paid
// order returns it unchanged.
func (s *OrderService) Pay(orderID uint) (*entity.Order, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	unlock := s.lockTable(order.TableID)
	defer unlock()

	if order.Status == entity.OrderPaid {
		return order, nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		flipped, err := s.Repo.MarkPaidGuard(tx, order.ID, time.Now())
		if err != nil {
			return err
		}
		if !flipped {
			// lost the race to another Pay; nothing left to do
			return nil
		}
		return s.TableRepo.Release(tx, order.TableID)
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Repo.FindByID(order.ID)
	if err != nil {
		return nil, err
	}
	s.publish("order-paid", out)
	return out, nil
}

// Release settles whatever open order a table holds and returns it to the
// floor. A stale order reference fails without touching anything.
func (s *OrderService) Release(tableID uint) (*entity.Table, error) {
	unlock := s.lockTable(tableID)
	defer unlock()

	table, err := s.TableRepo.FindByID(tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	if table.CurrentOrderID != nil {
		if _, err := s.Repo.FindByID(*table.CurrentOrderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, err
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if table.CurrentOrderID != nil {
			if _, err := s.Repo.MarkPaidGuard(tx, *table.CurrentOrderID, time.Now()); err != nil {
				return err
			}
		}
		return s.TableRepo.Release(tx, table.ID)
	})
	if err != nil {
		return nil, err
	}

	out, err := s.TableRepo.FindByID(table.ID)
	if err != nil {
		return nil, err
	}
	s.publish("table-changed", out)
	return out, nil
}

// ----- Reads -----

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) ListActive() ([]entity.Order, error) {
	return s.Repo.ListActive()
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}
