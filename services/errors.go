package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTableNotFound         = errors.New("table not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrMenuItemNotFound      = errors.New("menu item not found")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrOrderClosed           = errors.New("order already paid")
	ErrTableBusy             = errors.New("table has an open order")
	ErrInvalidPeriod         = errors.New("invalid report period")
)

// StockIssue is one (menu item, ingredient) pair an order could not cover.
type StockIssue struct {
	ItemName       string `json:"itemName"`
	IngredientName string `json:"ingredientName"`
}

// StockError reports every shortfall found while validating an order, not
// just the first one, so the waiter sees the whole picture at once.
type StockError struct {
	Issues []StockIssue
}

func (e *StockError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: falta %s", is.ItemName, is.IngredientName))
	}
	return "stock insuficiente para: " + strings.Join(parts, "; ")
}

// AsStockError unwraps err into *StockError when it carries one.
func AsStockError(err error) (*StockError, bool) {
	var se *StockError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
