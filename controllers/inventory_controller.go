package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	Ledger *services.LedgerService
}

func NewInventoryController(ledger *services.LedgerService) *InventoryController {
	return &InventoryController{Ledger: ledger}
}

// GET /inventory
func (ic *InventoryController) List(c *gin.Context) {
	items, err := ic.Ledger.ListInventory()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /inventory/low-stock
func (ic *InventoryController) LowStock(c *gin.Context) {
	items, err := ic.Ledger.LowStock()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type CreateInventoryReq struct {
	Name        string  `json:"name" binding:"required"`
	Unit        string  `json:"unit" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"min=0"`
	MinQuantity float64 `json:"minQuantity" binding:"min=0"`
	Category    string  `json:"category"`
}

// POST /inventory (admin)
func (ic *InventoryController) Create(c *gin.Context) {
	var req CreateInventoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.InventoryItem{
		Name:        req.Name,
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Category:    req.Category,
	}
	if err := ic.Ledger.AddInventoryItem(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

type UpdateInventoryReq struct {
	Quantity    *float64 `json:"quantity"`
	MinQuantity *float64 `json:"minQuantity"`
}

// PATCH /inventory/:id (admin): restock or adjust the threshold
func (ic *InventoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateInventoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ic.Ledger.UpdateInventoryItem(uint(id), req.Quantity, req.MinQuantity)
	if err != nil {
		if errors.Is(err, services.ErrInventoryItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, item)
}

// DELETE /inventory/:id (admin)
func (ic *InventoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ic.Ledger.RemoveInventoryItem(uint(id)); err != nil {
		if errors.Is(err, services.ErrInventoryItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
