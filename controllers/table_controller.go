package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Service *services.TableService
	Orders  *services.OrderService
}

func NewTableController(svc *services.TableService, orders *services.OrderService) *TableController {
	return &TableController{Service: svc, Orders: orders}
}

// GET /tables
func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

type UpdateTableStatusReq struct {
	Status string `json:"status" binding:"required,oneof=available occupied reserved"`
}

// PATCH /tables/:id/status
func (tc *TableController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateTableStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table, err := tc.Service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTableNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrTableBusy):
			resp.Conflict(c, err.Error())
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}
	resp.OK(c, table)
}

type AddTablesReq struct {
	Count    int `json:"count" binding:"required,min=1"`
	Capacity int `json:"capacity"`
}

// POST /tables (admin)
func (tc *TableController) Add(c *gin.Context) {
	var req AddTablesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	tables, err := tc.Service.Add(req.Count, req.Capacity)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"items": tables})
}

// POST /tables/:id/release (admin): settle the open order and free the table
func (tc *TableController) Release(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	table, err := tc.Orders.Release(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTableNotFound), errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, table)
}
