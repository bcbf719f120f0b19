package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// orderError maps workflow failures onto the response envelope.
func orderError(c *gin.Context, err error) {
	if se, ok := services.AsStockError(err); ok {
		resp.Unprocessable(c, se.Error(), se.Issues)
		return
	}
	switch {
	case errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrMenuItemNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrOrderClosed):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders?active=true
func (oc *OrderController) List(c *gin.Context) {
	var (
		orders any
		err    error
	)
	if c.Query("active") == "true" {
		orders, err = oc.Service.ListActive()
	} else {
		orders, err = oc.Service.ListAll()
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.Service.Get(uint(id))
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, order)
}

type AddItemsReq struct {
	Items []services.OrderItemIn `json:"items" binding:"required,min=1"`
}

// POST /orders/:id/items
func (oc *OrderController) AddItems(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req AddItemsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.AddItems(uint(id), req.Items)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/pay (admin)
func (oc *OrderController) Pay(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.Service.Pay(uint(id))
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, order)
}
