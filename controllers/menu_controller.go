package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Repo   *repository.MenuRepository
	Ledger *services.LedgerService
}

func NewMenuController(repo *repository.MenuRepository, ledger *services.LedgerService) *MenuController {
	return &MenuController{Repo: repo, Ledger: ledger}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id/stock?qty=N, can the kitchen plate N of this item right now
func (mc *MenuController) CheckStock(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	qty, err := strconv.Atoi(c.DefaultQuery("qty", "1"))
	if err != nil || qty < 1 {
		resp.BadRequest(c, "qty must be a positive integer")
		return
	}

	check, err := mc.Ledger.CheckStock(uint(id), qty)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, check)
}
