package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// GET /reports/sales?period=day|week|month|year
func (rc *ReportController) Sales(c *gin.Context) {
	period := c.DefaultQuery("period", "day")

	report, err := rc.Service.Sales(period)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, report)
}
