package services

import (
	"time"

	"backend/entity"
	"backend/repository"
)

type ReportService struct {
	Repo *repository.OrderRepository
}

func NewReportService(repo *repository.OrderRepository) *ReportService {
	return &ReportService{Repo: repo}
}

type SalesReport struct {
	Period     string         `json:"period"`
	TotalSales int64          `json:"totalSales"`
	OrderCount int            `json:"orderCount"`
	Orders     []entity.Order `json:"orders"`
}

// paidTime is the timestamp a paid order is reported under; legacy rows
// without a pay stamp fall back to creation time.
func paidTime(o *entity.Order) time.Time {
	if o.PaidAt != nil {
		return *o.PaidAt
	}
	return o.CreatedAt
}

// Sales aggregates paid orders inside the period window anchored at now:
// day = same calendar day, week = rolling 7 days, month = same calendar
// month, year = same calendar year. Unpaid orders never count.
func (s *ReportService) Sales(period string) (*SalesReport, error) {
	return s.salesAt(period, time.Now())
}

func (s *ReportService) salesAt(period string, now time.Time) (*SalesReport, error) {
	// the rolling week window maps straight onto a cutoff query
	if period == "week" {
		paid, err := s.Repo.ListPaidSince(now.Add(-7 * 24 * time.Hour))
		if err != nil {
			return nil, err
		}
		report := &SalesReport{Period: period, Orders: paid}
		if report.Orders == nil {
			report.Orders = []entity.Order{}
		}
		for i := range paid {
			report.TotalSales += paid[i].Total
			report.OrderCount++
		}
		return report, nil
	}

	var inWindow func(t time.Time) bool
	switch period {
	case "day":
		y, m, d := now.Date()
		inWindow = func(t time.Time) bool {
			ty, tm, td := t.Date()
			return ty == y && tm == m && td == d
		}
	case "month":
		inWindow = func(t time.Time) bool {
			return t.Month() == now.Month() && t.Year() == now.Year()
		}
	case "year":
		inWindow = func(t time.Time) bool { return t.Year() == now.Year() }
	default:
		return nil, ErrInvalidPeriod
	}

	paid, err := s.Repo.ListPaid()
	if err != nil {
		return nil, err
	}

	report := &SalesReport{Period: period, Orders: []entity.Order{}}
	for i := range paid {
		if !inWindow(paidTime(&paid[i])) {
			continue
		}
		report.Orders = append(report.Orders, paid[i])
		report.TotalSales += paid[i].Total
		report.OrderCount++
	}
	return report, nil
}
