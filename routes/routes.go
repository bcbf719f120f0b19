package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	invRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Live updates
	hub := ws.NewOrderHub()
	go hub.Run()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	ledgerSvc := services.NewLedgerService(db, menuRepo, invRepo)
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, menuRepo, invRepo, userRepo)
	orderSvc.Events = hub
	tableSvc := services.NewTableService(db, tableRepo)
	tableSvc.Events = hub
	reportSvc := services.NewReportService(orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	tableCtrl := controllers.NewTableController(tableSvc, orderSvc)
	menuCtrl := controllers.NewMenuController(menuRepo, ledgerSvc)
	invCtrl := controllers.NewInventoryController(ledgerSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reportCtrl := controllers.NewReportController(reportSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Floor and menu (any logged-in staff)
	staff := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		staff.GET("/tables", tableCtrl.List)
		staff.PATCH("/tables/:id/status", tableCtrl.UpdateStatus)
		staff.GET("/menu", menuCtrl.List)
		staff.GET("/menu/:id/stock", menuCtrl.CheckStock)
		staff.POST("/orders", orderCtrl.Create)
		staff.GET("/orders", orderCtrl.List)
		staff.GET("/orders/:id", orderCtrl.Detail)
		staff.POST("/orders/:id/items", orderCtrl.AddItems)
		staff.GET("/ws/orders", hub.HandleWebSocket)
	}

	// Admin only: money, stock, staff, reports
	admin := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/tables", tableCtrl.Add)
		admin.POST("/tables/:id/release", tableCtrl.Release)
		admin.POST("/orders/:id/pay", orderCtrl.Pay)
		admin.GET("/inventory", invCtrl.List)
		admin.GET("/inventory/low-stock", invCtrl.LowStock)
		admin.POST("/inventory", invCtrl.Create)
		admin.PATCH("/inventory/:id", invCtrl.Update)
		admin.DELETE("/inventory/:id", invCtrl.Delete)
		admin.GET("/reports/sales", reportCtrl.Sales)
		admin.GET("/admin/users", authCtrl.ListUsers)
	}
}
