package routes

import (
	"net/http"
	"time"

	"invoicing-backend/config"
	"invoicing-backend/controllers"
	"invoicing-backend/services"
	"invoicing-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the services the HTTP handlers need.
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Store     *services.Store
	Renderer  *services.InvoiceRenderer
	Reminders *services.ReminderService
}

func SetupRouter(deps Dependencies) *gin.Engine {
	utils.SetupValidator()

	r := gin.New()
	r.Use(config.RequestID())
	r.Use(config.Recovery(deps.Logger))
	r.Use(config.PerformanceLogger(deps.Logger, deps.Config.HTTP.SlowRequest))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.HTTP.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", config.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", config.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	customerController := controllers.NewCustomerController(deps.Store, deps.Logger)
	itemController := controllers.NewItemController(deps.Store, deps.Logger)
	invoiceController := controllers.NewInvoiceController(deps.Store, deps.Renderer, deps.Logger)
	settingsController := controllers.NewSettingsController(deps.Store, deps.Logger)
	dashboardController := controllers.NewDashboardController(deps.Store, deps.Logger)
	reportController := controllers.NewReportController(deps.Store, deps.Logger)

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.GET("", customerController.GetCustomers)
			customers.POST("", customerController.CreateCustomer)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		// Catalog routes
		items := api.Group("/items")
		{
			items.GET("", itemController.GetItems)
			items.POST("", itemController.CreateItem)
			items.GET("/:id", itemController.GetItem)
			items.GET("/:id/line", itemController.GetItemLine)
			items.PUT("/:id", itemController.UpdateItem)
			items.DELETE("/:id", itemController.DeleteItem)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.GET("", invoiceController.GetInvoices)
			invoices.POST("", invoiceController.CreateInvoice)
			invoices.GET("/defaults", invoiceController.GetInvoiceDefaults)
			invoices.POST("/totals", invoiceController.CalculateTotals)
			invoices.GET("/:id", invoiceController.GetInvoice)
			invoices.GET("/:id/print", invoiceController.PrintInvoice)
			invoices.PUT("/:id", invoiceController.UpdateInvoice)
			invoices.DELETE("/:id", invoiceController.DeleteInvoice)
		}

		// Settings routes
		api.GET("/settings", settingsController.GetSettings)
		api.POST("/settings", settingsController.UpdateSettings)

		api.GET("/dashboard", dashboardController.GetDashboardOverview)
		api.GET("/reports", reportController.GetReport)

		if deps.Reminders != nil {
			reminderController := controllers.NewReminderController(deps.Reminders, deps.Logger)
			api.GET("/reminders", reminderController.GetReminderLogs)
			api.POST("/reminders/send", reminderController.SendReminders)
		}
	}

	return r
}
