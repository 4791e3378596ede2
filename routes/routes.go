package routes

import (
	"crmbackend/controllers"
	"crmbackend/handlers"
	"crmbackend/middleware"

	"github.com/gin-gonic/gin"
)

func InitializeRoutes(router *gin.Engine) {
	router.POST("/login", controllers.Login)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/me", controllers.Me)
		api.GET("/dashboard", controllers.Dashboard)

		gate := controllers.Permissions()

		clients := api.Group("/clients", middleware.RequireModule(gate, "clients"))
		{
			clients.GET("", controllers.ListClients)
			clients.GET("/:id", controllers.GetClient)
			clients.POST("", controllers.AddClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		employees := api.Group("/employees", middleware.RequireModule(gate, "employees"))
		{
			employees.GET("", controllers.ListEmployees)
			employees.GET("/:id", controllers.GetEmployee)
			employees.POST("", controllers.AddEmployee)
			employees.PUT("/:id", controllers.UpdateEmployee)
			employees.DELETE("/:id", controllers.DeleteEmployee)
		}

		products := api.Group("/products", middleware.RequireModule(gate, "products"))
		{
			products.GET("", controllers.ListProducts)
			products.GET("/:id", controllers.GetProduct)
			products.POST("", controllers.AddProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
			products.POST("/:id/photo", handlers.UploadProductPhoto)
		}

		orders := api.Group("/orders", middleware.RequireModule(gate, "orders"))
		{
			orders.GET("", controllers.ListOrders)
			orders.GET("/:number", controllers.GetOrder)
			orders.POST("", controllers.AddOrder)
			orders.PUT("/:number", controllers.UpdateOrder)
			orders.DELETE("/:number", controllers.DeleteOrder)

			orders.GET("/:number/lines", controllers.ListOrderLines)
			orders.POST("/:number/lines", controllers.AddOrderLine)
		}
		orderLines := api.Group("/orderlines", middleware.RequireModule(gate, "orders"))
		{
			orderLines.PUT("/:id", controllers.UpdateOrderLine)
			orderLines.DELETE("/:id", controllers.DeleteOrderLine)
		}

		purchases := api.Group("/purchases", middleware.RequireModule(gate, "purchases"))
		{
			purchases.GET("", controllers.ListPurchases)
			purchases.GET("/:number", controllers.GetPurchase)
			purchases.POST("", controllers.AddPurchase)
			purchases.PUT("/:number", controllers.UpdatePurchase)
			purchases.DELETE("/:number", controllers.DeletePurchase)

			purchases.GET("/:number/lines", controllers.ListPurchaseLines)
			purchases.POST("/:number/lines", controllers.AddPurchaseLine)
		}
		purchaseLines := api.Group("/purchaselines", middleware.RequireModule(gate, "purchases"))
		{
			purchaseLines.PUT("/:id", controllers.UpdatePurchaseLine)
			purchaseLines.DELETE("/:id", controllers.DeletePurchaseLine)
		}

		providers := api.Group("/providers", middleware.RequireModule(gate, "providers"))
		{
			providers.GET("", controllers.ListProviders)
			providers.GET("/:id", controllers.GetProvider)
			providers.POST("", controllers.AddProvider)
			providers.PUT("/:id", controllers.UpdateProvider)
			providers.DELETE("/:id", controllers.DeleteProvider)
		}

		catalogs := api.Group("/catalogs", middleware.RequireModule(gate, "catalogs"))
		{
			catalogs.GET("/:table", controllers.ListCatalog)
			catalogs.POST("/:table", controllers.AddCatalogEntry)
			catalogs.PUT("/:table/:id", controllers.UpdateCatalogEntry)
			catalogs.DELETE("/:table/:id", controllers.DeleteCatalogEntry)
		}

		reports := api.Group("/reports", middleware.RequireModule(gate, "reports"))
		{
			reports.GET("/sales", controllers.SalesReport)
			reports.GET("/purchases", controllers.PurchasesReport)
			reports.GET("/balance", controllers.BalanceReport)
			reports.GET("/products", controllers.ProductSalesReport)
			reports.GET("/sales/export", handlers.ExportSales)
			reports.GET("/purchases/export", handlers.ExportPurchases)
			reports.GET("/balance/export", handlers.ExportBalance)
		}

		permissions := api.Group("/permissions", middleware.RequireModule(gate, "permissions"))
		{
			permissions.GET("", controllers.ListPermissions)
			permissions.GET("/:workertype", controllers.GetPermission)
			permissions.PUT("", controllers.UpsertPermission)
			permissions.DELETE("/:workertype", controllers.DeletePermission)
		}
	}
}
