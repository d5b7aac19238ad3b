package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fundraiser-shop/controllers"
	"github.com/yeremiapane/fundraiser-shop/hub"
	"github.com/yeremiapane/fundraiser-shop/middlewares"
	"github.com/yeremiapane/fundraiser-shop/services"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

// Deps are the long-lived services the handlers share.
type Deps struct {
	Cart     *services.CartService
	Orders   *services.OrderService
	Schedule *services.ScheduleService
	Gate     *services.AdminGate
	Tokens   *utils.TokenIssuer
	Hub      *hub.Hub

	CORSOrigin     string
	PickupLocation string

	// RateLimiter is optional; nil disables the per-IP limit.
	RateLimiter *middlewares.RateLimiter
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(d.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	if d.RateLimiter != nil {
		r.Use(d.RateLimiter.RateLimit())
	}

	// Inisialisasi controller
	catalogCtrl := controllers.NewCatalogController()
	cartCtrl := controllers.NewCartController(d.Cart)
	orderCtrl := controllers.NewOrderController(d.Orders, d.Cart)
	scheduleCtrl := controllers.NewScheduleController(d.Schedule, d.PickupLocation)
	adminCtrl := controllers.NewAdminController(d.Gate, d.Tokens, d.Orders)
	hubCtrl := controllers.NewHubController(d.Hub)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// catalog
	r.GET("/products", catalogCtrl.GetAllProducts)
	r.GET("/products/:product_id", catalogCtrl.GetProductByID)
	r.GET("/prices", catalogCtrl.GetPrices)
	r.GET("/groups", catalogCtrl.GetGroups)

	// cart
	r.GET("/cart", cartCtrl.GetCart)
	r.POST("/cart/items", cartCtrl.AddItem)
	r.PATCH("/cart/items", cartCtrl.UpdateQuantity)
	r.DELETE("/cart/items", cartCtrl.RemoveItem)
	r.PUT("/cart/donation", cartCtrl.SetDonation)
	r.DELETE("/cart", cartCtrl.ClearCart)

	// checkout
	r.POST("/orders", orderCtrl.CreateOrder)

	// schedule
	r.GET("/schedule", scheduleCtrl.GetSchedule)
	r.GET("/schedule.ics", scheduleCtrl.GetScheduleICS)

	// Rate limiter untuk login
	public := r.Group("/admin")
	{
		public.POST("/login", middlewares.NewStrictRateLimiter(), adminCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AdminAuthMiddleware(d.Tokens, d.Gate))

	// clears the shared admin flag
	auth.POST("/logout", adminCtrl.Logout)

	// ORDERS
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.PATCH("/orders/:order_id", orderCtrl.UpdateOrder)
	auth.POST("/orders/:order_id/toggle-fulfilled", orderCtrl.ToggleFulfilled)

	// fulfillment + dashboard
	auth.GET("/production-summary", adminCtrl.GetProductionSummary)
	auth.GET("/reports/production.pdf", adminCtrl.ExportProductionPDF)
	auth.GET("/dashboard/stats", adminCtrl.GetDashboardStats)

	// WebSocket endpoint dengan middleware khusus
	wsGroup := r.Group("/admin/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware(d.Tokens, d.Gate))
	{
		wsGroup.GET("", hubCtrl.Connect)
	}

	return r
}
