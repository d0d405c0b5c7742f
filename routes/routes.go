package routes

import (
	"log/slog"

	"chopnow/cart"
	"chopnow/configs"
	"chopnow/controllers"
	"chopnow/middlewares"
	"chopnow/repository"
	"chopnow/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *slog.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Session carts live in-process for the lifetime of the server
	carts := cart.NewStore()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(carts, menuRepo, log)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, carts, log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	vendorOrderCtrl := controllers.NewVendorOrderController(orderSvc)
	vendorMenuCtrl := controllers.NewVendorMenuController(menuSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Menu (public)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)
	r.GET("/packaging", menuCtrl.Packaging)
	r.GET("/locations", menuCtrl.Locations)

	// Cart (customer)
	cg := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cg.GET("", cartCtrl.Get)
		cg.POST("/lines", cartCtrl.AddLine)
		cg.PATCH("/lines/:id", cartCtrl.UpdateQty)
		cg.POST("/lines/:id/step", cartCtrl.StepQty)
		cg.DELETE("/lines/:id", cartCtrl.RemoveLine)
		cg.DELETE("", cartCtrl.Clear)
	}

	// Orders (customer)
	og := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		og.POST("", orderCtrl.Checkout)
		og.POST("/line/:lineId", orderCtrl.SubmitLine)
		og.GET("", orderCtrl.ListForMe)
		og.GET("/:id", orderCtrl.Detail)
		og.PATCH("/:id/cancel", orderCtrl.Cancel)
	}

	// Vendor app (vendor/admin)
	vg := r.Group("/vendor", middlewares.AuthMiddleware(cfg.JWTSecret, "vendor", "admin"))
	{
		vg.GET("/orders", vendorOrderCtrl.List)
		vg.GET("/orders/:id", vendorOrderCtrl.Detail)
		vg.PATCH("/orders/:id/accept", vendorOrderCtrl.Accept)
		vg.PATCH("/orders/:id/ready", vendorOrderCtrl.Ready)
		vg.PATCH("/orders/:id/complete", vendorOrderCtrl.Complete)
		vg.PATCH("/orders/:id/cancel", vendorOrderCtrl.Cancel)

		vg.GET("/menu", vendorMenuCtrl.List)
		vg.POST("/menu", vendorMenuCtrl.Create)
		vg.PATCH("/menu/:id", vendorMenuCtrl.Update)
		vg.PATCH("/menu/:id/availability", vendorMenuCtrl.SetAvailability)
	}
}
