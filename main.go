package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-storefront/config"
	"gin-storefront/controllers"
	"gin-storefront/infra"
	"gin-storefront/mail"
	"gin-storefront/middlewares"
	"gin-storefront/models"
	"gin-storefront/payment"
	"gin-storefront/repositories"
	"gin-storefront/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg *config.Config, mailer mail.Sender, gateway payment.Gateway) *gin.Engine {

	userRepository := repositories.NewUserRepository(db)
	itemRepository := repositories.NewItemRepository(db)
	cartRepository := repositories.NewCartRepository(db)
	orderRepository := repositories.NewOrderRepository(db)

	authService := services.NewAuthService(userRepository, mailer, cfg.SecretKey, cfg.FrontendURL)
	itemService := services.NewItemService(itemRepository)
	cartService := services.NewCartService(cartRepository, itemRepository)
	orderService := services.NewOrderService(orderRepository, cartRepository, gateway, cfg.Currency)
	userService := services.NewUserService(userRepository)

	authController := controllers.NewAuthController(authService)
	itemController := controllers.NewItemController(itemService)
	cartController := controllers.NewCartController(cartService)
	orderController := controllers.NewOrderController(orderService)
	userController := controllers.NewUserController(userService)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.Identity(authService))

	authRouter := r.Group("/auth")
	authRouter.POST("/signup", authController.Signup)
	authRouter.POST("/signin", authController.Signin)
	authRouter.POST("/signout", authController.Signout)
	authRouter.POST("/request-reset", authController.RequestReset)
	authRouter.POST("/reset-password", authController.ResetPassword)

	itemRouter := r.Group("/items")
	itemRouter.GET("", itemController.FindAll)
	itemRouter.GET("/connection", itemController.Connection)
	itemRouter.GET("/:id", itemController.FindByID)
	itemRouter.POST("", itemController.Create)
	itemRouter.PUT("/:id", itemController.Update)
	itemRouter.DELETE("/:id", itemController.Delete)

	cartRouter := r.Group("/cart")
	cartRouter.POST("", cartController.Add)
	cartRouter.DELETE("/:id", cartController.Remove)

	orderRouter := r.Group("/orders")
	orderRouter.POST("", orderController.Create)
	orderRouter.GET("", orderController.FindMine)
	orderRouter.GET("/:id", orderController.FindByID)

	userRouter := r.Group("/users")
	userRouter.GET("/me", userController.Me)
	userRouter.GET("", userController.FindAll)
	userRouter.PUT("/permissions", userController.UpdatePermissions)

	return r
}

func main() {
	infra.Initialize()
	cfg := config.Load()
	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	mailer := mail.NewSMTPSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	gateway := payment.NewStripeGateway(cfg.StripeKey)
	r := setupRouter(db, cfg, mailer, gateway)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
