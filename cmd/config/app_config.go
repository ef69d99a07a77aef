package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pibich/Akivili-UAS/internal/api/handlers"
	"github.com/pibich/Akivili-UAS/internal/api/routes"
	"github.com/pibich/Akivili-UAS/internal/middleware"
	"github.com/pibich/Akivili-UAS/internal/utils"
	"github.com/pibich/Akivili-UAS/internal/utils/storage"
	"github.com/pibich/Akivili-UAS/pkg/cart"
	"github.com/pibich/Akivili-UAS/pkg/catalog"
	"github.com/pibich/Akivili-UAS/pkg/jwt"
	"github.com/pibich/Akivili-UAS/pkg/midtrans"
	"github.com/pibich/Akivili-UAS/pkg/news"
	"github.com/pibich/Akivili-UAS/pkg/order"
	"github.com/pibich/Akivili-UAS/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	orderRepository := order.NewOrderRepository(db)
	cartRepository := cart.NewCartRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	catalogService := catalog.NewCatalogService(catalogRepository)
	midtransService := midtrans.NewMidtransService()
	scheduler := order.NewSettlementScheduler()
	orderService := order.NewOrderService(
		orderRepository,
		catalogRepository,
		userRepository,
		midtransService,
		scheduler,
		settlementSimulated(utils.GetConfig("SETTLEMENT_SIMULATED")),
		settlementDelay(utils.GetConfig("SETTLEMENT_DELAY")),
	)
	cartService := cart.NewCartService(cartRepository, catalogRepository)
	newsService := news.NewNewsService(
		utils.GetConfig("NEWS_API_URL"),
		utils.GetConfig("NEWS_API_KEY"),
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	newsHandler := handlers.NewNewsHandler(newsService)

	app.Hooks().OnShutdown(func() error {
		scheduler.Close()
		return nil
	})

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		CatalogHandler: catalogHandler,
		OrderHandler:   orderHandler,
		CartHandler:    cartHandler,
		NewsHandler:    newsHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// settlementSimulated defaults to simulated mode when the key is unset or
// unparseable.
func settlementSimulated(raw string) bool {
	simulated, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return simulated
}

// settlementDelay accepts a duration string ("5s", "250ms") or a bare
// number of seconds ("5").
func settlementDelay(raw string) time.Duration {
	if delay, err := time.ParseDuration(raw); err == nil && delay > 0 {
		return delay
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return order.DefaultSettlementDelay
}
