package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"guia-compras/internal/api/handlers"
	"guia-compras/internal/api/routes"
	"guia-compras/internal/middleware"
	"guia-compras/internal/utils"
	"guia-compras/internal/utils/storage"
	"guia-compras/pkg/analytics"
	"guia-compras/pkg/bill"
	"guia-compras/pkg/jwt"
	"guia-compras/pkg/receipt"
	"guia-compras/pkg/store"
	"guia-compras/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         20 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	timezone := utils.GetConfig("APP_TIMEZONE")
	if timezone == "" {
		timezone = "America/Sao_Paulo"
	}

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
		TimeZone:   timezone,
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	gateway := receipt.NewGeminiGateway()

	// Repository
	userRepository := user.NewUserRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)
	billRepository := bill.NewBillRepository(db)
	analyticsRepository := analytics.NewAnalyticsRepository(db)
	storeRepository := store.NewStoreRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	receiptService := receipt.NewReceiptService(receiptRepository, gateway, s3)
	billService := bill.NewBillService(billRepository)
	analyticsService := analytics.NewAnalyticsService(analyticsRepository)
	storeService := store.NewStoreService(storeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)
	billHandler := handlers.NewBillHandler(billService, validator)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	storeHandler := handlers.NewStoreHandler(storeService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		ReceiptHandler:   receiptHandler,
		BillHandler:      billHandler,
		AnalyticsHandler: analyticsHandler,
		StoreHandler:     storeHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
