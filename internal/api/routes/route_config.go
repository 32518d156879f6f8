package routes

import (
	"github.com/gofiber/fiber/v2"

	"guia-compras/internal/api/handlers"
	"guia-compras/internal/middleware"
	"guia-compras/pkg/jwt"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	ReceiptHandler   handlers.ReceiptHandler
	BillHandler      handlers.BillHandler
	AnalyticsHandler handlers.AnalyticsHandler
	StoreHandler     handlers.StoreHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Receipts()
	c.Bills()
	c.Analytics()
	c.Stores()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/v1/receipts", c.Middleware.AuthMiddleware(c.JWTService))

	receipts.Post("/scan", c.ReceiptHandler.ScanReceipt)
	receipts.Get("", c.ReceiptHandler.GetReceipts)
	receipts.Get("/:id", c.ReceiptHandler.GetReceiptDetails)
	receipts.Delete("/:id", c.ReceiptHandler.DeleteReceipt)
}

func (c *Config) Bills() {
	bills := c.App.Group("/api/v1/bills", c.Middleware.AuthMiddleware(c.JWTService))

	bills.Get("/summary", c.BillHandler.GetBillSummary)
	bills.Post("", c.BillHandler.CreateBill)
	bills.Get("", c.BillHandler.GetBills)
	bills.Put("/:id", c.BillHandler.UpdateBill)
	bills.Delete("/:id", c.BillHandler.DeleteBill)
	bills.Post("/:id/pay", c.BillHandler.MarkBillPaid)
}

func (c *Config) Analytics() {
	analytics := c.App.Group("/api/v1/analytics", c.Middleware.AuthMiddleware(c.JWTService))

	analytics.Get("/summary", c.AnalyticsHandler.GetSummary)
	analytics.Get("/products", c.AnalyticsHandler.GetProducts)
	analytics.Get("/history", c.AnalyticsHandler.GetHistory)
}

func (c *Config) Stores() {
	stores := c.App.Group("/api/v1/stores", c.Middleware.AuthMiddleware(c.JWTService))

	stores.Get("", c.StoreHandler.GetStores)
	stores.Post("/rename", c.StoreHandler.RenameStore)
	stores.Get("/:name", c.StoreHandler.GetStoreDetail)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
