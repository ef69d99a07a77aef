package routes

import (
	"github.com/pibich/Akivili-UAS/internal/api/handlers"
	"github.com/pibich/Akivili-UAS/internal/middleware"
	"github.com/pibich/Akivili-UAS/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	CatalogHandler handlers.CatalogHandler
	OrderHandler   handlers.OrderHandler
	CartHandler    handlers.CartHandler
	NewsHandler    handlers.NewsHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.Orders()
	c.Cart()
	c.News()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Post("/forgot", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/password", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdatePassword)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
	}
}

func (c *Config) Catalog() {
	games := c.App.Group("/api/v1/games")
	{
		games.Get("", c.CatalogHandler.GetGames)
		games.Get("/:id", c.CatalogHandler.GetGameDetail)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		orders.Post("", c.OrderHandler.PlaceOrder)
		orders.Get("", c.OrderHandler.GetOrderHistory)
	}
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.AuthMiddleware(c.JWTService))
	{
		cart.Post("/items", c.CartHandler.AddToCart)
		cart.Get("", c.CartHandler.GetCart)
		cart.Delete("/items/:id", c.CartHandler.RemoveItem)
	}
}

func (c *Config) News() {
	c.App.Get("/api/v1/news", c.NewsHandler.GetNews)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Post("/webhook/midtrans", c.OrderHandler.MidtransWebhookHandler)
}
