// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"

	"bookswap/internal/config"
	"bookswap/internal/database"
	"bookswap/internal/middleware"
	"bookswap/internal/repository"
	"bookswap/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo     repository.UserRepository
	bookRepo     repository.BookRepository
	exchangeRepo repository.ExchangeRepository
	reviewRepo   repository.ReviewRepository

	userService     *service.UserService
	bookService     *service.BookService
	exchangeService *service.ExchangeService
	reviewService   *service.ReviewService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the DB.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	exchangeRepo := repository.NewExchangeRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		promMiddleware: middleware.InitMetrics("bookswap-api"),
		userRepo:       userRepo,
		bookRepo:       bookRepo,
		exchangeRepo:   exchangeRepo,
		reviewRepo:     reviewRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.bookService = service.NewBookService(bookRepo, userRepo)
	s.exchangeService = service.NewExchangeService(exchangeRepo, bookRepo, userRepo)
	s.reviewService = service.NewReviewService(reviewRepo, bookRepo, userRepo)
	return s
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for log correlation
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := "*"
	if s.config != nil && s.config.AllowedOrigins != "" {
		origins = s.config.AllowedOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

// SetupRoutes registers all API routes on the Fiber app
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.HealthCheck)
	app.Get("/health/live", s.LivenessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	books := app.Group("/books")
	books.Get("/", s.GetBooks)
	books.Post("/", s.CreateBook)
	books.Get("/:id", s.GetBook)
	books.Put("/:id", s.UpdateBook)
	books.Delete("/:id", s.DeleteBook)

	users := app.Group("/users")
	users.Get("/", s.GetUsers)
	users.Post("/", s.CreateUser)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)

	exchanges := app.Group("/exchanges")
	exchanges.Get("/", s.GetExchanges)
	exchanges.Post("/", s.CreateExchange)
	exchanges.Put("/:id", s.UpdateExchange)
	exchanges.Delete("/:id", s.DeleteExchange)

	reviews := app.Group("/reviews")
	reviews.Get("/", s.GetReviews)
	reviews.Post("/", s.CreateReview)
	reviews.Delete("/:id", s.DeleteReview)
}

// HealthCheck handles GET /
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Book Exchange API is running!",
	})
}

// LivenessCheck handles GET /health/live
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Shutdown releases server resources (the database connection pool).
func (s *Server) Shutdown(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
