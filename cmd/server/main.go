package main // Entry point package

import (
	"log" // Logging library, used until zap is up

	"github.com/joho/godotenv" // .env loader for local development
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/laser-clinic-reservation/internal/config"     // Internal config loader
	"github.com/iliyamo/laser-clinic-reservation/internal/database"   // MySQL pool
	"github.com/iliyamo/laser-clinic-reservation/internal/handler"    // HTTP handlers
	"github.com/iliyamo/laser-clinic-reservation/internal/logger"     // zap logging setup
	"github.com/iliyamo/laser-clinic-reservation/internal/middleware" // rate limiting
	"github.com/iliyamo/laser-clinic-reservation/internal/repository" // persistence layer
	"github.com/iliyamo/laser-clinic-reservation/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env when present; real environment variables win

	cfg := config.Load()                  // Load environment config
	rlCfg := config.LoadRateLimitConfig() // Load rate limiter settings

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil { // Initialize structured logging
		log.Fatal(err)
	}
	defer logger.Sync() // Flush buffered log entries on exit

	db, err := database.Open(cfg) // Open the MySQL pool and verify connectivity
	if err != nil {
		logger.L().Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	rdb := config.NewRedisClient() // Redis backs the rate limiter; nil degrades to pass-through
	if rdb == nil {
		logger.L().Warn("redis unavailable, rate limiting disabled")
	}

	e := echo.New()                              // Create Echo instance
	e.Use(middleware.NewTokenBucket(rlCfg, rdb)) // Rate limit every route, including auth

	// One repository per table family, all sharing the pool.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	attendance := repository.NewAttendanceRepo(db)
	profiles := repository.NewCustomerProfileRepo(db)
	comments := repository.NewCommentRepo(db)
	areas := repository.NewLaserAreaRepo(db)
	schedules := repository.NewAreaScheduleRepo(db)
	shifts := repository.NewShiftRepo(db)
	slots := repository.NewSlotRepo(db)
	reservations := repository.NewReservationRepo(db)
	preReservations := repository.NewPreReservationRepo(db)
	payments := repository.NewPaymentRepo(db)
	discounts := repository.NewDiscountCodeRepo(db)
	periods := repository.NewCancellationPeriodRepo(db)

	// Handlers, one per audience.
	authH := handler.NewAuthHandler(cfg, users, tokens)
	adminH := handler.NewAdminHandler(cfg, users, attendance, profiles, comments, areas,
		schedules, shifts, slots, reservations, preReservations, payments, discounts, periods)
	customerH := handler.NewCustomerHandler(reservations, preReservations, payments, discounts, profiles, comments)
	operatorH := handler.NewOperatorHandler(attendance, reservations, shifts)
	catalogH := &handler.CatalogHandler{
		Areas:     areas,
		Schedules: schedules,
		Slots:     slots,
		Codes:     discounts,
		Periods:   periods,
	}

	router.RegisterRoutes(e)                             // Health check
	router.RegisterAuth(e, authH, cfg.JWTSecret)         // Signup, login, tokens, self profile
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)       // Full CRUD under /v1/admin
	router.RegisterCustomer(e, customerH, cfg.JWTSecret) // Customer-owned families
	router.RegisterOperator(e, operatorH, cfg.JWTSecret) // Staff surface
	router.RegisterCatalog(e, catalogH, cfg.JWTSecret)   // Read-only browsing

	addr := ":" + cfg.Port // Address string with port
	logger.L().Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))

	if err := e.Start(addr); err != nil { // Start HTTP server
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
