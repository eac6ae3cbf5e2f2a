package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/elitebarber/barbershop-backend/internal/appointment"
	appointmentHttp "github.com/elitebarber/barbershop-backend/internal/appointment/http"
	"github.com/elitebarber/barbershop-backend/internal/auth"
	"github.com/elitebarber/barbershop-backend/internal/barber"
	barberHttp "github.com/elitebarber/barbershop-backend/internal/barber/http"
	"github.com/elitebarber/barbershop-backend/internal/block"
	blockHttp "github.com/elitebarber/barbershop-backend/internal/block/http"
	"github.com/elitebarber/barbershop-backend/internal/catalog"
	catalogHttp "github.com/elitebarber/barbershop-backend/internal/catalog/http"
	"github.com/elitebarber/barbershop-backend/internal/hours"
	hoursHttp "github.com/elitebarber/barbershop-backend/internal/hours/http"
	"github.com/elitebarber/barbershop-backend/internal/staff"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	ShopTimezone *time.Location

	StaffService       staff.Service
	BarberService      barber.Service
	CatalogService     catalog.CatalogService
	HoursService       hours.Service
	BlockService       block.Service
	AppointmentService appointment.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles the global middleware (CORS, Logger, Recovery) and registers
// the routes of every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Frontend dev server
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// staffMiddleware: validates the staff JWT on management routes.
	staffMiddleware := auth.StaffRequired(cfg.JWTManager)

	// Initialize HTTP handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(cfg.StaffService, cfg.JWTManager)
	contactHandler := NewContactHandler()
	barberHandler := barberHttp.NewHandler(cfg.BarberService)
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	hoursHandler := hoursHttp.NewHandler(cfg.HoursService)
	blockHandler := blockHttp.NewHandler(cfg.BlockService, cfg.ShopTimezone)
	appointmentHandler := appointmentHttp.NewHandler(cfg.AppointmentService, cfg.ShopTimezone)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/contact", contactHandler.Submit)

		barberHttp.RegisterRoutes(v1, barberHandler, staffMiddleware)
		catalogHttp.RegisterRoutes(v1, catalogHandler, staffMiddleware)
		hoursHttp.RegisterRoutes(v1, hoursHandler, staffMiddleware)
		blockHttp.RegisterRoutes(v1, blockHandler, staffMiddleware)
		appointmentHttp.RegisterRoutes(v1, appointmentHandler, staffMiddleware)
	}

	return r
}
