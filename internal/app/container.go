package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elitebarber/barbershop-backend/internal/api"
	"github.com/elitebarber/barbershop-backend/internal/appointment"
	"github.com/elitebarber/barbershop-backend/internal/auth"
	"github.com/elitebarber/barbershop-backend/internal/barber"
	"github.com/elitebarber/barbershop-backend/internal/block"
	"github.com/elitebarber/barbershop-backend/internal/catalog"
	"github.com/elitebarber/barbershop-backend/internal/hours"
	"github.com/elitebarber/barbershop-backend/internal/notification"
	"github.com/elitebarber/barbershop-backend/internal/staff"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	ShopTimezone *time.Location
	BookingLimit int

	NotifyWebhookURL   string
	NotifyWebhookToken string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Staff module
	staffRepo := staff.NewPgxRepository(cfg.DBPool)
	staffService := staff.NewService(staffRepo, passwordHasher)

	// Barber module
	barberRepo := barber.NewPgxRepository(cfg.DBPool)
	barberService := barber.NewService(barberRepo)

	// Catalog module
	catalogRepo := catalog.NewPgxRepository(cfg.DBPool)
	catalogService := catalog.NewService(catalogRepo)

	// Business hours module
	hoursRepo := hours.NewPgxRepository(cfg.DBPool)
	hoursService := hours.NewService(hoursRepo, cfg.ShopTimezone)

	// Schedule block module
	blockRepo := block.NewPgxRepository(cfg.DBPool)
	blockService := block.NewService(blockRepo, barberService)

	// Notification: webhook delivery when configured, log-only otherwise.
	var sender notification.Sender
	if cfg.NotifyWebhookURL != "" {
		sender = notification.NewWebhookSender(cfg.NotifyWebhookURL, cfg.NotifyWebhookToken)
	} else {
		sender = notification.NewLogSender()
	}
	notifier := notification.NewDispatcher(sender, cfg.ShopTimezone)

	// Appointment module
	appointmentRepo := appointment.NewPgxRepository(cfg.DBPool)
	appointmentService := appointment.NewService(
		appointmentRepo,
		catalogService,
		barberService,
		hoursService,
		blockService,
		notifier,
		cfg.ShopTimezone,
		cfg.BookingLimit,
	)

	// API router config
	routerParams := api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		ShopTimezone:       cfg.ShopTimezone,
		StaffService:       staffService,
		BarberService:      barberService,
		CatalogService:     catalogService,
		HoursService:       hoursService,
		BlockService:       blockService,
		AppointmentService: appointmentService,
		JWTManager:         jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
