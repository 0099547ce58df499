package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/auth"
	corporateHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/corporate"
	createBookingHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/get_booking"
	getBookingStatsHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/get_booking_stats"
	getBookingsHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/get_bookings"
	getCatalogHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/get_catalog"
	inventoryHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/inventory"
	staffHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/staff"
	updateBookingStatusHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/update_booking_status"
	usersHandler "github.com/anuratyres/ATS-ShopService/internal/api/handlers/users"
	"github.com/anuratyres/ATS-ShopService/internal/api/middleware"
	"github.com/anuratyres/ATS-ShopService/internal/auth"
	"github.com/anuratyres/ATS-ShopService/internal/config"
	"github.com/anuratyres/ATS-ShopService/internal/domain"
	bookingRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/booking"
	corporateRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/corporate"
	inventoryRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/inventory"
	staffRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/staff"
	usersRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/users"
	bookingsService "github.com/anuratyres/ATS-ShopService/internal/service/bookings"
	corporateService "github.com/anuratyres/ATS-ShopService/internal/service/corporate"
	inventoryService "github.com/anuratyres/ATS-ShopService/internal/service/inventory"
	staffService "github.com/anuratyres/ATS-ShopService/internal/service/staff"
	usersService "github.com/anuratyres/ATS-ShopService/internal/service/users"
	createBookingUC "github.com/anuratyres/ATS-ShopService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/anuratyres/ATS-ShopService/internal/usecase/get_available_slots"
	"github.com/anuratyres/ATS-ShopService/pkg/dbmetrics"
	"github.com/anuratyres/ATS-ShopService/pkg/logger"
	"github.com/anuratyres/ATS-ShopService/pkg/metrics"
	"github.com/anuratyres/ATS-ShopService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ATS-ShopService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories run against the instrumented pool when metrics are on,
	// the raw pool otherwise.
	var (
		executor dbmetrics.DBExecutor
		beginner dbmetrics.TxBeginner
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		beginner = wrappedDB
		log.Info("Database metrics collection started")
	} else {
		executor = db
		beginner = dbmetrics.SQLBeginner{DB: db}
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	inventoryRepository := inventoryRepo.NewRepository(executor)
	staffRepository := staffRepo.NewRepository(executor)
	corporateRepository := corporateRepo.NewRepository(executor)
	userRepository := usersRepo.NewRepository(executor)

	txMgr := txmanager.NewTransactionManager(beginner)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	bookingSvc := bookingsService.NewService(bookingRepository, log)
	inventorySvc := inventoryService.NewService(inventoryRepository, log)
	staffSvc := staffService.NewService(staffRepository, txMgr, log)
	corporateSvc := corporateService.NewService(corporateRepository, txMgr, log)
	userSvc := usersService.NewService(userRepository, tokens, log)

	// Seed the default admin account on an empty users table.
	if err := userSvc.Bootstrap(context.Background()); err != nil {
		log.Fatal("Failed to bootstrap admin account: %v", err)
	}

	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, log)

	login := authHandler.NewHandler(userSvc, log)
	catalog := getCatalogHandler.NewHandler()
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingStats := getBookingStatsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	inventory := inventoryHandler.NewHandler(inventorySvc, log)
	staff := staffHandler.NewHandler(staffSvc, log)
	corporate := corporateHandler.NewHandler(corporateSvc, log)
	users := usersHandler.NewHandler(userSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (customer-facing, no authentication)
	// ============================================================

	api.HandleFunc("/auth/login", login.Login).Methods(http.MethodPost)

	api.HandleFunc("/catalog", catalog.Handle).Methods(http.MethodGet)

	api.HandleFunc("/branches/{branchId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Partner and employee self-registration forms
	api.HandleFunc("/corporate/companies", corporate.RegisterCompany).Methods(http.MethodPost)
	api.HandleFunc("/corporate/employees", corporate.RegisterEmployee).Methods(http.MethodPost)

	// Discount id check used by the booking form
	api.HandleFunc("/corporate/discount/{discountId}", corporate.ValidateDiscount).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (admin panel, bearer token + permission)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	perm := func(permission string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequirePermission(userSvc, log, permission)(h)
	}

	// --- Bookings ---
	protected.HandleFunc("/bookings",
		perm(domain.PermManageBookings, getBookings.Handle)).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/stats/summary",
		perm(domain.PermViewDashboard, getBookingStats.Handle)).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{reference}",
		perm(domain.PermManageBookings, getBooking.Handle)).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{reference}/status",
		perm(domain.PermManageBookings, updateBookingStatus.Handle)).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{reference}",
		perm(domain.PermManageBookings, deleteBooking.Handle)).Methods(http.MethodDelete)

	// --- Inventory ---
	protected.HandleFunc("/inventory",
		perm(domain.PermManageInventory, inventory.List)).Methods(http.MethodGet)
	protected.HandleFunc("/inventory",
		perm(domain.PermManageInventory, inventory.Create)).Methods(http.MethodPost)
	protected.HandleFunc("/inventory/{reference}",
		perm(domain.PermManageInventory, inventory.Get)).Methods(http.MethodGet)
	protected.HandleFunc("/inventory/{reference}",
		perm(domain.PermManageInventory, inventory.Update)).Methods(http.MethodPut)
	protected.HandleFunc("/inventory/{reference}/restock",
		perm(domain.PermManageInventory, inventory.Restock)).Methods(http.MethodPost)
	protected.HandleFunc("/inventory/{reference}",
		perm(domain.PermManageInventory, inventory.Delete)).Methods(http.MethodDelete)

	// --- Staff ---
	protected.HandleFunc("/staff",
		perm(domain.PermManageStaff, staff.List)).Methods(http.MethodGet)
	protected.HandleFunc("/staff",
		perm(domain.PermManageStaff, staff.Create)).Methods(http.MethodPost)
	protected.HandleFunc("/staff/{id}",
		perm(domain.PermManageStaff, staff.Get)).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{id}",
		perm(domain.PermManageStaff, staff.Update)).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{id}/bay",
		perm(domain.PermManageStaff, staff.AssignBay)).Methods(http.MethodPatch)
	protected.HandleFunc("/staff/{id}",
		perm(domain.PermManageStaff, staff.Delete)).Methods(http.MethodDelete)

	// --- Corporate ---
	protected.HandleFunc("/corporate/companies",
		perm(domain.PermManageCorporate, corporate.ListCompanies)).Methods(http.MethodGet)
	protected.HandleFunc("/corporate/companies/{id}/status",
		perm(domain.PermManageCorporate, corporate.UpdateCompanyStatus)).Methods(http.MethodPatch)
	protected.HandleFunc("/corporate/employees",
		perm(domain.PermManageCorporate, corporate.ListEmployees)).Methods(http.MethodGet)
	protected.HandleFunc("/corporate/employees/{id}/status",
		perm(domain.PermManageCorporate, corporate.UpdateEmployeeStatus)).Methods(http.MethodPatch)
	protected.HandleFunc("/corporate/discount/{discountId}/redeem",
		perm(domain.PermManageBookings, corporate.RedeemDiscount)).Methods(http.MethodPost)
	protected.HandleFunc("/corporate/complete",
		perm(domain.PermManageCorporate, corporate.Complete)).Methods(http.MethodGet)
	protected.HandleFunc("/corporate/stats",
		perm(domain.PermManageCorporate, corporate.Stats)).Methods(http.MethodGet)
	protected.HandleFunc("/corporate/export/csv",
		perm(domain.PermManageCorporate, corporate.ExportCompaniesCSV)).Methods(http.MethodGet)
	protected.HandleFunc("/corporate/employees/export/csv",
		perm(domain.PermManageCorporate, corporate.ExportEmployeesCSV)).Methods(http.MethodGet)

	// --- Users ---
	protected.HandleFunc("/users",
		perm(domain.PermManageUsers, users.List)).Methods(http.MethodGet)
	protected.HandleFunc("/users",
		perm(domain.PermManageUsers, users.Create)).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id}",
		perm(domain.PermManageUsers, users.Get)).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}",
		perm(domain.PermManageUsers, users.Update)).Methods(http.MethodPut)
	protected.HandleFunc("/users/{id}/password",
		perm(domain.PermManageUsers, users.ChangePassword)).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{id}",
		perm(domain.PermManageUsers, users.Delete)).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	// CORS wraps the router itself so preflight requests get answered even
	// for routes registered without an OPTIONS method.
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	close(stopMetricsCh)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed: %v", err)
	}
	log.Info("Server stopped")
}
