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

	adminCancelHandler "github.com/ysiverio/reservasBarberia/internal/api/handlers/admin_cancel_reservation"
	cancelReservationHandler "github.com/ysiverio/reservasBarberia/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/ysiverio/reservasBarberia/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/ysiverio/reservasBarberia/internal/api/handlers/get_availability"
	getReservationHandler "github.com/ysiverio/reservasBarberia/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/ysiverio/reservasBarberia/internal/api/handlers/list_reservations"
	rescheduleReservationHandler "github.com/ysiverio/reservasBarberia/internal/api/handlers/reschedule_reservation"
	"github.com/ysiverio/reservasBarberia/internal/api/middleware"
	"github.com/ysiverio/reservasBarberia/internal/config"
	reservationRepo "github.com/ysiverio/reservasBarberia/internal/infra/storage/reservation"
	"github.com/ysiverio/reservasBarberia/internal/integrations/googlecalendar"
	"github.com/ysiverio/reservasBarberia/internal/integrations/mailer"
	availabilityService "github.com/ysiverio/reservasBarberia/internal/service/availability"
	reservationsService "github.com/ysiverio/reservasBarberia/internal/service/reservations"
	cancelReservationUC "github.com/ysiverio/reservasBarberia/internal/usecase/cancel_reservation"
	createReservationUC "github.com/ysiverio/reservasBarberia/internal/usecase/create_reservation"
	rescheduleReservationUC "github.com/ysiverio/reservasBarberia/internal/usecase/reschedule_reservation"
	"github.com/ysiverio/reservasBarberia/pkg/dbmetrics"
	"github.com/ysiverio/reservasBarberia/pkg/logger"
	"github.com/ysiverio/reservasBarberia/pkg/metrics"
	"github.com/ysiverio/reservasBarberia/pkg/simpletxmanager"
	"github.com/ysiverio/reservasBarberia/pkg/txmanager"
)

func main() {
	// Cargamos la configuración
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializamos el logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting reservasBarberia...")
	log.Info("Configuration loaded from config.toml")

	rules, err := cfg.AvailabilityRules()
	if err != nil {
		log.Fatal("Failed to build availability rules: %v", err)
	}

	// Inicializamos métricas (si están habilitadas)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Conectamos a la base de datos
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

	// Repositorio y transaction manager (con métricas o sin)
	var (
		repository *reservationRepo.Repository
		txMgr      interface {
			DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		}
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
		repository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Espejo de calendario (opcional)
	var calendarClient *googlecalendar.Client
	if cfg.Calendar.Enabled {
		calendarClient, err = googlecalendar.NewClient(
			context.Background(),
			cfg.Calendar.CredentialsFile,
			cfg.Calendar.CalendarID,
			rules.Location,
			rules.SlotDurationMinutes,
			time.Duration(cfg.Calendar.Timeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize calendar client: %v", err)
		}
		log.Info("Calendar mirror enabled (calendar=%s, required=%v)",
			cfg.Calendar.CalendarID, cfg.Calendar.Required)
	}

	// Mailer SMTP (opcional)
	var smtpMailer *mailer.Mailer
	if cfg.SMTP.Enabled {
		smtpMailer = mailer.New(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.User,
			cfg.SMTP.Password,
			cfg.SMTP.From,
			cfg.SMTP.Subject,
			log,
		)
		log.Info("SMTP mailer enabled (host=%s, from=%s)", cfg.SMTP.Host, cfg.SMTP.From)
	}

	// Un puntero nil dentro de una interfaz no es una interfaz nil;
	// las integraciones apagadas se cablean como nil explícito.
	var availabilityCalendar availabilityService.CalendarClient
	if calendarClient != nil {
		availabilityCalendar = calendarClient
	}

	// Servicios
	availabilitySvc := availabilityService.NewService(repository, availabilityCalendar, rules, log)
	reservationsSvc := reservationsService.NewService(repository, log)

	// Use cases
	var createCalendar createReservationUC.CalendarClient
	var createMailer createReservationUC.Mailer
	var cancelCalendar cancelReservationUC.CalendarClient
	var cancelMailer cancelReservationUC.Mailer
	var rescheduleCalendar rescheduleReservationUC.CalendarClient
	var rescheduleMailer rescheduleReservationUC.Mailer
	if calendarClient != nil {
		createCalendar = calendarClient
		cancelCalendar = calendarClient
		rescheduleCalendar = calendarClient
	}
	if smtpMailer != nil {
		createMailer = smtpMailer
		cancelMailer = smtpMailer
		rescheduleMailer = smtpMailer
	}

	createUseCase := createReservationUC.NewUseCase(
		repository,
		availabilitySvc,
		createCalendar,
		createMailer,
		txMgr,
		rules,
		cfg.Server.PublicBaseURL,
		cfg.Calendar.Required,
		log,
	)
	cancelUseCase := cancelReservationUC.NewUseCase(
		repository,
		cancelCalendar,
		cancelMailer,
		log,
	)
	rescheduleUseCase := rescheduleReservationUC.NewUseCase(
		repository,
		availabilitySvc,
		rescheduleCalendar,
		rescheduleMailer,
		txMgr,
		rules,
		cfg.Server.PublicBaseURL,
		log,
	)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	createReservation := createReservationHandler.NewHandler(createUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelUseCase, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	adminCancel := adminCancelHandler.NewHandler(cancelUseCase, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.HTTPMetrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"status":"degraded"}`)
			return
		}
		fmt.Fprint(w, `{"status":"ok"}`)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// RUTAS PÚBLICAS
	// ============================================================

	// Turnos disponibles de un día
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Crear una reserva
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Autogestión con cancel token
	api.HandleFunc("/reservations/cancel", cancelReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/reschedule", rescheduleReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{token}", getReservation.Handle).Methods(http.MethodGet)

	// ============================================================
	// RUTAS DE ADMINISTRACIÓN (JWT)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.JWTSecret, log))

	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/cancel", adminCancel.Handle).Methods(http.MethodPatch)

	// Servidor HTTP
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
