package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/in/http"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/out/backend"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/out/cache"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/out/logger"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/out/notifier"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/out/storage"
	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/services"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger, err := logger.NewZapLogger(cfg)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer mainLogger.Sync()
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"backendUrl":      cfg.Backend.URL,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Session: durable store plus the single in-process owner.
	sessionStore := storage.NewFileSessionStore(cfg, mainLogger.WithModule("FileSessionStore"))
	sessionService := services.NewSessionService(sessionStore, mainLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := sessionService.Rehydrate(ctx); err != nil {
		log.Error("app.session.rehydrate_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Outbound adapters.
	backendAdapter := backend.NewBackendAdapter(cfg, sessionService, mainLogger.WithModule("BackendAdapter"))
	notifierAdapter := notifier.NewMemoryNotifier()

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		slotCache, err := cache.NewSlotCacheAdapter(cfg, mainLogger.WithModule("SlotCacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = slotCache
	}

	// Core services.
	resolverService := services.NewSlotResolverService(backendAdapter, cacheAdapter, mainLogger)
	bookingService := services.NewBookingService(sessionService, resolverService, backendAdapter, notifierAdapter, mainLogger)
	directoryService := services.NewDirectoryService(backendAdapter, notifierAdapter, mainLogger)
	appointmentService := services.NewAppointmentService(backendAdapter, notifierAdapter, mainLogger)
	scheduleService := services.NewScheduleService(sessionService, backendAdapter, notifierAdapter, mainLogger)
	navigationService := services.NewNavigationService()

	// Inbound HTTP surface.
	router := gin.Default()
	http.NewSessionController(sessionService, navigationService, notifierAdapter, mainLogger).RegisterRoutes(router)
	http.NewBookingController(bookingService, sessionService, navigationService, mainLogger).RegisterRoutes(router)
	http.NewDirectoryController(directoryService, appointmentService, resolverService, sessionService, navigationService, mainLogger).RegisterRoutes(router)
	http.NewAppointmentController(appointmentService, sessionService, navigationService, mainLogger).RegisterRoutes(router)
	http.NewScheduleController(scheduleService, sessionService, navigationService, mainLogger).RegisterRoutes(router)

	// Broker listener, only when enabled.
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewAppointmentListener(resolverService, cfg, mainLogger.WithModule("RabbitMQListener"))
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer listener.Stop()
	}

	server := &nethttp.Server{
		Addr:    cfg.HTTP.Host + ":" + cfg.HTTP.Port,
		Handler: router,
	}

	go func() {
		log.Info("app.http.listening", out.LogFields{
			"addr": server.Addr,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Error("app.http.serve_failed", out.LogFields{
				"error": err.Error(),
			})
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	log.Info("app.stopping", out.LogFields{})

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("app.http.shutdown_failed", out.LogFields{
			"error": err.Error(),
		})
	}

	log.Info("app.stopped", out.LogFields{})
}
