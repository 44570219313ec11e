package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/KasumiMercury/primind-voice-assistant/internal/client"
	"github.com/KasumiMercury/primind-voice-assistant/internal/config"
	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
	"github.com/KasumiMercury/primind-voice-assistant/internal/handler"
	"github.com/KasumiMercury/primind-voice-assistant/internal/health"
	"github.com/KasumiMercury/primind-voice-assistant/internal/infra/eventrecorder"
	"github.com/KasumiMercury/primind-voice-assistant/internal/infra/repository"
	"github.com/KasumiMercury/primind-voice-assistant/internal/infra/speech"
	"github.com/KasumiMercury/primind-voice-assistant/internal/observability/logging"
	"github.com/KasumiMercury/primind-voice-assistant/internal/observability/metrics"
	"github.com/KasumiMercury/primind-voice-assistant/internal/observability/middleware"
	"github.com/KasumiMercury/primind-voice-assistant/internal/service/command"
	"github.com/KasumiMercury/primind-voice-assistant/internal/service/reminder"
	"github.com/KasumiMercury/primind-voice-assistant/internal/service/scheduler"
	"github.com/KasumiMercury/primind-voice-assistant/internal/service/timephrase"
)

// Version is set via ldflags at build time
var Version = "dev"

const moduleName = logging.Module("voice-assistant")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", slog.String("error", err.Error()))
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	// Initialize reminder event recorder (InfluxDB for local, BigQuery for gcloud)
	eventRecorder, err := eventrecorder.NewRecorder(ctx, eventrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize reminder event recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := eventRecorder.Flush(flushCtx); err != nil {
			slog.Warn("failed to flush reminder event recorder", slog.String("error", err.Error()))
		}
		if err := eventRecorder.Close(); err != nil {
			slog.Warn("failed to close reminder event recorder", slog.String("error", err.Error()))
		}
	}()

	store, err := repository.Open(ctx, cfg.Store)
	if err != nil {
		slog.Error("failed to open reminder store",
			slog.String("driver", string(cfg.Store.Driver)),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("failed to close reminder store", slog.String("error", err.Error()))
		}
	}()

	sched := scheduler.New()
	sched.Start(ctx)
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := sched.Stop(stopCtx); err != nil {
			slog.Warn("scheduler stop error", slog.String("error", err.Error()))
		}
	}()

	reminderMetrics, err := metrics.NewReminderMetrics(sched.Len)
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	eventsHub := handler.NewEventsHub()
	defer eventsHub.Close()

	console := speech.NewConsoleSpeaker(os.Stdout)
	sessionSpeaker := speech.NewFanOut(console, eventsHub)

	reminderNotifiers := []domain.Notifier{console, eventsHub}
	if cfg.Twilio.Enabled() {
		reminderNotifiers = append(reminderNotifiers, speech.NewSMSNotifier(cfg.Twilio))
		slog.Info("sms notifications enabled for fired reminders")
	}

	reminderService := reminder.NewService(
		store,
		timephrase.NewParser(),
		sched,
		speech.NewFanOut(reminderNotifiers...),
		eventRecorder,
		reminderMetrics,
	)

	bootResult, err := reminderService.Boot(ctx, time.Now())
	if err != nil {
		slog.Error("failed to restore pending reminders", slog.String("error", err.Error()))
		return 1
	}

	slog.Info("pending reminders restored",
		slog.Int("pending", bootResult.PendingCount),
		slog.Int("armed", bootResult.ArmedCount),
		slog.Int("retired", bootResult.RetiredCount),
	)

	router := command.NewRouter(
		reminderService,
		client.NewWeatherClient(cfg.Weather.BaseURL, cfg.Weather.APIKey),
		client.NewNewsClient(cfg.News.BaseURL, cfg.News.APIKey, cfg.News.RSSURL),
	)

	serverErr := make(chan error, 1)
	var srv *http.Server
	if cfg.HTTPEnabled {
		httpMetrics, err := metrics.NewHTTPMetrics()
		if err != nil {
			slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
			return 1
		}

		engine := newRouter(cfg, routerDeps{
			reminders:   reminderService,
			commands:    router,
			eventsHub:   eventsHub,
			health:      health.NewChecker(store, string(cfg.Store.Driver), sched.Len, Version),
			httpMetrics: httpMetrics,
		})

		srv = &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: engine,
		}

		go func() {
			slog.Info("starting server", slog.String("port", cfg.Port))
			serverErr <- srv.ListenAndServe()
		}()
	}

	loopDone := make(chan error, 1)
	if cfg.Assistant.ConsoleEnabled {
		loop := command.NewLoop(router, &command.Session{
			Speaker:       sessionSpeaker,
			Listener:      speech.NewConsoleListener(os.Stdin),
			ListenTimeout: cfg.Assistant.ListenTimeout,
		}, cfg.Assistant.WakeWords, cfg.Assistant.RequireWakeWord)

		go func() {
			loopDone <- loop.Run(ctx)
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-loopDone:
		if err != nil {
			slog.Error("command loop exited with error", slog.String("error", err.Error()))
			exitCode = 1
		} else {
			slog.Info("command loop finished")
		}
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited with error", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	cancel()

	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			exitCode = 1
		} else {
			slog.Info("server exited properly")
		}
	}

	return exitCode
}

type routerDeps struct {
	reminders   handler.ReminderService
	commands    handler.Dispatcher
	eventsHub   *handler.EventsHub
	health      *health.Checker
	httpMetrics *metrics.HTTPMetrics
}

func newRouter(cfg *config.Config, deps routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/api/v1/events"},
		Module:      moduleName,
		TracerName:  "github.com/KasumiMercury/primind-voice-assistant/internal/observability/middleware",
		HTTPMetrics: deps.httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	r.GET("/health/live", deps.health.LiveHandler())
	r.GET("/health/ready", deps.health.ReadyHandler())
	r.GET("/health", deps.health.ReadyHandler())

	reminderHandler := handler.NewReminderHandler(deps.reminders)
	// Replies are mirrored to websocket clients, not to the local console.
	commandHandler := handler.NewCommandHandler(deps.commands, deps.eventsHub)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	v1 := r.Group("/api/v1")
	v1.GET("/events", deps.eventsHub.HandleEvents)

	limited := v1.Group("", limiter.Gin())
	{
		limited.POST("/reminders", reminderHandler.HandleCreate)
		limited.GET("/reminders/pending", reminderHandler.HandlePending)
		limited.GET("/reminders/:id", reminderHandler.HandleGet)
		limited.DELETE("/reminders/:id", reminderHandler.HandleCancel)
		limited.POST("/commands", commandHandler.HandleCommand)
	}

	return r
}
