package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/IanAndy202/Hotel-App/app"
	"github.com/IanAndy202/Hotel-App/app/handler"
	"github.com/IanAndy202/Hotel-App/app/metrics"
	"github.com/IanAndy202/Hotel-App/app/middleware"
	"github.com/IanAndy202/Hotel-App/app/repositories"
	"github.com/IanAndy202/Hotel-App/app/session"
	"github.com/IanAndy202/Hotel-App/app/usecases"
	"github.com/IanAndy202/Hotel-App/app/utils"
	"github.com/IanAndy202/Hotel-App/app/views"
	"github.com/IanAndy202/Hotel-App/config"
	"github.com/IanAndy202/Hotel-App/database"
	"github.com/IanAndy202/Hotel-App/server"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// Record store
	var store repositories.RecordStore
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := database.NewPostgresDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		err = repositories.EnsureSchema(ctx, db.GetDB(),
			repositories.UsersDocument, repositories.RoomsDocument,
			repositories.GuestsDocument, repositories.CleaningTasksDocument)
		if err != nil {
			return err
		}
		store = repositories.NewPostgresStore(db.GetDB())
	default:
		store = repositories.NewJSONFileStore(cfg.Storage.DataDir)
	}

	// Session store
	var sessions session.Store
	if cfg.Session.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			return err
		}
		sessions = session.NewRedisStore(client, cfg.Session.TTL)
		slog.Info("using redis session store", "addr", cfg.Session.Redis.Addr)
	} else {
		sessions = session.NewMemoryStore(cfg.Session.TTL)
	}
	cookies := session.NewCookieCodec(cfg.Session.CookieName, cfg.Session.Secret, cfg.Session.TTL)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	var notifier usecases.CleaningNotifier
	if mailer := utils.NewMailer(cfg); mailer != nil {
		notifier = mailer
	}

	// Repositories
	userRepo := repositories.NewUserRepository(store)
	roomRepo := repositories.NewRoomRepository(store)
	guestRepo := repositories.NewGuestRepository(store)
	taskRepo := repositories.NewCleaningTaskRepository(store)

	// Usecases
	ids := utils.UUIDGenerator{}
	userUsecase := usecases.NewUserUsecase(userRepo, m)
	roomUsecase := usecases.NewRoomUsecase(roomRepo)
	guestUsecase := usecases.NewGuestUsecase(guestRepo, roomRepo, ids, m)
	cleaningUsecase := usecases.NewCleaningUsecase(taskRepo, ids, time.Now, notifier, m)
	dashboardUsecase := usecases.NewDashboardUsecase(roomRepo, taskRepo)

	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}
	srv := server.NewEchoServer(cfg, renderer)

	app.RegisterRoutes(
		srv.GetEcho(),
		handler.NewPageHandler(cfg.Server.HotelName),
		handler.NewAuthHandler(userUsecase, sessions, cookies),
		handler.NewDashboardHandler(roomUsecase, dashboardUsecase),
		handler.NewRoomHandler(roomUsecase, guestUsecase),
		handler.NewCleaningHandler(cleaningUsecase, roomUsecase),
		middleware.SessionMiddleware(sessions, cookies),
		metrics.Handler(registry),
	)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "port", cfg.Server.Port, "storage", cfg.Storage.Driver)
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
