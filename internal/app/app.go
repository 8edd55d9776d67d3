package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	httpapp "solemate/internal/app/http"
	"solemate/internal/config"
	"solemate/internal/repository"
	catalogsvc "solemate/internal/services/catalog_service"
	ordersvc "solemate/internal/services/order_service"
	usersvc "solemate/internal/services/user_service"
	wishsvc "solemate/internal/services/wishlist_service"
	"solemate/internal/storage/postgresql"
	redisapp "solemate/internal/storage/redis"
	httprouters "solemate/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	storage *postgresql.Storage
	redis   *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := storage.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	// profile pictures live under a subdirectory of the static root
	if err := os.MkdirAll(filepath.Join(cfg.Static.BaseDir, "profiles"), 0755); err != nil {
		return nil, err
	}

	repo := repository.NewRepositoryWithPool(storage.DB)

	var redisClient *redisapp.Client
	var sessions repository.SessionRepository
	if cfg.Redis.Addr != "" {
		redisClient = redisapp.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		sessions = repository.NewRedisSessionRepo(redisClient)
	} else {
		log.Info("no redis address configured, using in-process session store")
		sessions = repository.NewMemorySessionRepo(cfg.SessionTTL)
	}

	userService := usersvc.NewUserService(log, repo.User, sessions, cfg.SessionTTL)
	catalogService := catalogsvc.NewCatalogService(log, repo.Product)
	orderService := ordersvc.NewOrderService(log, repo.Order)
	wishlistService := wishsvc.NewWishlistService(log, repo.Wishlist)

	routers := httprouters.NewRouter(log, userService, catalogService, orderService, wishlistService)

	server := httpapp.New(log, cfg.Session.Secret, cfg.HTTP.Host, cfg.HTTP.Port, cfg.Static.BaseDir, routers)

	return &App{
		HTTPServer: server,
		storage:    storage,
		redis:      redisClient,
	}, nil
}

func (a *App) Stop() {
	_ = a.HTTPServer.Stop()

	if a.redis != nil {
		a.redis.Close()
	}

	a.storage.Stop()
}
