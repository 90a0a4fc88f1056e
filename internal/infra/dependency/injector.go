// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/care-for-plants/backend/config"
	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/application/usecase/auth"
	"github.com/care-for-plants/backend/internal/application/usecase/careprofile"
	"github.com/care-for-plants/backend/internal/application/usecase/location"
	"github.com/care-for-plants/backend/internal/application/usecase/plant"
	"github.com/care-for-plants/backend/internal/application/usecase/wishlist"
	"github.com/care-for-plants/backend/internal/infra/metrics"
	"github.com/care-for-plants/backend/internal/infra/server/router"
	"github.com/care-for-plants/backend/internal/integration/adapters"
	"github.com/care-for-plants/backend/internal/integration/cache"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/controller"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/middleware"
	"github.com/care-for-plants/backend/internal/integration/persistence"
	"github.com/care-for-plants/backend/internal/integration/trefle"
)

// Injector holds all application dependencies.
type Injector struct {
	Config  *config.Config
	DB      *gorm.DB
	Router  *router.Router
	Metrics *metrics.Metrics

	redisClient *redis.Client
}

// Options overrides collaborators that are normally built from the config.
type Options struct {
	Catalog adapter.PlantCatalog
	Clock   adapter.Clock
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(ctx context.Context, cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	m, err := metrics.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	inj := &Injector{Config: cfg, DB: db, Metrics: m}

	lookupCache, cacheChecker := inj.newLookupCache(ctx)

	catalog := opts.Catalog
	if catalog == nil {
		catalog = trefle.NewClient(trefle.Config{
			Token:    cfg.Trefle.Token,
			BaseURL:  cfg.Trefle.BaseURL,
			Timeout:  cfg.Trefle.Timeout,
			CacheTTL: cfg.Cache.TTL,
			Recorder: m,
		}, lookupCache)
	}
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	profileRepo := persistence.NewCareProfileRepository(db)
	store := persistence.NewGardenStore(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Auth.PasswordHashCost)
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	resolver := careprofile.NewResolveCareProfileUseCase(profileRepo, catalog, m)

	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(userRepo, tokenService),
		auth.NewLogoutUserUseCase(tokenService),
		auth.NewGetCurrentUserUseCase(userRepo),
	)

	speciesController := controller.NewSpeciesController(
		careprofile.NewSearchSpeciesUseCase(catalog),
		careprofile.NewPreviewSpeciesUseCase(profileRepo, catalog),
	)

	careProfileController := controller.NewCareProfileController(
		careprofile.NewUpdateCareProfileUseCase(profileRepo, store, clock),
	)

	locationController := controller.NewLocationController(
		location.NewCreateLocationUseCase(store),
		location.NewListLocationsUseCase(store),
		location.NewGetLocationUseCase(store, profileRepo, clock),
		location.NewUpdateLocationUseCase(store, clock),
		location.NewDeleteLocationUseCase(store),
	)

	plantController := controller.NewPlantController(
		plant.NewAddPlantUseCase(store, resolver, clock),
		plant.NewListPlantsUseCase(store, profileRepo, clock),
		plant.NewDeletePlantUseCase(store),
		plant.NewMarkCareDoneUseCase(store, profileRepo, clock),
		plant.NewSimulateDaysUseCase(store, profileRepo, clock),
		plant.NewRelocatePlantUseCase(store, profileRepo, clock),
		plant.NewRecommendLocationsUseCase(store, profileRepo),
		plant.NewGetDashboardUseCase(store, profileRepo, clock),
	)

	wishlistController := controller.NewWishlistController(
		wishlist.NewAddToWishlistUseCase(store, resolver, clock),
		wishlist.NewListWishlistUseCase(store, profileRepo),
		wishlist.NewRemoveFromWishlistUseCase(store),
	)

	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheChecker)

	inj.Router = router.NewRouter(
		router.Controllers{
			Health:      healthController,
			Auth:        authController,
			Species:     speciesController,
			CareProfile: careProfileController,
			Location:    locationController,
			Plant:       plantController,
			Wishlist:    wishlistController,
		},
		middleware.NewRateLimiter(cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow),
		middleware.NewAuthMiddleware(tokenService),
		m,
		m.Handler(),
	)

	return inj, nil
}

// newLookupCache connects to Redis when configured and falls back to an
// in-process cache otherwise.
func (inj *Injector) newLookupCache(ctx context.Context) (trefle.Cache, controller.HealthChecker) {
	cfg := inj.Config
	if cfg.Redis.URL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
		if err == nil {
			inj.redisClient = client
			slog.Info("Lookup cache using Redis")
			return cache.NewRedis(client), func() bool {
				pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return client.Ping(pingCtx).Err() == nil
			}
		}
		slog.Warn("Redis unavailable, using in-process lookup cache", "error", err)
	}
	return cache.NewMemory(cfg.Cache.TTL), nil
}

// Close releases connections owned by the injector.
func (inj *Injector) Close() error {
	if inj.redisClient == nil {
		return nil
	}
	if err := inj.redisClient.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	return nil
}
