package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"appcenter-datasource-backend/config"
	_ "appcenter-datasource-backend/docs"
	"appcenter-datasource-backend/internal/controller"
	"appcenter-datasource-backend/internal/datasource"
	"appcenter-datasource-backend/internal/filestate"
	"appcenter-datasource-backend/internal/metrics"
	"appcenter-datasource-backend/internal/scheduler"
	"appcenter-datasource-backend/internal/service"
)

// @title           App Center Data Source API
// @version         1.0
// @description     Queries App Center analytics and diagnostics across every configured app and returns dashboard-ready tabular frames.

// @contact.name   API Support Team
// @contact.url    http://www.example.com/support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @tag.name         query
// @tag.description  Batched data source queries

// @tag.name         settings
// @tag.description  Data source settings

// @tag.name         health
// @tag.description  App Center connectivity check

func main() {
	app := fx.New(
		// Core Dependencies
		fx.Provide(
			NewConfig,
			metrics.New,
		),
		// Infrastructure Dependencies
		fx.Provide(
			NewGinEngine,
			NewFileStateManager,
			NewDataSourceProvider,
			service.NewQueryService,
			service.NewHealthService,
			service.NewSettingsService,
			controller.NewQueryController,
			controller.NewHealthController,
			controller.NewSettingsController,
		),
		fx.Invoke(
			RegisterAPIRoutes,
			RegisterScheduler,
		),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second) // Timeout for startup
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	// Initiate shutdown
	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second) // Timeout for graceful shutdown
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}
	log.Info().Msg("Exiting.")
}

func NewConfig() (*config.Config, error) {
	return config.NewConfig()
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(controller.RequestID())

	allowOrigins := cfg.Server.CORSAllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", controller.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", controller.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	queryController *controller.QueryController,
	healthController *controller.HealthController,
	settingsController *controller.SettingsController,
) {
	controller.RegisterQueryRoutes(router, queryController)
	controller.RegisterHealthRoutes(router, healthController)
	controller.RegisterSettingsRoutes(router, settingsController)
	metrics.ConfigureRouter(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

// --- Factory Functions ---

func NewFileStateManager(cfg *config.Config) filestate.Manager {
	return filestate.NewManager(cfg.Settings.FilePath)
}

func NewDataSourceProvider(cfg *config.Config, store filestate.Manager, counters *metrics.Counters) datasource.Provider {
	initial := datasource.LoadInitialConfig(cfg, store)
	return datasource.NewProvider(initial, datasource.NewHTTPFactory(cfg, counters), cfg.AppCenter.MaxConcurrentRequests)
}

// --- Invoker Functions ---

func RegisterScheduler(lc fx.Lifecycle, cfg *config.Config, healthSvc service.HealthService, counters *metrics.Counters) {
	scheduler.NewScheduler(lc, cfg, healthSvc, counters)
}
