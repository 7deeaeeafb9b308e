package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"restaurant-api/config"
	"restaurant-api/controllers"
	"restaurant-api/middlewares"
	"restaurant-api/routes"
	"restaurant-api/seeders"
	"restaurant-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, db, log, err := bootstrap(opts)
	if err != nil {
		return err
	}

	if err := config.Migrate(db); err != nil {
		return err
	}
	if cfg.SeedOnStart {
		if err := seeders.Seed(db, log); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	engine := NewEngine(cfg, db, log)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", "addr", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// NewEngine wires services, controllers and middleware into a gin engine.
func NewEngine(cfg *config.Config, db *gorm.DB, log *slog.Logger) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	catalog := services.NewCatalog(db)
	fiscal := services.NewSettingsFiscal(db)
	builder := services.NewOrderBuilder(catalog, services.BuilderOptions{
		ClientID: cfg.Accounting.ClientID,
		Source:   cfg.Accounting.Source,
	})
	orders := services.NewOrderService(fiscal, builder, services.NewOrderRepository(db), log)
	guests := services.NewGuestService(db, cfg.Auth.JWTSecret, cfg.Auth.GuestTokenTTL)

	routes.RegisterRoutes(r, routes.Handlers{
		Orders:            controllers.NewOrderController(orders, cfg.Accounting.Source),
		Catalog:           controllers.NewCatalogController(catalog),
		Settings:          controllers.NewSettingsController(fiscal),
		Guests:            controllers.NewGuestController(guests),
		Health:            controllers.NewHealthController(db),
		GuestTokens:       guests,
		RequireGuestToken: cfg.Auth.RequireGuestToken,
	})
	return r
}
