package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	agency_module "github.com/todaypickup/gateway/internal/api/modules/agency"
	health_module "github.com/todaypickup/gateway/internal/api/modules/health"
	mall_module "github.com/todaypickup/gateway/internal/api/modules/mall"
	"github.com/todaypickup/gateway/pkg/todaypickup"
	"github.com/todaypickup/gateway/pkg/utils"
)

// shutdownTimeout bounds how long in-flight requests may run once a
// stop signal arrives.
const shutdownTimeout = 15 * time.Second

// Start runs the gateway until a stop signal arrives or the listener
// fails. The upstream client lives exactly as long as the server.
func Start(cfg *utils.Config) error {
	logger := newLogger(cfg)

	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")
	baseURL := cfg.GetWithDefault("TODAYPICKUP_BASE_URL", "https://admin.todaypickup.com")
	timeout := cfg.GetSeconds("HTTP_TIMEOUT", todaypickup.DefaultTimeout)

	client := todaypickup.NewClient(baseURL, timeout, logger)
	defer client.Close()

	engine := NewEngine(cfg, client, logger)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info().Str("port", port).Str("upstream", baseURL).Msg("gateway started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewEngine assembles the gin engine with middleware and all modules.
func NewEngine(cfg *utils.Config, client *todaypickup.Client, logger zerolog.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(AccessLog(logger))

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "agencyId"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Status endpoints live at the root, everything else under /api/v1
	health_module.RegisterRoutes(&engine.RouterGroup)

	baseGroup := engine.Group("/api/v1")
	agency_module.RegisterRoutes(baseGroup, agency_module.NewService(client))
	mall_module.RegisterRoutes(baseGroup, mall_module.NewService(client))

	return engine
}

func newLogger(cfg *utils.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetWithDefault("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
