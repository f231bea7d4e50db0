package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"bibliomate/internal/config"
	"bibliomate/internal/handler"
	"bibliomate/internal/logger"
	"bibliomate/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	port    string
)

var rootCmd = &cobra.Command{
	Use:   "bibliomate",
	Short: "Look up structured information about a book with Gemini",
	Long: `Bibliomate serves a single search page. Enter a book title and the
server asks Gemini for its publisher, details, summary, reviews, rating,
audience and three similar books.

Set GEMINI_API_KEY (or put it in .env.local). Without it the server starts
degraded and every search reports a failure.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initAnalyzer builds the analyzer; on failure the server keeps running degraded
func initAnalyzer(log *logrus.Logger, cfg *config.Config) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := handler.InitAnalyzer(ctx, cfg); err != nil {
		log.WithError(err).Warn("[INIT] Failed to initialize book analyzer")
		log.Warn("[INIT] Search will be unavailable")
		return false
	}
	return true
}

func serve() error {
	cfg, err := config.Load(cfgFile, ".env.local")
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}

	log := logger.Setup(cfg.LogLevel, cfg.Gemini.APIKey)
	log.WithField("env", cfg.Env).Info("[SERVER] Starting Bibliomate")

	handler.Configure(cfg.AnalyzeTimeout, cfg.SessionTTL)

	initAnalyzer(log, cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())

	if err := handler.LoadTemplates(r); err != nil {
		return err
	}

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 && gin.Mode() != gin.ReleaseMode {
		allowedOrigins = []string{"http://localhost:5173"}
	}

	api := r.Group("/api")
	if len(allowedOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
		// Group middleware only runs on matched routes, so preflights need one
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	handler.RegisterRoutes(r, api)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.WithFields(logrus.Fields{
		"port":            cfg.Port,
		"allowed_origins": allowedOrigins,
		"model":           cfg.Gemini.Model,
	}).Info("[SERVER] Server ready")

	return r.Run(":" + cfg.Port)
}
