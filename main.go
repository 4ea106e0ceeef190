package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appconfig "github.com/karigarstudio/karigar-studio-api/config"
	"github.com/karigarstudio/karigar-studio-api/controllers"
	"github.com/karigarstudio/karigar-studio-api/middleware"
	"github.com/karigarstudio/karigar-studio-api/models"
	"github.com/karigarstudio/karigar-studio-api/services"
	"github.com/karigarstudio/karigar-studio-api/stores"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := appconfig.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}
	if cfg.IsDevelopment() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	logger.Info().Str("backend", cfg.StoreBackend).Msg("starting karigar studio api")

	var s *stores.Stores
	switch cfg.StoreBackend {
	case appconfig.BackendMemory:
		s = stores.NewMemoryStores()
		logger.Warn().Msg("using the in-memory backing, data will not survive a restart")
	default:
		if err := appconfig.ConnectDatabase(); err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		db := appconfig.GetDB()
		if err := db.AutoMigrate(
			&models.Karigar{}, &models.Client{},
			&models.Assignment{}, &models.Order{},
		); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate database")
		}
		logger.Info().Msg("database migration completed")
		s = stores.NewGormStores(db)
	}

	var images services.ImageStorage
	if cfg.AWSS3Bucket != "" {
		s3, err := services.NewS3Service(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize s3 storage")
		}
		images = s3
	} else {
		logger.Warn().Msg("AWS_S3_BUCKET is not set, design image uploads are disabled")
	}

	var exporter services.OrderExporter
	if cfg.SheetsAPIKey != "" && cfg.SpreadsheetID != "" {
		sheets, err := services.NewSheetsService(context.Background(), cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize sheets export")
		}
		exporter = sheets
	} else {
		logger.Warn().Msg("google sheets credentials are not set, order export is disabled")
	}

	router := setupRouter(cfg, logger, s, images, exporter)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("server listening")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func setupRouter(cfg *appconfig.Config, logger zerolog.Logger, s *stores.Stores, images services.ImageStorage, exporter services.OrderExporter) *gin.Engine {
	if cfg.IsTest() {
		gin.SetMode(gin.TestMode)
	} else if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	karigars := controllers.NewKarigarController(s.Karigars)
	clients := controllers.NewClientController(s.Clients)
	assignments := controllers.NewAssignmentController(s.Assignments, s.Karigars)
	orders := controllers.NewOrderController(s.Orders, s.Karigars, s.Clients, images)
	dashboard := controllers.NewDashboardController(s)
	export := controllers.NewExportController(s.Orders, exporter)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus(cfg))

		v1.GET("/karigars", karigars.List)
		v1.GET("/karigars/:id", karigars.Get)
		v1.POST("/karigars", karigars.Create)
		v1.PATCH("/karigars/:id", karigars.Update)
		v1.PATCH("/karigars/:id/status", karigars.UpdateStatus)
		v1.DELETE("/karigars/:id", karigars.Delete)

		v1.GET("/clients", clients.List)
		v1.GET("/clients/:id", clients.Get)
		v1.POST("/clients", clients.Create)
		v1.PATCH("/clients/:id", clients.Update)
		v1.PATCH("/clients/:id/status", clients.UpdateStatus)
		v1.DELETE("/clients/:id", clients.Delete)

		v1.GET("/assignments", assignments.List)
		v1.GET("/assignments/:id", assignments.Get)
		v1.POST("/assignments", assignments.Create)
		v1.PATCH("/assignments/:id", assignments.Update)
		v1.DELETE("/assignments/:id", assignments.Delete)

		v1.GET("/orders", orders.List)
		v1.GET("/orders/:id", orders.Get)
		v1.POST("/orders", orders.Create)
		v1.PATCH("/orders/:id", orders.Update)
		v1.DELETE("/orders/:id", orders.Delete)
		v1.POST("/orders/:id/image", orders.UploadImage)

		v1.GET("/dashboard/stats", dashboard.Stats)
		v1.POST("/export/sheets", export.ExportSheets)
	}

	return router
}

// healthCheck handles GET /api/v1/health
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Karigar Studio API is running",
	})
}

// databaseStatus handles GET /api/v1/database/status. With the in-memory
// backing there is no database to ping, so it just reports the backend.
func databaseStatus(cfg *appconfig.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.StoreBackend == appconfig.BackendMemory {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Using the in-memory backing",
				"backend": appconfig.BackendMemory,
			})
			return
		}

		db := appconfig.GetDB()
		if db == nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Database is not initialized",
				},
			})
			return
		}

		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to get database instance",
				},
			})
			return
		}

		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_CONNECTION_ERROR",
					"message": "Database connection failed",
				},
			})
			return
		}

		var tables []string
		if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_QUERY_ERROR",
					"message": "Failed to query tables",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Database connected",
			"backend": appconfig.BackendDatabase,
			"tables":  tables,
		})
	}
}
