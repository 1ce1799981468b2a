package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AveQY/ddhj/config"
	"github.com/AveQY/ddhj/internal/handler"
	"github.com/AveQY/ddhj/internal/middleware"
	"github.com/AveQY/ddhj/internal/service"
	"github.com/AveQY/ddhj/pkg/database"
	"github.com/AveQY/ddhj/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Initialize Logger
	logger.Init(config.AppConfig.Logger)
	defer zap.L().Sync()

	// 3. Connect to Database
	db, err := database.Connect(config.AppConfig.Database)
	if err != nil {
		zap.S().Fatalf("Failed to connect to database: %v", err)
	}

	// 4. Auto-Migrate Models
	if err := database.Migrate(db); err != nil {
		zap.S().Fatalf("Migration failed: %v", err)
	}
	zap.S().Info("Migrations completed successfully.")

	// 5. Initialize Router
	if config.AppConfig.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// 6. Setup Routes
	categoryHandler := handler.NewCategoryHandler(service.NewCategoryService(db))
	productHandler := handler.NewProductHandler(service.NewProductService(db))
	specHandler := handler.NewSpecificationHandler(service.NewSpecificationService(db))
	orderHandler := handler.NewOrderHandler(service.NewOrderService(db))
	statisticsHandler := handler.NewStatisticsHandler(service.NewStatisticsService(db))
	uploadHandler := handler.NewUploadHandler(config.AppConfig.Upload)

	api := r.Group("/api")
	{
		api.GET("/categories", categoryHandler.List)
		api.GET("/categories/:id", categoryHandler.Get)
		api.POST("/categories", categoryHandler.Create)
		api.PUT("/categories/:id", categoryHandler.Update)
		api.DELETE("/categories/:id", categoryHandler.Delete)
		api.POST("/categories/sort", categoryHandler.Sort)

		api.GET("/products", productHandler.List)
		api.GET("/products/all", productHandler.ListAll)
		api.GET("/products/:id", productHandler.Get)
		api.POST("/products", productHandler.Create)
		api.PUT("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		api.GET("/specifications/product/:productId", specHandler.ListByProduct)
		api.GET("/specifications/:id", specHandler.Get)
		api.POST("/specifications", specHandler.Create)
		api.PUT("/specifications/:id", specHandler.Update)
		api.DELETE("/specifications/:id", specHandler.Delete)

		api.POST("/orders", orderHandler.Create)
		api.GET("/orders", orderHandler.List)
		api.GET("/orders/:id", orderHandler.Get)
		api.GET("/orders/number/:number", orderHandler.GetByNumber)
		api.DELETE("/orders/:id", orderHandler.Delete)

		api.GET("/statistics/revenue", statisticsHandler.Revenue)
		api.GET("/statistics/revenue/day", statisticsHandler.DayRevenue)
		api.GET("/statistics/hot-products", statisticsHandler.HotProducts)

		api.POST("/upload", uploadHandler.Upload)
	}
	r.Static("/api/image", config.AppConfig.Upload.Dir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 7. Start Server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Server.Port,
		Handler: r,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	errGrp, shutdownCtx := errgroup.WithContext(shutdownCtx)
	errGrp.Go(func() error {
		zap.S().Infof("Server starting on port %s", config.AppConfig.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	errGrp.Go(func() error {
		<-shutdownCtx.Done()
		zap.S().Info("Server shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})

	if err := errGrp.Wait(); err != nil {
		zap.S().Fatalf("Server error: %v", err)
	}
	zap.S().Info("Server stopped.")
}
