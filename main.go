// File: rateshopper/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rateshopper/config"
	"rateshopper/cron"
	"rateshopper/database"
	factorsRepo "rateshopper/database/repository/factors"
	ratePlanRepo "rateshopper/database/repository/rateplan"
	roomTypeRepo "rateshopper/database/repository/roomtype"
	snapshotRepo "rateshopper/database/repository/snapshot"
	"rateshopper/handlers"
	"rateshopper/middleware"
	"rateshopper/routes"
	"rateshopper/services/pricing"
	"rateshopper/services/rateshop"
	"rateshopper/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.DashboardOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// repositories.
	roomRepo := roomTypeRepo.NewMongoRoomTypeRepo()
	planRepo := ratePlanRepo.NewMongoRatePlanRepo()
	pfRepo := factorsRepo.NewMongoFactorsRepo()
	snapRepo := snapshotRepo.NewMongoSnapshotRepo()

	// services.
	rateShopService := rateshop.NewDefaultRateShopService(utils.GetCacheClient())
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	pricingService := &pricing.DefaultPricingService{
		RoomTypes:           roomRepo,
		RatePlans:           planRepo,
		Factors:             pfRepo,
		RateShop:            rateShopService,
		Queue:               queueClient,
		SnapshotTaskBuilder: cron.NewSnapshotTask,
	}

	// Background worker for snapshot persistence and rate refreshes, plus
	// the nightly refresh schedule.
	cron.InitPricingWorker(snapRepo, rateShopService, roomRepo)
	cron.InitRateRefreshScheduler()

	// Register routes with the assembled handlers.
	routes.RegisterRoutes(router, routes.Handlers{
		Pricing:   handlers.NewPricingHandler(pricingService),
		RoomTypes: handlers.NewRoomTypeHandler(roomRepo),
		RatePlans: handlers.NewRatePlanHandler(planRepo),
		Factors:   handlers.NewFactorsHandler(pfRepo),
		Snapshots: handlers.NewSnapshotHandler(snapRepo),
		RateShop:  handlers.NewRateShopHandler(queueClient),
	})

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
