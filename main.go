package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kariqs/foodcourt-api/controllers"
	"github.com/Kariqs/foodcourt-api/initializers"
	"github.com/Kariqs/foodcourt-api/middlewares"
	"github.com/Kariqs/foodcourt-api/reports"
	"github.com/Kariqs/foodcourt-api/repository"
	"github.com/Kariqs/foodcourt-api/routes"
	"github.com/Kariqs/foodcourt-api/services"
	"github.com/Kariqs/foodcourt-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const adminTokenTTL = 30 * 24 * time.Hour

var issueAdminToken = flag.Bool("issue-admin-token", false, "Print a 30 day admin token signed with ADMIN_JWT_SECRET and exit")

func init() {
	initializers.LoadEnv()
}

func main() {
	flag.Parse()
	cfg := initializers.AppConfig

	if *issueAdminToken {
		token, err := utils.GenerateAdminToken(cfg.AdminJWTSecret, adminTokenTTL)
		if err != nil {
			log.Fatalf("Failed to issue admin token: %v", err)
		}
		fmt.Println(token)
		return
	}

	initializers.ConnectToDB()
	initializers.SyncDatabase()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var archive reports.Archive = reports.Dir{Path: cfg.ReportsDir}
	if cfg.ReportsS3Bucket != "" {
		mirror, err := reports.NewS3Mirror(ctx, archive, cfg.ReportsS3Bucket, cfg.ReportsS3Prefix)
		if err != nil {
			log.Fatalf("Failed to configure S3 report mirror: %v", err)
		}
		archive = mirror
		log.Printf("Mirroring day-end reports to s3://%s/%s", cfg.ReportsS3Bucket, cfg.ReportsS3Prefix)
	}

	var notifier reports.Notifier
	if cfg.DayEndWebhookURL != "" {
		notifier = reports.NewWebhookNotifier(cfg.DayEndWebhookURL)
	}

	store := repository.NewGormStore(initializers.DB)
	handlers := controllers.New(
		services.NewCatalogService(store),
		services.NewOrderService(store),
		services.NewWaiterService(store),
		services.NewDayEndService(store, archive, notifier),
	)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	server := gin.New()
	server.Use(middlewares.RequestID(), middlewares.AccessLog(), gin.Recovery(), middlewares.Metrics())
	server.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	routes.Register(server, handlers, routes.Options{
		AdminSecret: cfg.AdminJWTSecret,
		ReportsDir:  cfg.ReportsDir,
	})
	if cfg.AdminJWTSecret == "" {
		log.Println("ADMIN_JWT_SECRET is not set, admin routes are open.")
	}

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		cancel()
	}()

	log.Printf("Food court API listening on port %s", cfg.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}
