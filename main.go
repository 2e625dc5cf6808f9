package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/rtu-kota/canteen-api/config"
	"github.com/rtu-kota/canteen-api/controllers"
	"github.com/rtu-kota/canteen-api/middleware"
	"github.com/rtu-kota/canteen-api/models"
	"github.com/rtu-kota/canteen-api/services"
	"github.com/rtu-kota/canteen-api/store"
)

// documentStore is what the handlers need from persistence
type documentStore interface {
	store.Store
	store.Prober
}

// application groups everything the router needs
type application struct {
	cfg    *config.Config
	store  documentStore
	images *services.ImageService
}

func main() {
	log.Println("Starting RTU Kota Canteen API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	db, err := config.ConnectDatabase(ctx, cfg)
	if err != nil {
		log.Printf("Failed to connect to database, continuing without it: %v", err)
	}
	defer func() {
		if err := config.DisconnectDatabase(context.Background(), db); err != nil {
			log.Printf("%v", err)
		}
	}()

	documents := store.NewMongoStore(db)
	if !documents.Initialized() {
		log.Println("Document store is not initialized; data endpoints will return errors")
	}

	images, err := newImageService(ctx, cfg)
	if err != nil {
		log.Printf("Image uploads disabled: %v", err)
	}

	router := setupRouter(application{cfg: cfg, store: documents, images: images})

	addr := cfg.ListenAddr()
	log.Printf("Server is running on http://%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newImageService picks S3 when a bucket is configured and local disk otherwise
func newImageService(ctx context.Context, cfg *config.Config) (*services.ImageService, error) {
	if !cfg.ImageUploadsEnabled {
		return services.NewImageService(nil), nil
	}

	if cfg.UseS3() {
		s3Store, err := services.NewS3ImageStoreFromConfig(ctx, cfg)
		if err != nil {
			return services.NewImageService(nil), err
		}
		log.Printf("Storing menu images in S3 bucket %s", cfg.AWSS3Bucket)
		return services.NewImageService(s3Store), nil
	}

	log.Printf("Storing menu images in %s", cfg.UploadDir)
	return services.NewImageService(services.NewLocalImageStore(cfg.UploadDir)), nil
}

// setupRouter wires middleware and routes
func setupRouter(app application) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS(), middleware.RequestID())

	validator := models.NewValidator()
	system := controllers.NewSystemController(app.store, app.cfg)
	menu := controllers.NewMenuController(app.store, validator)
	orders := controllers.NewOrderController(app.store, validator)
	uploads := controllers.NewUploadController(app.images, app.cfg.UploadDir)

	router.GET("/", system.Root)
	router.GET("/test", system.Diagnostics)

	api := router.Group("/api")
	{
		api.GET("/hello", system.Hello)

		api.POST("/menu", menu.AddMenuItem)
		api.GET("/menu", menu.ListMenu)
		api.POST("/menu/images", uploads.UploadMenuImage)

		api.POST("/orders", orders.CreateOrder)
		api.GET("/orders", orders.ListOrders)

		api.GET("/uploads/:filename", uploads.GetUploadedImage)
	}

	return router
}
