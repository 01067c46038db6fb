package main

import (
	"context"
	"net/http"

	"roshanservice/config"
	"roshanservice/db"
	"roshanservice/db/mongo"
	"roshanservice/db/postgres"
	"roshanservice/handlers"
	"roshanservice/repository"
	"roshanservice/routes"
	"roshanservice/slip"
	"roshanservice/utils"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load config from .env or environment
	cfg := config.LoadConfig()

	var serviceRepo repository.ServiceRepository
	var userRepo repository.UserRepository
	var shopRepo repository.ShopRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			logger.Fatal("postgres connect failed", zap.Error(err))
		}
		defer pg.Disconnect()

		serviceRepo = repository.NewPostgresServiceRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		shopRepo = repository.NewPostgresShopRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			logger.Fatal("mongo connect failed", zap.Error(err))
		}
		defer mg.Disconnect()

		serviceRepo = repository.NewMongoServiceRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)
		shopRepo = repository.NewMongoShopRepo(mg.Client)

	default:
		logger.Fatal("DB_TYPE not supported", zap.String("dbType", cfg.DBType))
	}

	uploader, err := utils.NewR2Uploader(context.Background(), utils.R2Config{
		Bucket:          cfg.R2Bucket,
		AccountID:       cfg.R2AccountID,
		PublicBaseURL:   cfg.R2PublicURL,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
	})
	if err != nil {
		logger.Fatal("object storage init failed", zap.Error(err))
	}

	renderer, err := slip.NewRenderer(cfg.SlipTemplatePath)
	if err != nil {
		logger.Fatal("slip renderer init failed", zap.Error(err))
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo, JWTSecret: cfg.JWTSecret}
	serviceHandler := &handlers.ServiceHandler{Repo: serviceRepo, Uploader: uploader, Logger: logger}
	shopHandler := &handlers.ShopHandler{Repo: shopRepo}

	slipRepo := repository.NewSlipRepository(serviceRepo, shopRepo)
	slipHandler := &handlers.SlipHandler{
		Repo:     slipRepo,
		Renderer: renderer,
		Uploader: uploader,
		Logger:   logger,
	}

	routes.SetupRoutes(logger, userHandler, serviceHandler, shopHandler, slipHandler)

	logger.Info("server running", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
