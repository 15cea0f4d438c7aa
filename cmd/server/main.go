package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"momentum-screener/internal/config"
	httpdelivery "momentum-screener/internal/delivery/http"
	"momentum-screener/internal/delivery/websocket"
	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/alpaca"
	"momentum-screener/internal/infrastructure/cache"
	"momentum-screener/internal/infrastructure/db"
	"momentum-screener/internal/infrastructure/fcm"
	"momentum-screener/internal/repository"
	"momentum-screener/internal/usecase"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	ctx := context.Background()

	// Bar cache backed by SQLite so restarts do not re-fetch the universe.
	barCache, err := cache.NewSQLiteCache(cfg.Cache.Path, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)
	if err != nil {
		log.Fatalf("opening bar cache: %v", err)
	}
	defer barCache.Close()

	barSource := alpaca.NewClient(cfg.Alpaca.APIKey, cfg.Alpaca.APISecret, barCache)

	// Postgres is optional. Without it, tokens and alert preferences live
	// in memory and reset on restart.
	var tokenRepo domain.TokenRepository
	var configRepo domain.NotificationConfigRepository
	if cfg.Database.URL != "" {
		pool, err := db.NewPool(ctx, cfg.Database.URL, db.DefaultPoolConfig())
		if err != nil {
			log.Fatalf("connecting to database: %v", err)
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatalf("running migrations: %v", err)
		}

		tokenRepo = repository.NewPostgresTokenRepository(pool)
		configRepo = repository.NewPostgresNotificationConfigRepository(pool)
		log.Println("Using Postgres for notification state")
	} else {
		tokenRepo = repository.NewInMemoryTokenRepository()
		configRepo = repository.NewInMemoryNotificationConfigRepository()
		log.Println("No DATABASE_URL set, notification state is in-memory")
	}

	fcmClient, err := fcm.NewClient(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		log.Fatalf("initializing fcm: %v", err)
	}

	scanRepo := repository.NewInMemoryScanRepository()
	notifier := usecase.NewNotificationUsecase(fcmClient, tokenRepo, configRepo)
	screener := usecase.NewScreenerUsecase(barSource, scanRepo, notifier, cfg.Scan.Benchmark, usecase.ScanParams{
		TopN:      cfg.Scan.TopN,
		MinPrice:  cfg.Scan.MinPrice,
		MaxPrice:  cfg.Scan.MaxPrice,
		MinVolume: cfg.Scan.MinVolume,
	})

	// One scan at startup so the API has data, then on the cron schedule.
	go screener.RunScan()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Scan.Cron, screener.RunScan); err != nil {
		log.Fatalf("scheduling scan: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Scan:     httpdelivery.NewScanHandler(scanRepo, screener),
		Analysis: httpdelivery.NewAnalysisHandler(barSource, cfg.Scan.Benchmark),
		Position: httpdelivery.NewPositionHandler(),
		Token:    httpdelivery.NewTokenHandler(tokenRepo, notifier),
		Stream:   websocket.NewHandler(scanRepo),
	})

	log.Printf("Server listening on :%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
