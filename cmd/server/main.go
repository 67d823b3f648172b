package main

import (
	"AuctionHouse/internal/auction"
	"AuctionHouse/internal/config"
	"AuctionHouse/internal/events"
	"AuctionHouse/internal/handlers"
	"AuctionHouse/internal/middleware"
	"AuctionHouse/internal/repo"
	"AuctionHouse/internal/service"
	"AuctionHouse/internal/store"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx := context.Background()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)
	userService := service.NewUserService(userRepo)

	// прогрев in-memory хранилища лотов из БД
	itemStore := store.NewItemStore()
	items, err := itemRepo.LoadAll(ctx)
	if err != nil {
		sugar.Fatalw("failed to load items", "error", err)
	}
	for _, it := range items {
		itemStore.Insert(it.ID, it)
	}
	sugar.Infow("Item store warmed up", "count", itemStore.Count())

	// события аукциона: Redis Pub/Sub, если сконфигурирован
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RedisAddr != "" {
		redisPub, err := events.NewRedisPublisher(ctx, cfg.RedisAddr)
		if err != nil {
			sugar.Fatalw("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
		}
		defer func() { _ = redisPub.Close() }()
		publisher = redisPub
	}

	engine := auction.NewEngine(itemStore, itemRepo, userService, publisher, sugar, cfg.MaxBidAmount)
	queries := auction.NewQueries(itemStore)

	h := handlers.NewHandler(userService, engine, queries, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"RedisAddr", cfg.RedisAddr,
		"MaxBidAmount", cfg.MaxBidAmount,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
