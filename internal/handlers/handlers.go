package handlers

import (
	"AuctionHouse/internal/auction"
	"AuctionHouse/internal/config"
	"AuctionHouse/internal/middleware"
	"AuctionHouse/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	engine *auction.Engine,
	queries *auction.Queries,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	itemHandler := NewItemHandler(engine, queries, logger, config)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/test", userHandler.Status)

	// Query routes (чтение, без авторизации)
	r.Get("/api/items", itemHandler.ListItems)
	r.Get("/api/items/count", itemHandler.ItemCount)
	r.Get("/api/items/most-bidded", itemHandler.MostBidded)
	r.Get("/api/items/most-sold", itemHandler.MostSold)
	r.Get("/api/items/{id}", itemHandler.GetItem)

	// Mutating routes (через движок, только авторизованные)
	r.Post("/api/items/{id}", itemHandler.CreateItem)
	r.Put("/api/items/{id}", itemHandler.EditItem)
	r.Post("/api/items/{id}/end", itemHandler.EndItem)
	r.Post("/api/items/{id}/bid", itemHandler.PlaceBid)

	return &Handler{Router: r}
}
