package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"AuctionHouse/internal/auction"
	"AuctionHouse/internal/config"
	"AuctionHouse/internal/middleware"
	"AuctionHouse/internal/model"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает операции над лотами: запросы читают Queries,
// мутации идут через движок аукциона.
type ItemHandler struct {
	Engine  *auction.Engine
	Queries *auction.Queries
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(engine *auction.Engine, queries *auction.Queries, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{Engine: engine, Queries: queries, Logger: logger, Config: cfg}
}

func itemID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeEngineError маппит типизированные ошибки движка в HTTP-статусы.
func writeEngineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, auction.ErrNoSuchAuction):
		status = http.StatusNotFound
	case errors.Is(err, auction.ErrAuctionIsNotActive):
		status = http.StatusConflict
	case errors.Is(err, auction.ErrExpired):
		status = http.StatusGone
	case errors.Is(err, auction.ErrAccessRejected):
		status = http.StatusForbidden
	case errors.Is(err, auction.ErrBidAmountLessThanCurrent):
		status = http.StatusConflict
	case errors.Is(err, auction.ErrReachMaxBid),
		errors.Is(err, auction.ErrOwnerIsNotValid),
		errors.Is(err, auction.ErrInvalidChoice):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// GetItem возвращает лот по id.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}
	item, ok := h.Queries.GetItem(id)
	if !ok {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ListItems возвращает все лоты; пустое хранилище — 204 без тела.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items := h.Queries.ListItems()
	if items == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ItemCount возвращает число лотов.
func (h *ItemHandler) ItemCount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"count": h.Queries.ItemCount()})
}

// MostBidded возвращает лот с наибольшим числом ставок.
func (h *ItemHandler) MostBidded(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Queries.MostBiddedItem()
	if !ok {
		http.Error(w, "no items", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// MostSold возвращает закрытый лот с наибольшей итоговой суммой.
func (h *ItemHandler) MostSold(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Queries.MostSoldItem()
	if !ok {
		http.Error(w, "no items", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CreateItem создаёт лот от имени вызывающего.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}
	var payload model.CreateItem
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.Logger.Warnw("CreateItem: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	item := h.Engine.CreateItem(r.Context(), id, payload, caller)
	if item == nil {
		// отказ хранилища: дубликат id, неизвестная валюта, сбой записи
		writeJSON(w, http.StatusConflict, map[string]string{"error": "item refused"})
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// EditItem перезаписывает редактируемые поля лота.
func (h *ItemHandler) EditItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}
	var payload model.CreateItem
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Engine.EditItem(r.Context(), id, payload, caller); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}

// EndItem закрывает лот и фиксирует победителя.
func (h *ItemHandler) EndItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := h.Engine.EndItem(r.Context(), id); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}

// PlaceBid принимает ставку по лоту.
func (h *ItemHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}
	var payload model.CreateBid
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.Logger.Warnw("PlaceBid: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Engine.PlaceBid(r.Context(), id, payload, caller); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}
