package auction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"AuctionHouse/internal/events"
	"AuctionHouse/internal/model"
	"AuctionHouse/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Persister — запись лота в долговременное хранилище. Сбой маппится в ErrUpdate.
type Persister interface {
	Save(ctx context.Context, item *model.Item) error
}

// OwnerResolver резолвит заявленный логин владельца ставки в id пользователя.
type OwnerResolver interface {
	ResolveOwner(ctx context.Context, login string) (int64, error)
}

// Engine — единственный писатель в ItemStore: валидирует и применяет
// create/edit/end/bid. Мутации сериализуются мьютексом (одна операция
// за раз, в порядке поступления). Валидация целиком предшествует мутации;
// персистентная запись выполняется до коммита в память, поэтому
// неудавшаяся операция оставляет хранилище нетронутым.
type Engine struct {
	mu      sync.Mutex
	store   *store.ItemStore
	persist Persister
	owners  OwnerResolver
	pub     events.Publisher
	logger  *zap.SugaredLogger
	maxBid  uint32

	now func() time.Time // подменяется в тестах
}

// NewEngine собирает движок. maxBid — потолок ставки, параметр деплоя.
func NewEngine(s *store.ItemStore, p Persister, owners OwnerResolver, pub events.Publisher, logger *zap.SugaredLogger, maxBid uint32) *Engine {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &Engine{
		store:   s,
		persist: p,
		owners:  owners,
		pub:     pub,
		logger:  logger,
		maxBid:  maxBid,
		now:     time.Now,
	}
}

// nowText — текущее время в текстовой кодировке меток лота.
// Метки сравниваются только лексикографически (RFC3339 в UTC упорядочен).
func (e *Engine) nowText() string {
	return e.now().UTC().Format(time.RFC3339)
}

func (e *Engine) pastEndTime(it model.Item) bool {
	return it.EndTime != "" && e.nowText() > it.EndTime
}

// CreateItem вставляет новый лот: owner = вызывающий, история ставок пуста.
// Возвращает nil, если хранилище отказало идентификатору: дубликат id,
// неизвестная валюта либо сбой персистентной записи. Отказ тотален —
// состояние не меняется.
func (e *Engine) CreateItem(ctx context.Context, id uint64, p model.CreateItem, caller int64) *model.Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur, err := model.ParseCurrency(p.Currency)
	if err != nil {
		e.logger.Warnw("create_item: rejected payload", "id", id, "error", err)
		return nil
	}
	if _, exists := e.store.Get(id); exists {
		e.logger.Warnw("create_item: duplicate id", "id", id)
		return nil
	}

	item := model.Item{
		ID:          id,
		Title:       p.Title,
		Description: p.Description,
		Owner:       caller,
		NewOwner:    model.UnsetOwner,
		Currency:    cur,
		Amount:      p.Amount,
		IsActive:    p.IsActive,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Bids:        []model.Bid{},
	}

	if err := e.persist.Save(ctx, &item); err != nil {
		e.logger.Errorw("create_item: persist failed", "id", id, "error", err)
		return nil
	}
	e.store.Insert(id, item)

	created := item.Clone()
	return &created
}

// EditItem перезаписывает редактируемые поля лота. История ставок не трогается.
func (e *Engine) EditItem(ctx context.Context, id uint64, p model.CreateItem, caller int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := e.store.Get(id)
	if !ok {
		return ErrNoSuchAuction
	}
	if !item.IsActive {
		return ErrAuctionIsNotActive
	}
	if e.pastEndTime(item) {
		return ErrExpired
	}
	if caller != item.Owner {
		return ErrAccessRejected
	}
	cur, err := model.ParseCurrency(p.Currency)
	if err != nil {
		return ErrInvalidChoice
	}

	item.Title = p.Title
	item.Description = p.Description
	item.IsActive = p.IsActive
	item.StartTime = p.StartTime
	item.EndTime = p.EndTime
	item.Currency = cur
	item.Amount = p.Amount

	if err := e.persist.Save(ctx, &item); err != nil {
		return fmt.Errorf("%w: %w", ErrUpdate, err)
	}
	e.store.Insert(id, item)
	return nil
}

// EndItem закрывает лот: is_active=false, new_owner = владелец ставки
// с наибольшей суммой (UnsetOwner, если ставок не было). Amount фиксируется.
func (e *Engine) EndItem(ctx context.Context, id uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := e.store.Get(id)
	if !ok {
		return ErrNoSuchAuction
	}
	if !item.IsActive {
		return ErrAuctionIsNotActive
	}

	winner := model.UnsetOwner
	var winAmount uint32
	for _, b := range item.Bids {
		if b.Amount > winAmount {
			winAmount = b.Amount
			winner = b.Owner
		}
	}

	item.IsActive = false
	item.NewOwner = winner

	if err := e.persist.Save(ctx, &item); err != nil {
		return fmt.Errorf("%w: %w", ErrUpdate, err)
	}
	e.store.Insert(id, item)

	ev := events.AuctionEnded{
		EventID:     uuid.NewString(),
		ItemID:      id,
		Winner:      winner,
		FinalAmount: item.Amount,
		EndedAt:     e.now().UTC(),
	}
	if err := e.pub.PublishAuctionEnded(ctx, ev); err != nil {
		e.logger.Warnw("end_item: event publish failed", "id", id, "error", err)
	}
	return nil
}

// PlaceBid принимает ставку: добавляет Bid в историю лота, переводит
// прежнего лидера в неактивные и поднимает item.Amount. Предусловия
// проверяются строго по порядку, первая неудача выигрывает.
func (e *Engine) PlaceBid(ctx context.Context, id uint64, p model.CreateBid, caller int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := e.store.Get(id)
	if !ok {
		return ErrNoSuchAuction
	}
	if !item.IsActive {
		return ErrAuctionIsNotActive
	}
	if e.pastEndTime(item) {
		return ErrExpired
	}
	if p.Amount <= item.Amount {
		return ErrBidAmountLessThanCurrent
	}
	if p.Amount > e.maxBid {
		return ErrReachMaxBid
	}
	if p.Owner == "" {
		return ErrOwnerIsNotValid
	}
	ownerID, err := e.owners.ResolveOwner(ctx, p.Owner)
	if err != nil || ownerID != caller {
		return ErrOwnerIsNotValid
	}
	cur, err := model.ParseCurrency(p.Currency)
	if err != nil || cur != item.Currency {
		return ErrInvalidChoice
	}

	// перебитая ставка остаётся в истории, снимается только флаг лидера
	for i := range item.Bids {
		item.Bids[i].IsActive = false
	}

	bid := model.Bid{
		ID:          uuid.NewString(),
		ItemID:      id,
		Description: p.Description,
		Owner:       caller,
		Currency:    cur,
		Amount:      p.Amount,
		IsActive:    true,
		CreatedAt:   e.now().UTC(),
	}
	prevAmount := item.Amount
	item.Bids = append(item.Bids, bid)
	item.Amount = p.Amount
	item.NewOwner = caller

	if err := e.persist.Save(ctx, &item); err != nil {
		return fmt.Errorf("%w: %w", ErrUpdate, err)
	}
	e.store.Insert(id, item)

	ev := events.BidAccepted{
		EventID:        uuid.NewString(),
		ItemID:         id,
		BidID:          bid.ID,
		Owner:          caller,
		Amount:         bid.Amount,
		PreviousAmount: prevAmount,
		PlacedAt:       bid.CreatedAt,
	}
	if err := e.pub.PublishBidAccepted(ctx, ev); err != nil {
		e.logger.Warnw("bid: event publish failed", "id", id, "error", err)
	}
	return nil
}
