package events

import (
	"context"
	"time"
)

// BidAccepted публикуется после успешного принятия ставки.
type BidAccepted struct {
	EventID        string    `json:"event_id"`
	ItemID         uint64    `json:"item_id"`
	BidID          string    `json:"bid_id"`
	Owner          int64     `json:"owner"`
	Amount         uint32    `json:"amount"`
	PreviousAmount uint32    `json:"previous_amount"`
	PlacedAt       time.Time `json:"placed_at"`
}

// AuctionEnded публикуется после закрытия лота.
type AuctionEnded struct {
	EventID     string    `json:"event_id"`
	ItemID      uint64    `json:"item_id"`
	Winner      int64     `json:"winner"` // 0, если ставок не было
	FinalAmount uint32    `json:"final_amount"`
	EndedAt     time.Time `json:"ended_at"`
}

// Publisher — рассылка событий аукциона внешним потребителям.
// Публикация best-effort: мутация уже зафиксирована, поэтому сбой
// рассылки логируется, но не возвращается вызывающему.
type Publisher interface {
	PublishBidAccepted(ctx context.Context, ev BidAccepted) error
	PublishAuctionEnded(ctx context.Context, ev AuctionEnded) error
}

// NopPublisher — заглушка, когда Redis не сконфигурирован.
type NopPublisher struct{}

func (NopPublisher) PublishBidAccepted(context.Context, BidAccepted) error { return nil }
func (NopPublisher) PublishAuctionEnded(context.Context, AuctionEnded) error {
	return nil
}
