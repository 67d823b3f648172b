package auction

import (
	"context"
	"testing"
	"time"

	"AuctionHouse/internal/events"
	"AuctionHouse/internal/model"
	"AuctionHouse/internal/store"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// fakePersister — персистер с инъекцией сбоя; запоминает сохранённые лоты.
type fakePersister struct {
	err   error
	saved []model.Item
}

func (f *fakePersister) Save(_ context.Context, item *model.Item) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, item.Clone())
	return nil
}

var _ Persister = (*fakePersister)(nil)

// мок для OwnerResolver
type mockResolver struct{ mock.Mock }

func (m *mockResolver) ResolveOwner(ctx context.Context, login string) (int64, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(int64), args.Error(1)
}

var _ OwnerResolver = (*mockResolver)(nil)

// capturingPublisher копит опубликованные события для проверок.
type capturingPublisher struct {
	bids  []events.BidAccepted
	ended []events.AuctionEnded
}

func (c *capturingPublisher) PublishBidAccepted(_ context.Context, ev events.BidAccepted) error {
	c.bids = append(c.bids, ev)
	return nil
}

func (c *capturingPublisher) PublishAuctionEnded(_ context.Context, ev events.AuctionEnded) error {
	c.ended = append(c.ended, ev)
	return nil
}

const testMaxBid = 1000

func newTestEngine(t *testing.T) (*Engine, *store.ItemStore, *fakePersister, *mockResolver) {
	t.Helper()
	s := store.NewItemStore()
	p := &fakePersister{}
	r := &mockResolver{}
	e := NewEngine(s, p, r, events.NopPublisher{}, zap.NewNop().Sugar(), testMaxBid)
	return e, s, p, r
}

func mkCreateItem(amount uint32) model.CreateItem {
	return model.CreateItem{
		Title:       "antique lamp",
		Description: "brass, 1920s",
		IsActive:    true,
		StartTime:   "2026-01-01T00:00:00Z",
		EndTime:     "2027-01-01T00:00:00Z",
		Currency:    "USD",
		Amount:      amount,
	}
}

func mkCreateBid(amount uint32, owner string) model.CreateBid {
	return model.CreateBid{
		Description: "my offer",
		Amount:      amount,
		Currency:    "USD",
		IsActive:    true,
		Owner:       owner,
	}
}

// фиксированные часы внутри окна активности mkCreateItem
func freezeClock(e *Engine, at string) {
	ts, err := time.Parse(time.RFC3339, at)
	if err != nil {
		panic(err)
	}
	e.now = func() time.Time { return ts }
}
