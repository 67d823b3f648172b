package auction

import (
	"testing"

	"AuctionHouse/internal/model"
	"AuctionHouse/internal/store"

	"github.com/stretchr/testify/assert"
)

func bids(n int) []model.Bid {
	out := make([]model.Bid, n)
	for i := range out {
		out[i] = model.Bid{ID: "b", Amount: uint32(i + 1)}
	}
	return out
}

func TestQueries_EmptyStore(t *testing.T) {
	q := NewQueries(store.NewItemStore())

	_, ok := q.GetItem(1)
	assert.False(t, ok)
	assert.Nil(t, q.ListItems())
	assert.Equal(t, 0, q.ItemCount())
	_, ok = q.MostBiddedItem()
	assert.False(t, ok)
	_, ok = q.MostSoldItem()
	assert.False(t, ok)
}

func TestQueries_GetListCount(t *testing.T) {
	s := store.NewItemStore()
	s.Insert(3, model.Item{ID: 3, Title: "c"})
	s.Insert(1, model.Item{ID: 1, Title: "a"})
	q := NewQueries(s)

	it, ok := q.GetItem(3)
	assert.True(t, ok)
	assert.Equal(t, "c", it.Title)

	list := q.ListItems()
	if assert.Len(t, list, 2) {
		// порядок вставки, не порядок ключей
		assert.Equal(t, uint64(3), list[0].ID)
		assert.Equal(t, uint64(1), list[1].ID)
	}
	assert.Equal(t, 2, q.ItemCount())
}

func TestQueries_MostBiddedItem(t *testing.T) {
	s := store.NewItemStore()
	s.Insert(1, model.Item{ID: 1, Bids: bids(3)}) // A: 3 ставки
	s.Insert(2, model.Item{ID: 2, Bids: bids(5)}) // B: 5 ставок
	q := NewQueries(s)

	it, ok := q.MostBiddedItem()
	assert.True(t, ok)
	assert.Equal(t, uint64(2), it.ID)

	// тай-брейк: первый в порядке итерации
	s.Insert(3, model.Item{ID: 3, Bids: bids(5)})
	it, ok = q.MostBiddedItem()
	assert.True(t, ok)
	assert.Equal(t, uint64(2), it.ID)
}

func TestQueries_MostSoldItem(t *testing.T) {
	s := store.NewItemStore()
	// активный и закрытый без ставок не участвуют
	s.Insert(1, model.Item{ID: 1, IsActive: true, Amount: 900, Bids: bids(2)})
	s.Insert(2, model.Item{ID: 2, IsActive: false, Amount: 500})
	q := NewQueries(s)

	_, ok := q.MostSoldItem()
	assert.False(t, ok)

	s.Insert(3, model.Item{ID: 3, IsActive: false, Amount: 100, Bids: bids(1)})
	s.Insert(4, model.Item{ID: 4, IsActive: false, Amount: 250, Bids: bids(1)})
	it, ok := q.MostSoldItem()
	assert.True(t, ok)
	assert.Equal(t, uint64(4), it.ID)
}
