package auction

import (
	"AuctionHouse/internal/model"
	"AuctionHouse/internal/store"
)

// Queries — read-only проекции над ItemStore. Никаких побочных эффектов,
// никаких предусловий кроме проверок существования.
type Queries struct {
	store *store.ItemStore
}

// NewQueries создаёт сервис запросов над хранилищем.
func NewQueries(s *store.ItemStore) *Queries {
	return &Queries{store: s}
}

// GetItem возвращает лот по id.
func (q *Queries) GetItem(id uint64) (model.Item, bool) {
	return q.store.Get(id)
}

// ListItems возвращает все лоты в порядке вставки.
// Пустое хранилище — nil ("данных нет"), а не пустой срез.
func (q *Queries) ListItems() []model.Item {
	var list []model.Item
	for _, it := range q.store.Iterate() {
		list = append(list, it)
	}
	return list
}

// ItemCount — размер хранилища.
func (q *Queries) ItemCount() int {
	return q.store.Count()
}

// MostBiddedItem — лот с наибольшим числом ставок. При равенстве побеждает
// первый встреченный в порядке итерации (детерминированно). Пустое
// хранилище — отсутствие результата.
func (q *Queries) MostBiddedItem() (model.Item, bool) {
	var best model.Item
	found := false
	for _, it := range q.store.Iterate() {
		if !found || len(it.Bids) > len(best.Bids) {
			best = it
			found = true
		}
	}
	return best, found
}

// MostSoldItem — среди закрытых лотов хотя бы с одной ставкой тот,
// что продан за наибольшую сумму. Тай-брейк тот же, что у MostBiddedItem.
func (q *Queries) MostSoldItem() (model.Item, bool) {
	var best model.Item
	found := false
	for _, it := range q.store.Iterate() {
		if it.IsActive || len(it.Bids) == 0 {
			continue
		}
		if !found || it.Amount > best.Amount {
			best = it
			found = true
		}
	}
	return best, found
}
