package store

import (
	"iter"
	"sync"

	"AuctionHouse/internal/model"
)

// ItemStore — авторитетное in-memory хранилище лотов: id -> Item
// с сохранением порядка вставки для итерации.
// Значения копируются на входе и выходе, так что ссылки наружу не утекают.
// Писатель один (Auction Engine), читателей может быть много.
type ItemStore struct {
	mu    sync.RWMutex
	items map[uint64]model.Item
	order []uint64
}

// NewItemStore создаёт пустое хранилище.
func NewItemStore() *ItemStore {
	return &ItemStore{items: make(map[uint64]model.Item)}
}

// Get возвращает копию лота по id. Отсутствие — не ошибка.
func (s *ItemStore) Get(id uint64) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return model.Item{}, false
	}
	return it.Clone(), true
}

// Insert вставляет либо перезаписывает слот id. При перезаписи лот
// сохраняет исходную позицию в порядке итерации.
func (s *ItemStore) Insert(id uint64, item model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = item.Clone()
}

// Count — число лотов в хранилище.
func (s *ItemStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Iterate — ленивая последовательность всех лотов в порядке вставки.
// Каждый вызов даёт свежий проход; снимок порядка берётся на старте,
// поэтому итерация не держит блокировку между элементами.
func (s *ItemStore) Iterate() iter.Seq2[uint64, model.Item] {
	return func(yield func(uint64, model.Item) bool) {
		s.mu.RLock()
		ids := make([]uint64, len(s.order))
		copy(ids, s.order)
		s.mu.RUnlock()

		for _, id := range ids {
			it, ok := s.Get(id)
			if !ok {
				continue
			}
			if !yield(id, it) {
				return
			}
		}
	}
}
