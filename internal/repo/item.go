package repo

import (
	"context"

	"AuctionHouse/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRepository — долговременное хранилище лотов. Движок аукциона пишет
// сюда до коммита в память; ошибки Save он маппит в свой ErrUpdate.
type ItemRepository interface {
	// Save делает полный upsert лота вместе с историей ставок.
	Save(ctx context.Context, item *model.Item) error
	// LoadAll возвращает все лоты в порядке создания — для прогрева
	// in-memory хранилища на старте процесса.
	LoadAll(ctx context.Context) ([]model.Item, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Save(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(item).Error; err != nil {
			return err
		}
		if len(item.Bids) == 0 {
			return nil
		}
		// ставки append-only, но флаг лидера меняется при перебитии,
		// поэтому тоже полный upsert по первичному ключу
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&item.Bids).Error
	})
}

func (r *itemRepo) LoadAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Preload("Bids", func(db *gorm.DB) *gorm.DB {
			return db.Order("bids.created_at")
		}).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
