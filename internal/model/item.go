package model

import "time"

// UnsetOwner — сентинел "владелец не определён" для NewOwner,
// пока аукцион не завершён или не было ни одной ставки.
const UnsetOwner int64 = 0

// Item — лот аукциона. Amount всегда равен сумме лидирующей принятой ставки
// либо стартовой сумме, если ставок ещё не было.
type Item struct {
	ID          uint64   `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `json:"description"`
	Owner       int64    `gorm:"not null;index" json:"owner"` // ссылка на users.id
	NewOwner    int64    `json:"new_owner"`                   // UnsetOwner, пока нет победителя
	Currency    Currency `gorm:"not null" json:"currency"`
	Amount      uint32   `gorm:"not null" json:"amount"`
	IsActive    bool     `gorm:"not null" json:"is_active"`

	// Временные метки окна активности хранятся как текст (RFC3339);
	// движок сравнивает их только лексикографически.
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	// История ставок, порядок вставки = хронологический порядок.
	Bids []Bid `gorm:"foreignKey:ItemID;references:ID" json:"bid"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Clone возвращает глубокую копию лота: история ставок копируется,
// чтобы владение значениями оставалось за хранилищем.
func (i Item) Clone() Item {
	cp := i
	if i.Bids != nil {
		cp.Bids = make([]Bid, len(i.Bids))
		copy(cp.Bids, i.Bids)
	}
	return cp
}

// CreateItem — входной payload операций create_item/edit_item.
type CreateItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Currency    string `json:"currency"`
	Amount      uint32 `json:"amount"`
}
