package model

import "time"

// Bid — ставка по лоту. Запись append-only: однажды принятая ставка не
// изменяется, при перебитии только снимается флаг IsActive.
type Bid struct {
	ID          string   `gorm:"primaryKey;type:uuid" json:"id"`
	ItemID      uint64   `gorm:"not null;index" json:"auction"` // ссылка на items.id
	Description string   `json:"description"`
	Owner       int64    `gorm:"not null" json:"owner"`
	Currency    Currency `gorm:"not null" json:"currency"`
	Amount      uint32   `gorm:"not null" json:"amount"`
	IsActive    bool     `gorm:"not null" json:"is_active"` // true только у текущего лидера

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CreateBid — входной payload операции bid. Owner — логин участника,
// от имени которого заявлена ставка; движок проверяет, что он резолвится
// в вызывающего.
type CreateBid struct {
	Description string `json:"description"`
	Amount      uint32 `json:"amount"`
	Currency    string `json:"currency"`
	IsActive    bool   `json:"is_active"`
	Owner       string `json:"owner"`
}
