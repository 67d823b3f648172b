package model

import "time"

// User — учётная запись участника аукциона. Идентификатор пользователя
// используется как owner/new_owner в лотах и ставках.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Login    string `gorm:"uniqueIndex;not null" json:"login"`
	Password string `gorm:"not null" json:"-"` // bcrypt-хеш

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
