package models

import "time"

// Account represents a registered user. Accounts are created once at signup
// and never modified.
type Account struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName keeps the legacy SQLite table name.
func (Account) TableName() string {
	return "users"
}
