package models

import "time"

// Affirmation is a generated text saved under a free-form owner name.
// The owner is not tied to an Account.
type Affirmation struct {
	ID                   uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username             string    `json:"username" gorm:"index;type:varchar(255);not null"`
	Desire               string    `json:"desire" gorm:"type:text;not null"`
	Fear                 string    `json:"fear" gorm:"type:text"`
	Blessing             string    `json:"blessing" gorm:"type:text"`
	Outcome              string    `json:"outcome" gorm:"type:text;not null"`
	Address              string    `json:"address" gorm:"type:text"`
	GeneratedAffirmation string    `json:"generated_affirmation" gorm:"type:text;not null"`
	CreatedAt            time.Time `json:"created_at" gorm:"index"`
}

// TableName keeps the legacy SQLite table name.
func (Affirmation) TableName() string {
	return "affirmations"
}
