package models

import "time"

// Note is a personal annotation one user keeps on one symbol.
// (UserID, Symbol) is unique: creating a second note for the same pair
// is rejected, never overwritten.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_note_user_symbol,unique;not null" json:"user_id"`
	Symbol    string    `gorm:"index:idx_note_user_symbol,unique;not null" json:"symbol"`
	Body      string    `gorm:"not null" json:"note"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// WatchlistEntry is one symbol a user tracks.
type WatchlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_watch_user_symbol,unique;not null" json:"user_id"`
	Symbol    string    `gorm:"index:idx_watch_user_symbol,unique;not null" json:"symbol"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
