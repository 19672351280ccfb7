package models

// Sequence records the highest id ever assigned in a collection so that ids
// of deleted records are not handed out again.
type Sequence struct {
	Name   string `gorm:"primaryKey;size:64"`
	LastID int    `gorm:"not null"`
}
