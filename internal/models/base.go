package models

import "time"

// Base carries the auto-increment id and creation timestamp shared by most tables.
type Base struct {
	ID        uint      `json:"id"        gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}
