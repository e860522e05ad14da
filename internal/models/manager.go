package models

import "time"

type Manager struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
