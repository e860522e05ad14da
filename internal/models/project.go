package models

import "time"

type Project struct {
	ID        int64  `gorm:"primaryKey"`
	TeamID    int64  `gorm:"uniqueIndex;not null"` // one project per team
	ManagerID *int64 `gorm:"index;null"` // nullable, a project may have no manager
	Name      string `gorm:"size:200;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Team    *Team    `gorm:"foreignKey:TeamID"`
	Manager *Manager `gorm:"foreignKey:ManagerID"`
}
