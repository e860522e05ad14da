package models

import "time"

type Company struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations (read-only, preloaded)
	Departments []Department `gorm:"foreignKey:CompanyID"`
}
