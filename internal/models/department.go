package models

import "time"

type Department struct {
	ID        int64  `gorm:"primaryKey"`
	CompanyID int64  `gorm:"index;not null"`
	Name      string `gorm:"size:200;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Company *Company `gorm:"foreignKey:CompanyID"`
	Teams   []Team   `gorm:"foreignKey:DepartmentID"`
}
