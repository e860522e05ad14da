package models

import "time"

type Team struct {
	ID           int64  `gorm:"primaryKey"`
	DepartmentID int64  `gorm:"index;not null"`
	Name         string `gorm:"size:200;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Department *Department `gorm:"foreignKey:DepartmentID"`
	// A team owns at most one project; the link lives on projects.team_id.
	Project *Project `gorm:"foreignKey:TeamID"`
}
