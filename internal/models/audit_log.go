package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID         int64          `gorm:"primaryKey"`
	Action     string         `gorm:"size:200;not null"` // e.g. "department.create", "company.delete"
	EntityType string         `gorm:"size:100;index"`    // e.g. "company", "team"
	EntityID   int64          `gorm:"index"`
	Metadata   datatypes.JSON `gorm:"type:json"` // snapshot of what changed
	IP         string         `gorm:"size:64"`
	UserAgent  string         `gorm:"size:255"`
	RequestID  string         `gorm:"size:64" json:"request_id"`
	CreatedAt  time.Time
}

// All returns every model the schema is migrated for.
func All() []any {
	return []any{
		&Company{},
		&Department{},
		&Team{},
		&Project{},
		&Manager{},
		&AuditLog{},
	}
}
