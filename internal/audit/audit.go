// Package audit keeps an append-only trail of hierarchy mutations.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"company_crud/internal/models"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Entry struct {
	Action     string
	EntityType string
	EntityID   int64
	Metadata   any
	IP         string
	UserAgent  string
	RequestID  string
}

// Query selects a page of logs, newest first. AfterID is an exclusive
// cursor: only logs with a smaller id are returned.
type Query struct {
	Limit   int
	AfterID int64
	Search  string
}

type Page struct {
	Logs       []models.AuditLog `json:"logs"`
	NextCursor *int64            `json:"next_cursor"`
}

type Recorder struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db, now: time.Now}
}

func (r *Recorder) Record(ctx context.Context, e Entry) error {
	var meta datatypes.JSON
	if e.Metadata != nil {
		raw, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("marshal audit metadata: %w", err)
		}
		meta = datatypes.JSON(raw)
	}

	row := models.AuditLog{
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Metadata:   meta,
		IP:         e.IP,
		UserAgent:  e.UserAgent,
		RequestID:  e.RequestID,
		CreatedAt:  r.now(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

func (r *Recorder) List(ctx context.Context, q Query) (Page, error) {
	limit := q.Limit
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	query := r.db.WithContext(ctx).Model(&models.AuditLog{}).Order("id DESC")
	if q.AfterID > 0 {
		query = query.Where("id < ?", q.AfterID)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("(action LIKE ? OR entity_type LIKE ? OR ip LIKE ?)", like, like, like)
	}

	logs := make([]models.AuditLog, 0)
	if err := query.Limit(limit + 1).Find(&logs).Error; err != nil {
		return Page{}, fmt.Errorf("list audit logs: %w", err)
	}

	var next *int64
	if len(logs) > limit {
		id := logs[limit-1].ID
		logs = logs[:limit]
		next = &id
	}
	return Page{Logs: logs, NextCursor: next}, nil
}
