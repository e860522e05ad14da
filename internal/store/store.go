// Package store is the durable keyed storage for the hierarchy entities.
// Each entity kind gets its own Repository; they share one gorm handle.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned by Get when no row has the requested id.
var ErrNotFound = errors.New("record not found")

// Store is the contract the hierarchy services depend on.
type Store[T any] interface {
	Get(ctx context.Context, id int64) (T, error)
	List(ctx context.Context) ([]T, error)
	Save(ctx context.Context, value *T) error
	Delete(ctx context.Context, id int64) error
}

type Repository[T any] struct {
	db       *gorm.DB
	preloads []string
}

// NewRepository returns a Repository for T. Associations named in preloads
// are loaded on Get and List; they are never written by Save.
func NewRepository[T any](db *gorm.DB, preloads ...string) *Repository[T] {
	return &Repository[T]{db: db, preloads: preloads}
}

func (r *Repository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

func (r *Repository[T]) Get(ctx context.Context, id int64) (T, error) {
	var v T
	if id <= 0 {
		return v, ErrNotFound
	}
	if err := r.query(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return v, ErrNotFound
		}
		return v, fmt.Errorf("get %T %d: %w", v, id, err)
	}
	return v, nil
}

// List returns every row in the table's natural order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := r.query(ctx).Find(&rows).Error; err != nil {
		var zero T
		return nil, fmt.Errorf("list %T: %w", zero, err)
	}
	return rows, nil
}

// Save inserts value when its primary key is zero and updates it otherwise.
// Only the row's own columns are written.
func (r *Repository[T]) Save(ctx context.Context, value *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(value).Error; err != nil {
		return fmt.Errorf("save %T: %w", value, err)
	}
	return nil
}

// Delete removes the row with id. Deleting a missing id is not an error.
func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	var zero T
	if id <= 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&zero, id).Error; err != nil {
		return fmt.Errorf("delete %T %d: %w", zero, id, err)
	}
	return nil
}
