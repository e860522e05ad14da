package hierarchy

import (
	"context"

	"company_crud/internal/store"
)

// Resolver fetches a parent entity before a child is attached to it.
type Resolver[P any] struct {
	kind    string
	parents store.Store[P]
}

func NewResolver[P any](kind string, parents store.Store[P]) Resolver[P] {
	return Resolver[P]{kind: kind, parents: parents}
}

// Resolve returns the parent with id, or a NotFoundError naming the
// parent kind when it does not exist.
func (r Resolver[P]) Resolve(ctx context.Context, id int64) (P, error) {
	parent, err := r.parents.Get(ctx, id)
	if err != nil {
		return parent, notFound(err, r.kind)
	}
	return parent, nil
}
