package repository

import (
	"context"

	"entryapi/internal/model"
)

// EntryRepository defines data access for contest entries using SQL queries
// only. No business logic here — strictly persistence operations. Entries are
// create-only: there is no update or delete path.
type EntryRepository interface {
	// Create inserts a new entry row with a single parameterized statement and
	// returns the stored record including its database-assigned identifier.
	Create(ctx context.Context, entry *model.Entry) (*model.Entry, error)

	// FindByID returns an entry by its identifier.
	FindByID(ctx context.Context, id int64) (*model.Entry, error)

	// List returns a paginated list of entries and the total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Entry], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
