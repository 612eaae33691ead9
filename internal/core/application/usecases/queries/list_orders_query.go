package queries

import (
	"errors"

	"kirana/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves every order for the admin view, most recent first.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates the query.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
