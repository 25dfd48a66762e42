package data

import (
	"errors"
	"fmt"
)

var NotFoundError = errors.New("not found")

// QueryError reports a query the persistence engine rejected. The engine's
// own error stays reachable through Unwrap, so connectivity failures keep
// their identity for errors.Is checks.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
