package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/shop-api/internal/data"
)

var MissingAssociationError = errors.New("missing required association")

// OrderSummary is a read-only flattened view over one order, its member and
// its delivery address. Built fresh per query, never persisted.
type OrderSummary struct {
	OrderID     uint
	Name        string
	OrderDate   time.Time
	OrderStatus OrderStatus
	Address     Address
}

// OrderSummaryRepository produces summaries in one round trip, directly from
// the join result, without hydrating entity graphs.
type OrderSummaryRepository interface {
	FindOrderSummaries(ctx context.Context) ([]OrderSummary, error)
}

// NewOrderSummary assembles a summary from an order graph. Unresolved
// associations are resolved here, one blocking call each; callers that loaded
// the order with an eager join pay no extra round trips. An absent member or
// delivery fails with MissingAssociationError; other resolution failures
// propagate unchanged.
func NewOrderSummary(o Order) (OrderSummary, error) {
	var summary OrderSummary

	member, err := resolveRequired(o.Member)
	if err == nil && member.ID == 0 {
		err = MissingAssociationError
	}
	if err != nil {
		return summary, fmt.Errorf("order %d: member: %w", o.ID, err)
	}
	delivery, err := resolveRequired(o.Delivery)
	if err == nil && delivery.ID == 0 {
		err = MissingAssociationError
	}
	if err != nil {
		return summary, fmt.Errorf("order %d: delivery: %w", o.ID, err)
	}

	return OrderSummary{
		OrderID:     o.ID,
		Name:        member.Name,
		OrderDate:   o.OrderedAt,
		OrderStatus: o.Status,
		Address:     delivery.Address,
	}, nil
}

func resolveRequired[T any](lazy data.Lazy[T]) (T, error) {
	var v T
	if lazy == nil {
		return v, MissingAssociationError
	}
	v, err := lazy.Get()
	if err != nil {
		if errors.Is(err, data.NotFoundError) {
			return v, MissingAssociationError
		}
		return v, err
	}
	return v, nil
}
