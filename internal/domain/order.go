package domain

import (
	"context"
	"errors"
	"time"

	"github.com/example/shop-api/internal/data"
)

type OrderStatus string

const (
	OrderStatusOrder  OrderStatus = "ORDER"
	OrderStatusCancel OrderStatus = "CANCEL"
)

type DeliveryStatus string

const (
	DeliveryStatusReady    DeliveryStatus = "READY"
	DeliveryStatusComplete DeliveryStatus = "COMP"
)

var CannotCancelError = errors.New("completed delivery cannot be canceled")

// Address is an immutable value object, embedded in Delivery.
type Address struct {
	City    string
	Street  string
	Zipcode string
}

type Delivery struct {
	ID      uint
	Address Address
	Status  DeliveryStatus
}

// Order references exactly one Member and owns exactly one Delivery. Both
// associations are mandatory; an order without either is a data-integrity
// bug, not a valid state.
type Order struct {
	ID        uint
	OrderedAt time.Time
	Status    OrderStatus
	Member    data.Lazy[Member]
	Delivery  data.Lazy[Delivery]
}

type OrderRepository interface {
	data.Repository[Order, uint]
	// FindAllWithMemberDelivery loads orders with member and delivery joined
	// in a single round trip; the returned associations are already resolved.
	FindAllWithMemberDelivery(ctx context.Context) ([]Order, error)
	FindByMember(ctx context.Context, member Member) ([]Order, error)
}
