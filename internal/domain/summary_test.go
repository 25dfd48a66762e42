package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderSummary(t *testing.T) {
	kim := domain.Member{ID: 1, Name: "kim"}
	delivery := domain.Delivery{
		ID:      5,
		Address: domain.Address{City: "Seoul", Street: "Gangnam-daero 1", Zipcode: "12345"},
		Status:  domain.DeliveryStatusReady,
	}
	orderedAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("resolved graph", func(t *testing.T) {
		order := domain.Order{
			ID:        10,
			OrderedAt: orderedAt,
			Status:    domain.OrderStatusOrder,
			Member:    data.LazyLoadValue(kim),
			Delivery:  data.LazyLoadValue(delivery),
		}

		summary, err := domain.NewOrderSummary(order)
		assert.Nil(t, err)
		assert.Equal(t, domain.OrderSummary{
			OrderID:     10,
			Name:        "kim",
			OrderDate:   orderedAt,
			OrderStatus: domain.OrderStatusOrder,
			Address:     delivery.Address,
		}, summary)
	})

	t.Run("deferred associations are resolved", func(t *testing.T) {
		memberLoads := 0
		order := domain.Order{
			ID:        10,
			OrderedAt: orderedAt,
			Status:    domain.OrderStatusOrder,
			Member: data.LazyLoadFn[domain.Member](func() (any, error) {
				memberLoads++
				return kim, nil
			}),
			Delivery: data.LazyLoadFn[domain.Delivery](func() (any, error) {
				return delivery, nil
			}),
		}

		summary, err := domain.NewOrderSummary(order)
		assert.Nil(t, err)
		assert.Equal(t, "kim", summary.Name)
		assert.Equal(t, 1, memberLoads)
	})

	t.Run("absent delivery", func(t *testing.T) {
		order := domain.Order{
			ID:       10,
			Member:   data.LazyLoadValue(kim),
			Delivery: nil,
		}

		_, err := domain.NewOrderSummary(order)
		assert.ErrorIs(t, err, domain.MissingAssociationError)
	})

	t.Run("delivery row gone", func(t *testing.T) {
		order := domain.Order{
			ID:     10,
			Member: data.LazyLoadValue(kim),
			Delivery: data.LazyLoadFn[domain.Delivery](func() (any, error) {
				return nil, data.NotFoundError
			}),
		}

		_, err := domain.NewOrderSummary(order)
		assert.ErrorIs(t, err, domain.MissingAssociationError)
	})

	t.Run("zero member means integrity bug, not empty name", func(t *testing.T) {
		order := domain.Order{
			ID:       10,
			Member:   data.LazyLoadValue(domain.Member{}),
			Delivery: data.LazyLoadValue(delivery),
		}

		_, err := domain.NewOrderSummary(order)
		assert.ErrorIs(t, err, domain.MissingAssociationError)
	})

	t.Run("engine failure propagates unchanged", func(t *testing.T) {
		boom := errors.New("connection reset")
		order := domain.Order{
			ID:     10,
			Member: data.LazyLoadValue(kim),
			Delivery: data.LazyLoadFn[domain.Delivery](func() (any, error) {
				return nil, boom
			}),
		}

		_, err := domain.NewOrderSummary(order)
		assert.ErrorIs(t, err, boom)
		assert.False(t, errors.Is(err, domain.MissingAssociationError))
	})
}
