package infra_test

import (
	"context"
	"testing"
	"time"

	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	kim, err := f.members.Create(ctx, domain.Member{Name: "kim"})
	assert.Nil(t, err)

	seoul := domain.Address{City: "Seoul", Street: "Gangnam-daero 1", Zipcode: "12345"}
	orderedAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	created, err := f.orders.Create(ctx, domain.Order{
		OrderedAt: orderedAt,
		Status:    domain.OrderStatusOrder,
		Member:    data.LazyLoadValue(kim),
		Delivery: data.LazyLoadValue(domain.Delivery{
			Address: seoul,
			Status:  domain.DeliveryStatusReady,
		}),
	})
	assert.Nil(t, err)
	assert.NotEmpty(t, created.ID)

	t.Run("create cascades the delivery", func(t *testing.T) {
		delivery, err := created.Delivery.Get()
		assert.Nil(t, err)
		assert.NotEmpty(t, delivery.ID)
		assert.Equal(t, seoul, delivery.Address)
	})

	t.Run("find one leaves associations deferred", func(t *testing.T) {
		found, err := f.orders.FindOne(ctx, created.ID)
		assert.Nil(t, err)
		assert.Equal(t, domain.OrderStatusOrder, found.Status)

		member, err := found.Member.Get()
		assert.Nil(t, err)
		assert.Equal(t, "kim", member.Name)

		delivery, err := found.Delivery.Get()
		assert.Nil(t, err)
		assert.Equal(t, seoul, delivery.Address)
		assert.Equal(t, domain.DeliveryStatusReady, delivery.Status)
	})

	t.Run("eager join resolves associations up front", func(t *testing.T) {
		orders, err := f.orders.FindAllWithMemberDelivery(ctx)
		assert.Nil(t, err)
		assert.Len(t, orders, 1)

		member, err := orders[0].Member.Get()
		assert.Nil(t, err)
		assert.Equal(t, kim.ID, member.ID)

		delivery, err := orders[0].Delivery.Get()
		assert.Nil(t, err)
		assert.Equal(t, seoul, delivery.Address)
	})

	t.Run("find by member", func(t *testing.T) {
		orders, err := f.orders.FindByMember(ctx, kim)
		assert.Nil(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, created.ID, orders[0].ID)
	})

	t.Run("update status keeps associations", func(t *testing.T) {
		found, err := f.orders.FindOne(ctx, created.ID)
		assert.Nil(t, err)

		found.Status = domain.OrderStatusCancel
		updated, err := f.orders.Update(ctx, found)
		assert.Nil(t, err)
		assert.Equal(t, domain.OrderStatusCancel, updated.Status)

		again, err := f.orders.FindOne(ctx, created.ID)
		assert.Nil(t, err)
		assert.Equal(t, domain.OrderStatusCancel, again.Status)
		member, err := again.Member.Get()
		assert.Nil(t, err)
		assert.Equal(t, kim.ID, member.ID)
	})
}
