package service_test

import (
	"context"
	"testing"

	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService(t *testing.T) {
	members, orders, db := newServices(t)
	ctx := context.Background()

	memberID, err := members.Register(ctx, domain.Member{Name: "kim"})
	require.Nil(t, err)

	seoul := domain.Address{City: "Seoul", Street: "Gangnam-daero 1", Zipcode: "12345"}

	t.Run("place", func(t *testing.T) {
		orderID, err := orders.Place(ctx, memberID, seoul)
		assert.Nil(t, err)
		assert.NotEmpty(t, orderID)

		var status string
		require.Nil(t, db.Raw("select status from orders where id = ?", orderID).Scan(&status).Error)
		assert.Equal(t, string(domain.OrderStatusOrder), status)
	})

	t.Run("place for unknown member", func(t *testing.T) {
		_, err := orders.Place(ctx, 999, seoul)
		assert.ErrorIs(t, err, data.NotFoundError)
	})

	t.Run("cancel", func(t *testing.T) {
		orderID, err := orders.Place(ctx, memberID, seoul)
		require.Nil(t, err)

		assert.Nil(t, orders.Cancel(ctx, orderID))

		var status string
		require.Nil(t, db.Raw("select status from orders where id = ?", orderID).Scan(&status).Error)
		assert.Equal(t, string(domain.OrderStatusCancel), status)
	})

	t.Run("cancel after completed delivery", func(t *testing.T) {
		orderID, err := orders.Place(ctx, memberID, seoul)
		require.Nil(t, err)

		require.Nil(t, db.Exec("update deliveries set status = ? where id = (select delivery_id from orders where id = ?)",
			string(domain.DeliveryStatusComplete), orderID).Error)

		assert.ErrorIs(t, orders.Cancel(ctx, orderID), domain.CannotCancelError)
	})
}
