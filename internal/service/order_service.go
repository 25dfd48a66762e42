package service

import (
	"context"
	"time"

	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type OrderService struct {
	orders             domain.OrderRepository
	members            domain.MemberRepository
	transactionManager data.TransactionManager
}

func NewOrderService(orders domain.OrderRepository, members domain.MemberRepository, transactionManager data.TransactionManager) *OrderService {
	return &OrderService{orders: orders, members: members, transactionManager: transactionManager}
}

// Place creates an order for the member with a fresh READY delivery to the
// given address.
func (s *OrderService) Place(ctx context.Context, memberID uint, address domain.Address) (uint, error) {
	var id uint
	err := s.transactionManager.Do(ctx, func(ctx context.Context) error {
		member, err := s.members.FindOne(ctx, memberID)
		if err != nil {
			return err
		}
		order := domain.Order{
			OrderedAt: time.Now(),
			Status:    domain.OrderStatusOrder,
			Member:    data.LazyLoadValue(member),
			Delivery: data.LazyLoadValue(domain.Delivery{
				Address: address,
				Status:  domain.DeliveryStatusReady,
			}),
		}
		created, err := s.orders.Create(ctx, order)
		if err != nil {
			return err
		}
		id = created.ID
		logrus.Debugf("OrderService.Place: order [%d] member [%d]", id, memberID)
		return nil
	})
	return id, err
}

// Cancel flips the order to CANCEL unless its delivery already completed.
func (s *OrderService) Cancel(ctx context.Context, orderID uint) error {
	return s.transactionManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.FindOne(ctx, orderID)
		if err != nil {
			return err
		}
		delivery, err := order.Delivery.Get()
		if err != nil {
			return err
		}
		if delivery.Status == domain.DeliveryStatusComplete {
			return domain.CannotCancelError
		}
		order.Status = domain.OrderStatusCancel
		_, err = s.orders.Update(ctx, order)
		return err
	})
}
