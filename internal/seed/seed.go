// Package seed loads a small sample data set for local development.
package seed

import (
	"context"

	"github.com/example/shop-api/internal/domain"
	"github.com/example/shop-api/internal/service"
	"github.com/sirupsen/logrus"
)

func Run(ctx context.Context, members *service.MemberService, orders *service.OrderService) error {
	existing, err := members.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logrus.Debug("seed: members already present, skipping")
		return nil
	}

	kimID, err := members.Register(ctx, domain.Member{Name: "kim"})
	if err != nil {
		return err
	}
	leeID, err := members.Register(ctx, domain.Member{Name: "lee"})
	if err != nil {
		return err
	}

	if _, err := orders.Place(ctx, kimID, domain.Address{City: "Seoul", Street: "Gangnam-daero 1", Zipcode: "12345"}); err != nil {
		return err
	}
	if _, err := orders.Place(ctx, leeID, domain.Address{City: "Busan", Street: "Haeundae-ro 2", Zipcode: "67890"}); err != nil {
		return err
	}

	logrus.Infof("seed: members [%d %d] with one order each", kimID, leeID)
	return nil
}
