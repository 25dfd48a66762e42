package infra

import (
	"context"

	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/domain"
	"gorm.io/gorm"
)

type OrderRepository struct {
	data.Repository[domain.Order, uint]
	memberFindBy       data.FindByRepository[domain.Order, domain.Member]
	transactionManager data.TransactionManager
}

func NewOrderRepository(transactionManager data.TransactionManager) *OrderRepository {
	gormRepository := data.NewGormRepository[Order, uint](transactionManager)
	return &OrderRepository{
		Repository: data.NewDtoWrapRepository[Order, domain.Order, uint](gormRepository),
		memberFindBy: data.NewDtoWrapFindByRepository[Order, domain.Order, Member, domain.Member](
			data.NewGormFindByRepository[Order, Member, uint](gormRepository),
		),
		transactionManager: transactionManager,
	}
}

// FindAllWithMemberDelivery fetches orders with member and delivery in a
// single joined query. Associations on the result are resolved values; no
// further round trips happen on access.
func (r *OrderRepository) FindAllWithMemberDelivery(ctx context.Context) ([]domain.Order, error) {
	db := r.transactionManager.Get(ctx).(*gorm.DB)
	var dtos []Order
	if err := db.Model(&Order{}).Joins("Member").Joins("Delivery").Order("orders.id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, dto.ToResolved())
	}
	return orders, nil
}

func (r *OrderRepository) FindByMember(ctx context.Context, member domain.Member) ([]domain.Order, error) {
	return r.memberFindBy.FindBy(ctx, "Member", member)
}

var _ domain.OrderRepository = (*OrderRepository)(nil)
