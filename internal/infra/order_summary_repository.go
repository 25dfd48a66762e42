package infra

import (
	"context"
	"time"

	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/domain"
	"gorm.io/gorm"
)

// OrderSummaryRepository runs the flat projection: one query, inner joins,
// exactly the summary columns, no entity hydration. Inner joins keep the
// one-summary-per-order shape of the mandatory-association invariant.
type OrderSummaryRepository struct {
	transactionManager data.TransactionManager
}

func NewOrderSummaryRepository(transactionManager data.TransactionManager) *OrderSummaryRepository {
	return &OrderSummaryRepository{transactionManager: transactionManager}
}

type orderSummaryRow struct {
	OrderID   uint
	Name      string
	OrderedAt time.Time
	Status    string
	City      string
	Street    string
	Zipcode   string
}

const orderSummaryQuery = "orders inner join members on members.id = orders.member_id " +
	"inner join deliveries on deliveries.id = orders.delivery_id"

func (r *OrderSummaryRepository) FindOrderSummaries(ctx context.Context) ([]domain.OrderSummary, error) {
	db := r.transactionManager.Get(ctx).(*gorm.DB)

	var rows []orderSummaryRow
	err := db.Table("orders").
		Select("orders.id as order_id, members.name as name, orders.ordered_at as ordered_at, " +
			"orders.status as status, deliveries.city as city, deliveries.street as street, deliveries.zipcode as zipcode").
		Joins("inner join members on members.id = orders.member_id").
		Joins("inner join deliveries on deliveries.id = orders.delivery_id").
		Order("orders.id").
		Scan(&rows).Error
	if err != nil {
		return nil, &data.QueryError{Query: orderSummaryQuery, Err: err}
	}

	summaries := make([]domain.OrderSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.OrderSummary{
			OrderID:     row.OrderID,
			Name:        row.Name,
			OrderDate:   row.OrderedAt,
			OrderStatus: domain.OrderStatus(row.Status),
			Address: domain.Address{
				City:    row.City,
				Street:  row.Street,
				Zipcode: row.Zipcode,
			},
		})
	}
	return summaries, nil
}

var _ domain.OrderSummaryRepository = (*OrderSummaryRepository)(nil)
