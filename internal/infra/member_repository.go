package infra

import (
	"context"

	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/domain"
	"gorm.io/gorm"
)

type MemberRepository struct {
	data.Repository[domain.Member, uint]
	transactionManager data.TransactionManager
}

func NewMemberRepository(transactionManager data.TransactionManager) *MemberRepository {
	gormRepository := data.NewGormRepository[Member, uint](transactionManager)
	return &MemberRepository{
		Repository:         data.NewDtoWrapRepository[Member, domain.Member, uint](gormRepository),
		transactionManager: transactionManager,
	}
}

func (m *MemberRepository) FindByName(ctx context.Context, name string) ([]domain.Member, error) {
	db := m.transactionManager.Get(ctx).(*gorm.DB)
	var dtos []Member
	if err := db.Model(&Member{}).Order("id").Find(&dtos, "name = ?", name).Error; err != nil {
		return nil, err
	}
	members := make([]domain.Member, 0, len(dtos))
	for _, dto := range dtos {
		members = append(members, dto.To())
	}
	return members, nil
}

var _ domain.MemberRepository = (*MemberRepository)(nil)
