package service

import (
	"context"

	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type MemberService struct {
	members            domain.MemberRepository
	transactionManager data.TransactionManager
}

func NewMemberService(members domain.MemberRepository, transactionManager data.TransactionManager) *MemberService {
	return &MemberService{members: members, transactionManager: transactionManager}
}

// Register persists a new member. Registration and the duplicate-name check
// run in one transaction.
func (s *MemberService) Register(ctx context.Context, member domain.Member) (uint, error) {
	var id uint
	err := s.transactionManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.members.FindByName(ctx, member.Name)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return domain.DuplicateMemberError
		}
		created, err := s.members.Create(ctx, member)
		if err != nil {
			return err
		}
		id = created.ID
		logrus.Debugf("MemberService.Register: member [%d] %q", id, created.Name)
		return nil
	})
	return id, err
}

func (s *MemberService) Update(ctx context.Context, id uint, name string) (domain.Member, error) {
	var updated domain.Member
	err := s.transactionManager.Do(ctx, func(ctx context.Context) error {
		member, err := s.members.FindOne(ctx, id)
		if err != nil {
			return err
		}
		member.Name = name
		updated, err = s.members.Update(ctx, member)
		return err
	})
	return updated, err
}

func (s *MemberService) FindOne(ctx context.Context, id uint) (domain.Member, error) {
	return s.members.FindOne(ctx, id)
}

func (s *MemberService) FindAll(ctx context.Context) ([]domain.Member, error) {
	return s.members.FindAll(ctx)
}
