package domain

import (
	"context"
	"errors"

	"github.com/example/shop-api/internal/data"
)

var DuplicateMemberError = errors.New("member name already registered")

type Member struct {
	ID     uint
	Name   string
	Orders data.Lazy[[]Order] // has-many back-reference, never needed for summaries
}

type MemberRepository interface {
	data.Repository[Member, uint]
	FindByName(ctx context.Context, name string) ([]Member, error)
}
