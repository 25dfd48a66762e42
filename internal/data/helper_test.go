package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindID(t *testing.T) {
	type User struct {
		ID   string
		Name string
	}

	t.Run("non-empty id", func(t *testing.T) {
		reuben := User{ID: "reuben.b"}
		id, zero := findID[User, string](reuben)
		assert.Equal(t, reuben.ID, id)
		assert.False(t, zero)
	})
	t.Run("empty id", func(t *testing.T) {
		var user User
		id, zero := findID[User, string](user)
		assert.Equal(t, "", id)
		assert.True(t, zero)
	})
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "member_id", toSnakeCase("MemberID"))
	assert.Equal(t, "order_summary", toSnakeCase("OrderSummary"))
	assert.Equal(t, "name", toSnakeCase("Name"))
}

func TestFindAssociations(t *testing.T) {
	type Member struct {
		ID   uint
		Name string
	}
	type Delivery struct {
		ID uint
	}
	type Receipt struct {
		ID      uint
		OrderID uint
	}
	type Order struct {
		LazyLoader
		ID         uint
		MemberID   uint
		Member     Member `fetch:"lazy"`
		DeliveryID uint
		Delivery   Delivery `fetch:"eager"`
		Receipt    Receipt  `fetch:"lazy"`
	}

	order := Order{ID: 10, MemberID: 1, DeliveryID: 2}
	associations := findAssociations(&order)
	assert.Len(t, associations, 3)

	byName := map[string]Association{}
	for _, a := range associations {
		byName[a.Name] = a
	}

	member := byName["Member"]
	assert.Equal(t, BelongTo, member.Type)
	assert.Equal(t, FetchMode(FetchLazyMode), member.FetchMode)
	assert.Equal(t, uint(1), member.ID)

	delivery := byName["Delivery"]
	assert.Equal(t, BelongTo, delivery.Type)
	assert.Equal(t, FetchMode(FetchEagerMode), delivery.FetchMode)

	receipt := byName["Receipt"]
	assert.Equal(t, HasOne, receipt.Type)
	assert.Equal(t, "order_id", receipt.ForeignKey)
}

func TestFindAssociations_HasMany(t *testing.T) {
	type Order struct {
		ID       uint
		MemberID uint
	}
	type Member struct {
		LazyLoader
		ID     uint
		Name   string
		Orders []Order `fetch:"lazy"`
	}

	member := Member{ID: 1}
	associations := findAssociations(&member)
	assert.Len(t, associations, 1)
	assert.Equal(t, "Orders", associations[0].Name)
	assert.Equal(t, HasMany, associations[0].Type)
	assert.Equal(t, "member_id", associations[0].ForeignKey)
}

func TestFindAssociations_SkipsEmbeddedValueObjects(t *testing.T) {
	type Address struct {
		City string
	}
	type Delivery struct {
		ID      uint
		Address Address `gorm:"embedded"`
	}

	delivery := Delivery{ID: 1}
	assert.Empty(t, findAssociations(&delivery))
}
