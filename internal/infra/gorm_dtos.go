package infra

import (
	"time"

	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/domain"
)

type Member struct {
	data.LazyLoader `gorm:"-"`
	ID              uint    `gorm:"primaryKey;column:id"`
	Name            string  `gorm:"column:name;uniqueIndex"`
	Orders          []Order `fetch:"lazy" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

func (m Member) To() domain.Member {
	return domain.Member{
		ID:   m.ID,
		Name: m.Name,
		Orders: data.LazyLoadFn[[]domain.Order](func() (any, error) {
			orders, err := data.LazyLoadNow[[]Order]("Orders", &m)
			if err != nil {
				return nil, err
			}
			os := make([]domain.Order, 0, len(orders))
			for _, o := range orders {
				os = append(os, o.To())
			}
			return os, nil
		}),
	}
}

func (m Member) From(d domain.Member) any {
	m.ID = d.ID
	m.Name = d.Name
	return m
}

type Address struct {
	City    string `gorm:"column:city"`
	Street  string `gorm:"column:street"`
	Zipcode string `gorm:"column:zipcode"`
}

func (a Address) To() domain.Address {
	return domain.Address{
		City:    a.City,
		Street:  a.Street,
		Zipcode: a.Zipcode,
	}
}

func (a Address) From(d domain.Address) any {
	a.City = d.City
	a.Street = d.Street
	a.Zipcode = d.Zipcode
	return a
}

type Delivery struct {
	ID      uint    `gorm:"primaryKey;column:id"`
	Address Address `gorm:"embedded"`
	Status  string  `gorm:"column:status"`
}

func (d Delivery) To() domain.Delivery {
	return domain.Delivery{
		ID:      d.ID,
		Address: d.Address.To(),
		Status:  domain.DeliveryStatus(d.Status),
	}
}

func (d Delivery) From(m domain.Delivery) any {
	d.ID = m.ID
	d.Address = d.Address.From(m.Address).(Address)
	d.Status = string(m.Status)
	return d
}

type Order struct {
	data.LazyLoader `gorm:"-"`
	ID              uint      `gorm:"primaryKey;column:id"`
	OrderedAt       time.Time `gorm:"column:ordered_at"`
	Status          string    `gorm:"column:status"`
	MemberID        uint
	Member          Member `fetch:"lazy" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	DeliveryID      uint
	Delivery        Delivery `fetch:"lazy" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

func (o Order) To() domain.Order {
	return domain.Order{
		ID:        o.ID,
		OrderedAt: o.OrderedAt,
		Status:    domain.OrderStatus(o.Status),
		Member: data.LazyLoadFn[domain.Member](func() (any, error) {
			member, err := data.LazyLoadNow[Member]("Member", &o)
			if err != nil {
				return nil, err
			}
			return member.To(), nil
		}),
		Delivery: data.LazyLoadFn[domain.Delivery](func() (any, error) {
			delivery, err := data.LazyLoadNow[Delivery]("Delivery", &o)
			if err != nil {
				return nil, err
			}
			return delivery.To(), nil
		}),
	}
}

// ToResolved maps an order whose member and delivery rows were fetched
// eagerly; no deferred loaders are attached.
func (o Order) ToResolved() domain.Order {
	return domain.Order{
		ID:        o.ID,
		OrderedAt: o.OrderedAt,
		Status:    domain.OrderStatus(o.Status),
		Member:    data.LazyLoadValue(o.Member.To()),
		Delivery:  data.LazyLoadValue(o.Delivery.To()),
	}
}

func (o Order) From(d domain.Order) any {
	o.ID = d.ID
	o.OrderedAt = d.OrderedAt
	o.Status = string(d.Status)
	if d.Member != nil {
		if member, err := d.Member.Get(); err == nil {
			o.MemberID = member.ID
		}
	}
	if d.Delivery != nil {
		if delivery, err := d.Delivery.Get(); err == nil {
			var dto Delivery
			o.Delivery = dto.From(delivery).(Delivery)
			o.DeliveryID = delivery.ID
		}
	}
	return o
}
