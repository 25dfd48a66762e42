package httpapi

import (
	"net/http"
	"time"

	"github.com/example/shop-api/internal/domain"
)

type addressDto struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

type orderSummaryDto struct {
	OrderID     uint       `json:"orderId"`
	Name        string     `json:"name"`
	OrderDate   time.Time  `json:"orderDate"`
	OrderStatus string     `json:"orderStatus"`
	Address     addressDto `json:"address"`
}

type memberGraphDto struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type deliveryGraphDto struct {
	ID      uint       `json:"id"`
	Address addressDto `json:"address"`
	Status  string     `json:"status"`
}

type orderGraphDto struct {
	ID        uint             `json:"id"`
	OrderedAt time.Time        `json:"orderedAt"`
	Status    string           `json:"status"`
	Member    memberGraphDto   `json:"member"`
	Delivery  deliveryGraphDto `json:"delivery"`
}

func toAddressDto(a domain.Address) addressDto {
	return addressDto{City: a.City, Street: a.Street, Zipcode: a.Zipcode}
}

func toSummaryDto(s domain.OrderSummary) orderSummaryDto {
	return orderSummaryDto{
		OrderID:     s.OrderID,
		Name:        s.Name,
		OrderDate:   s.OrderDate,
		OrderStatus: string(s.OrderStatus),
		Address:     toAddressDto(s.Address),
	}
}

// handleSimpleOrdersV1 is the naive path: bare orders, then one forced
// resolution per association per order. Serving the entity graph directly is
// kept for parity with the original API only; new responses should project.
func (s *Server) handleSimpleOrdersV1(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	dtos := make([]orderGraphDto, 0, len(orders))
	for _, o := range orders {
		member, err := o.Member.Get()
		if err != nil {
			writeError(w, err)
			return
		}
		delivery, err := o.Delivery.Get()
		if err != nil {
			writeError(w, err)
			return
		}
		dtos = append(dtos, orderGraphDto{
			ID:        o.ID,
			OrderedAt: o.OrderedAt,
			Status:    string(o.Status),
			Member:    memberGraphDto{ID: member.ID, Name: member.Name},
			Delivery: deliveryGraphDto{
				ID:      delivery.ID,
				Address: toAddressDto(delivery.Address),
				Status:  string(delivery.Status),
			},
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// handleSimpleOrdersV2 loads the graph with one joined query and assembles
// summaries from the hydrated entities.
func (s *Server) handleSimpleOrdersV2(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.FindAllWithMemberDelivery(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	dtos := make([]orderSummaryDto, 0, len(orders))
	for _, o := range orders {
		summary, err := domain.NewOrderSummary(o)
		if err != nil {
			writeError(w, err)
			return
		}
		dtos = append(dtos, toSummaryDto(summary))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// handleSimpleOrdersV3 skips entities entirely and serves the flat
// projection.
func (s *Server) handleSimpleOrdersV3(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.summaries.FindOrderSummaries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	dtos := make([]orderSummaryDto, 0, len(summaries))
	for _, summary := range summaries {
		dtos = append(dtos, toSummaryDto(summary))
	}
	writeJSON(w, http.StatusOK, dtos)
}
