package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/domain"
	"github.com/example/shop-api/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// ValidationError marks malformed request input; it maps to 400 at this
// boundary and never leaves the transport layer.
var ValidationError = errors.New("invalid request")

type Server struct {
	Router    *mux.Router
	members   *service.MemberService
	orders    domain.OrderRepository
	summaries domain.OrderSummaryRepository
}

func NewServer(members *service.MemberService, orders domain.OrderRepository, summaries domain.OrderSummaryRepository) *Server {
	s := &Server{
		Router:    mux.NewRouter(),
		members:   members,
		orders:    orders,
		summaries: summaries,
	}
	s.Router.Use(requestLogging)

	s.Router.HandleFunc("/api/v1/members", s.handleCreateMemberV1).Methods(http.MethodPost)
	s.Router.HandleFunc("/api/v2/members", s.handleCreateMemberV2).Methods(http.MethodPost)
	s.Router.HandleFunc("/api/v2/members/{id}", s.handleUpdateMember).Methods(http.MethodPut)
	s.Router.HandleFunc("/api/v2/members", s.handleListMembers).Methods(http.MethodGet)

	s.Router.HandleFunc("/api/v1/simple-orders", s.handleSimpleOrdersV1).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/v2/simple-orders", s.handleSimpleOrdersV2).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/v3/simple-orders", s.handleSimpleOrdersV3).Methods(http.MethodGet)
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, data.NotFoundError):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ValidationError), errors.Is(err, domain.DuplicateMemberError):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logrus.WithError(err).Error("request failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
