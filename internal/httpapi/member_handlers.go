package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/shop-api/internal/domain"
	"github.com/gorilla/mux"
)

type createMemberResponse struct {
	ID uint `json:"id"`
}

type createMemberRequest struct {
	Name string `json:"name"`
}

type updateMemberResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type memberDto struct {
	Name string `json:"name"`
}

type listMembersResponse struct {
	Data []memberDto `json:"data"`
}

// handleCreateMemberV1 binds the request body straight onto the member
// entity shape. Kept for parity with the original API; v2 is the one that
// decouples the wire format.
func (s *Server) handleCreateMemberV1(w http.ResponseWriter, r *http.Request) {
	var member domain.Member
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		writeError(w, fmt.Errorf("%w: %v", ValidationError, err))
		return
	}
	if strings.TrimSpace(member.Name) == "" {
		writeError(w, fmt.Errorf("%w: name is required", ValidationError))
		return
	}
	id, err := s.members.Register(r.Context(), member)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, createMemberResponse{ID: id})
}

func (s *Server) handleCreateMemberV2(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", ValidationError, err))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, fmt.Errorf("%w: name is required", ValidationError))
		return
	}
	id, err := s.members.Register(r.Context(), domain.Member{Name: req.Name})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, createMemberResponse{ID: id})
}

func (s *Server) handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", ValidationError, err))
		return
	}
	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", ValidationError, err))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, fmt.Errorf("%w: name is required", ValidationError))
		return
	}
	updated, err := s.members.Update(r.Context(), uint(id), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updateMemberResponse{ID: updated.ID, Name: updated.Name})
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.members.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	dtos := make([]memberDto, 0, len(members))
	for _, m := range members {
		dtos = append(dtos, memberDto{Name: m.Name})
	}
	writeJSON(w, http.StatusOK, listMembersResponse{Data: dtos})
}
