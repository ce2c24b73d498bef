package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/splittab/splittab/internal/auth"
	"github.com/splittab/splittab/internal/service"
)

// GroupHandler serves the group endpoints.
type GroupHandler struct {
	groups *service.GroupService
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(groups *service.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

type createGroupRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MemberIDs   []string `json:"member_ids"`
}

func (r *createGroupRequest) Validate() []FieldError {
	if strings.TrimSpace(r.Name) == "" {
		return []FieldError{{Field: "name", Message: "name is required"}}
	}
	return nil
}

// Create creates a group owned by the authenticated user.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		RespondValidationError(w, fieldErrs)
		return
	}

	group, err := h.groups.CreateGroup(r.Context(), auth.UserIDFromContext(r.Context()), req.Name, req.Description, req.MemberIDs)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, toGroupResponse(group))
}

// List returns the groups the authenticated user belongs to.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.ListGroups(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	out := make([]GroupResponse, len(groups))
	for i, g := range groups {
		out[i] = toGroupResponse(g)
	}
	RespondSuccess(w, http.StatusOK, out)
}

// Get returns a group with its members and ledger history. Members only.
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.groups.GetGroup(r.Context(), r.PathValue("id"), auth.UserIDFromContext(r.Context()))
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, toGroupDetailResponse(detail))
}

type addMemberRequest struct {
	UserID string `json:"user_id"`
}

func (r *addMemberRequest) Validate() []FieldError {
	if r.UserID == "" {
		return []FieldError{{Field: "user_id", Message: "user_id is required"}}
	}
	return nil
}

// AddMember adds a friend of the authenticated user to the group.
func (h *GroupHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		RespondValidationError(w, fieldErrs)
		return
	}

	groupID := r.PathValue("id")
	if err := h.groups.AddMember(r.Context(), groupID, auth.UserIDFromContext(r.Context()), req.UserID); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, map[string]string{"group_id": groupID, "user_id": req.UserID})
}

// Delete removes a group. Only the creator may delete it.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")

	if err := h.groups.DeleteGroup(r.Context(), groupID, auth.UserIDFromContext(r.Context())); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, map[string]string{"id": groupID})
}
