package handler

import (
	"encoding/json"
	"net/http"

	"github.com/splittab/splittab/internal/auth"
	"github.com/splittab/splittab/internal/service"
)

// FriendHandler serves the friendship endpoints.
type FriendHandler struct {
	friends *service.FriendService
}

// NewFriendHandler creates a FriendHandler.
func NewFriendHandler(friends *service.FriendService) *FriendHandler {
	return &FriendHandler{friends: friends}
}

type addFriendRequest struct {
	FriendID string `json:"friend_id"`
}

func (r *addFriendRequest) Validate() []FieldError {
	if r.FriendID == "" {
		return []FieldError{{Field: "friend_id", Message: "friend_id is required"}}
	}
	return nil
}

// Add records a friendship between the authenticated user and another
// user. Friendship is symmetric: either side can add, both sides see it.
func (h *FriendHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		RespondValidationError(w, fieldErrs)
		return
	}

	if err := h.friends.AddFriend(r.Context(), auth.UserIDFromContext(r.Context()), req.FriendID); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, map[string]string{"friend_id": req.FriendID})
}

// List returns the authenticated user's friends.
func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	friends, err := h.friends.ListFriends(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, toUserResponses(friends))
}

// Remove deletes a friendship from both sides.
func (h *FriendHandler) Remove(w http.ResponseWriter, r *http.Request) {
	friendID := r.PathValue("id")

	if err := h.friends.RemoveFriend(r.Context(), auth.UserIDFromContext(r.Context()), friendID); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, map[string]string{"friend_id": friendID})
}
