package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/splittab/splittab/internal/auth"
	"github.com/splittab/splittab/internal/storage"
)

// AuthHandler serves registration, login, session introspection, and
// user search.
type AuthHandler struct {
	authenticator auth.Authenticator
	tokens        *auth.JWTManager
	store         storage.Store
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authenticator auth.Authenticator, tokens *auth.JWTManager, store storage.Store) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, tokens: tokens, store: store}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *registerRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "a valid email is required"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}

type authResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Register creates an account and returns a session token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		RespondValidationError(w, fieldErrs)
		return
	}

	user, err := h.authenticator.Register(r.Context(), strings.TrimSpace(req.Name), strings.ToLower(req.Email), req.Password)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, authResponse{Token: token, User: toUserResponse(user)})
}

// Login authenticates an existing user and returns a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		RespondValidationError(w, fieldErrs)
		return
	}

	user, err := h.authenticator.Authenticate(r.Context(), strings.ToLower(req.Email), req.Password)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, authResponse{Token: token, User: toUserResponse(user)})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	if user == nil {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	RespondSuccess(w, http.StatusOK, toUserResponse(user))
}

// SearchUsers finds users by email substring for friend discovery.
// Queries shorter than three characters are rejected to keep the
// directory from being enumerable.
func (h *AuthHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(q) < 3 {
		RespondValidationError(w, []FieldError{{Field: "q", Message: "query must be at least 3 characters"}})
		return
	}

	users, err := h.store.SearchUsersByEmail(r.Context(), q, auth.UserIDFromContext(r.Context()))
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toUserResponses(users))
}
