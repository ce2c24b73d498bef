package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/splittab/splittab/internal/auth"
	"github.com/splittab/splittab/internal/calculator"
	"github.com/splittab/splittab/internal/service"
)

// AppError pairs an HTTP status with a stable error code.
type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrMissingToken       = &AppError{http.StatusUnauthorized, "MISSING_TOKEN", "Authorization header required"}
	ErrInvalidToken       = &AppError{http.StatusUnauthorized, "INVALID_TOKEN", "Token is invalid or expired"}
	ErrInvalidCredentials = &AppError{http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password"}
	ErrInvalidRequest     = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body"}
	ErrValidationFailed   = &AppError{http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed"}
	ErrResourceNotFound   = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrInternalError      = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrForbidden          = &AppError{http.StatusForbidden, "FORBIDDEN", "You do not have permission to do that"}
	ErrNotGroupMember     = &AppError{http.StatusForbidden, "NOT_GROUP_MEMBER", "You are not a member of this group"}
	ErrNotFriends         = &AppError{http.StatusBadRequest, "NOT_FRIENDS", "You can only add your friends to groups"}
	ErrSelfFriend         = &AppError{http.StatusBadRequest, "SELF_FRIEND", "Cannot add yourself as a friend"}
	ErrAlreadyFriends     = &AppError{http.StatusBadRequest, "ALREADY_FRIENDS", "Already friends"}
	ErrWeakPassword       = &AppError{http.StatusBadRequest, "WEAK_PASSWORD", "Password must be at least 8 characters"}
	ErrEmailExists        = &AppError{http.StatusBadRequest, "EMAIL_EXISTS", "Email already registered"}
	ErrInvalidTotal       = &AppError{http.StatusBadRequest, "INVALID_TOTAL", "Amount must be positive with at most two decimal places"}
	ErrEmptyParticipants  = &AppError{http.StatusBadRequest, "EMPTY_PARTICIPANTS", "At least one participant is required"}
	ErrDuplicateSplit     = &AppError{http.StatusBadRequest, "DUPLICATE_PARTICIPANT", "Duplicate participant in split"}
	ErrSplitMismatch      = &AppError{http.StatusBadRequest, "SPLIT_MISMATCH", "Splits do not add up to the expense total"}
	ErrInvalidSplitType   = &AppError{http.StatusBadRequest, "INVALID_SPLIT_TYPE", "Split type must be equal, exact, or percentage"}
	ErrInvalidSettlement  = &AppError{http.StatusBadRequest, "INVALID_SETTLEMENT", "Settlement requires a positive amount and two distinct users"}
	ErrInvalidDescription = &AppError{http.StatusBadRequest, "INVALID_DESCRIPTION", "Description is required"}
	ErrInvalidGroupName   = &AppError{http.StatusBadRequest, "INVALID_GROUP_NAME", "Group name is required"}
)

// RespondDomainError maps domain sentinel errors onto HTTP responses.
// Anything unrecognized is logged and reported as an internal error so
// storage failures never leak details to clients.
func RespondDomainError(w http.ResponseWriter, err error) {
	var appErr *AppError

	switch {
	case errors.Is(err, service.ErrNotFound):
		appErr = ErrResourceNotFound
	case errors.Is(err, service.ErrForbidden):
		appErr = ErrForbidden
	case errors.Is(err, service.ErrNotGroupMember):
		appErr = ErrNotGroupMember
	case errors.Is(err, service.ErrNotFriends):
		appErr = ErrNotFriends
	case errors.Is(err, service.ErrSelfFriend):
		appErr = ErrSelfFriend
	case errors.Is(err, service.ErrAlreadyFriends):
		appErr = ErrAlreadyFriends
	case errors.Is(err, service.ErrInvalidSettlement):
		appErr = ErrInvalidSettlement
	case errors.Is(err, service.ErrInvalidDescription):
		appErr = ErrInvalidDescription
	case errors.Is(err, service.ErrInvalidGroupName):
		appErr = ErrInvalidGroupName
	case errors.Is(err, calculator.ErrInvalidTotal):
		appErr = ErrInvalidTotal
	case errors.Is(err, calculator.ErrEmptyParticipants):
		appErr = ErrEmptyParticipants
	case errors.Is(err, calculator.ErrDuplicateParticipant):
		appErr = ErrDuplicateSplit
	case errors.Is(err, calculator.ErrSplitMismatch):
		appErr = ErrSplitMismatch
	case errors.Is(err, calculator.ErrInvalidSplitType):
		appErr = ErrInvalidSplitType
	case errors.Is(err, auth.ErrInvalidCredentials):
		appErr = ErrInvalidCredentials
	case errors.Is(err, auth.ErrWeakPassword):
		appErr = ErrWeakPassword
	case errors.Is(err, auth.ErrEmailExists):
		appErr = ErrEmailExists
	default:
		slog.Error("unhandled domain error", "error", err)
		appErr = ErrInternalError
	}

	RespondAppError(w, appErr, nil)
}
