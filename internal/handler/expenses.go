package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/splittab/splittab/internal/auth"
	"github.com/splittab/splittab/internal/models"
	"github.com/splittab/splittab/internal/service"
)

// ExpenseHandler serves the expense endpoints. All split arithmetic
// lives in the calculator; the handler only decodes and validates
// request shape.
type ExpenseHandler struct {
	ledger *service.LedgerService
}

// NewExpenseHandler creates an ExpenseHandler.
func NewExpenseHandler(ledger *service.LedgerService) *ExpenseHandler {
	return &ExpenseHandler{ledger: ledger}
}

type splitRequest struct {
	UserID     string          `json:"user_id"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

type createExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	GroupID     string          `json:"group_id"`
	SplitType   string          `json:"split_type"`
	Splits      []splitRequest  `json:"splits"`
}

func (r *createExpenseRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Description) == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, FieldError{Field: "amount", Message: "amount must be positive"})
	}
	switch r.SplitType {
	case models.SplitEqual, models.SplitExact, models.SplitPercentage:
	default:
		errs = append(errs, FieldError{Field: "split_type", Message: "split_type must be equal, exact, or percentage"})
	}
	if len(r.Splits) == 0 {
		errs = append(errs, FieldError{Field: "splits", Message: "at least one split is required"})
	}
	return errs
}

// Create records an expense paid by the authenticated user.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		RespondValidationError(w, fieldErrs)
		return
	}

	splits := make([]service.SplitInput, len(req.Splits))
	for i, s := range req.Splits {
		splits[i] = service.SplitInput{
			UserID:     s.UserID,
			Amount:     s.Amount,
			Percentage: s.Percentage,
		}
	}

	expense, err := h.ledger.CreateExpense(r.Context(), service.CreateExpenseRequest{
		Description: req.Description,
		Amount:      req.Amount,
		PaidBy:      auth.UserIDFromContext(r.Context()),
		GroupID:     req.GroupID,
		SplitType:   req.SplitType,
		Splits:      splits,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, toExpenseResponse(expense))
}

// List returns the expenses the authenticated user paid or shares in.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.ledger.ListExpenses(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, toExpenseResponses(expenses))
}

// Delete removes an expense and its splits. Only the payer may delete.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	expenseID := r.PathValue("id")

	if err := h.ledger.DeleteExpense(r.Context(), expenseID, auth.UserIDFromContext(r.Context())); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, map[string]string{"id": expenseID})
}
