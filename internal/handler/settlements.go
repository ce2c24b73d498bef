package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/splittab/splittab/internal/auth"
	"github.com/splittab/splittab/internal/service"
)

// SettlementHandler serves the settlement endpoints.
type SettlementHandler struct {
	ledger *service.LedgerService
}

// NewSettlementHandler creates a SettlementHandler.
func NewSettlementHandler(ledger *service.LedgerService) *SettlementHandler {
	return &SettlementHandler{ledger: ledger}
}

type createSettlementRequest struct {
	PaidTo  string          `json:"paid_to"`
	Amount  decimal.Decimal `json:"amount"`
	GroupID string          `json:"group_id"`
	Note    string          `json:"note"`
}

func (r *createSettlementRequest) Validate() []FieldError {
	var errs []FieldError
	if r.PaidTo == "" {
		errs = append(errs, FieldError{Field: "paid_to", Message: "paid_to is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, FieldError{Field: "amount", Message: "amount must be positive"})
	}
	return errs
}

// Create records a payment from the authenticated user to another user.
func (h *SettlementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		RespondValidationError(w, fieldErrs)
		return
	}

	settlement, err := h.ledger.CreateSettlement(r.Context(), service.CreateSettlementRequest{
		PaidBy:  auth.UserIDFromContext(r.Context()),
		PaidTo:  req.PaidTo,
		Amount:  req.Amount,
		GroupID: req.GroupID,
		Note:    req.Note,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, toSettlementResponse(settlement))
}

// List returns the settlements the authenticated user paid or received.
func (h *SettlementHandler) List(w http.ResponseWriter, r *http.Request) {
	settlements, err := h.ledger.ListSettlements(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, toSettlementResponses(settlements))
}
