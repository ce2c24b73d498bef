package handler

import (
	"net/http"

	"github.com/splittab/splittab/internal/auth"
	"github.com/splittab/splittab/internal/service"
)

// BalanceHandler serves the derived balance view.
type BalanceHandler struct {
	ledger *service.LedgerService
}

// NewBalanceHandler creates a BalanceHandler.
func NewBalanceHandler(ledger *service.LedgerService) *BalanceHandler {
	return &BalanceHandler{ledger: ledger}
}

// Get returns the authenticated user's net balance against every
// counterparty, recomputed from the ledger on every call.
func (h *BalanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledger.Balances(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, toBalanceSummaryResponse(summary))
}
