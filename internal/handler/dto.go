package handler

import (
	"github.com/shopspring/decimal"

	"github.com/splittab/splittab/internal/calculator"
	"github.com/splittab/splittab/internal/models"
	"github.com/splittab/splittab/internal/service"
)

// Response shapes. Models stay transport-agnostic; everything the API
// returns goes through these.

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}

type SplitResponse struct {
	UserID   string          `json:"user_id"`
	UserName string          `json:"user_name"`
	Amount   decimal.Decimal `json:"amount"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaidBy      string          `json:"paid_by"`
	PaidByName  string          `json:"paid_by_name"`
	GroupID     string          `json:"group_id,omitempty"`
	GroupName   string          `json:"group_name,omitempty"`
	SplitType   string          `json:"split_type"`
	Splits      []SplitResponse `json:"splits"`
	CreatedAt   int64           `json:"created_at"`
}

func toExpenseResponse(e *models.Expense) ExpenseResponse {
	splits := make([]SplitResponse, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = SplitResponse{UserID: s.UserID, UserName: s.UserName, Amount: s.Amount}
	}
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		PaidBy:      e.PaidBy,
		PaidByName:  e.PaidByName,
		GroupID:     e.GroupID,
		GroupName:   e.GroupName,
		SplitType:   e.SplitType,
		Splits:      splits,
		CreatedAt:   e.CreatedAt,
	}
}

func toExpenseResponses(expenses []*models.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseResponse(e)
	}
	return out
}

type SettlementResponse struct {
	ID         string          `json:"id"`
	PaidBy     string          `json:"paid_by"`
	PaidByName string          `json:"paid_by_name"`
	PaidTo     string          `json:"paid_to"`
	PaidToName string          `json:"paid_to_name"`
	Amount     decimal.Decimal `json:"amount"`
	GroupID    string          `json:"group_id,omitempty"`
	GroupName  string          `json:"group_name,omitempty"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  int64           `json:"created_at"`
}

func toSettlementResponse(s *models.Settlement) SettlementResponse {
	return SettlementResponse{
		ID:         s.ID,
		PaidBy:     s.PaidBy,
		PaidByName: s.PaidByName,
		PaidTo:     s.PaidTo,
		PaidToName: s.PaidToName,
		Amount:     s.Amount,
		GroupID:    s.GroupID,
		GroupName:  s.GroupName,
		Note:       s.Note,
		CreatedAt:  s.CreatedAt,
	}
}

func toSettlementResponses(settlements []*models.Settlement) []SettlementResponse {
	out := make([]SettlementResponse, len(settlements))
	for i, s := range settlements {
		out[i] = toSettlementResponse(s)
	}
	return out
}

type GroupResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	CreatedBy     string `json:"created_by"`
	CreatedByName string `json:"created_by_name,omitempty"`
	MemberCount   int    `json:"member_count,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

func toGroupResponse(g *models.Group) GroupResponse {
	return GroupResponse{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		CreatedBy:     g.CreatedBy,
		CreatedByName: g.CreatedByName,
		MemberCount:   g.MemberCount,
		CreatedAt:     g.CreatedAt,
	}
}

type GroupDetailResponse struct {
	Group       GroupResponse        `json:"group"`
	Members     []UserResponse       `json:"members"`
	Expenses    []ExpenseResponse    `json:"expenses"`
	Settlements []SettlementResponse `json:"settlements"`
}

func toGroupDetailResponse(d *service.GroupDetail) GroupDetailResponse {
	return GroupDetailResponse{
		Group:       toGroupResponse(d.Group),
		Members:     toUserResponses(d.Members),
		Expenses:    toExpenseResponses(d.Expenses),
		Settlements: toSettlementResponses(d.Settlements),
	}
}

type BalanceResponse struct {
	UserID   string          `json:"user_id"`
	UserName string          `json:"user_name"`
	Amount   decimal.Decimal `json:"amount"`
}

type BalanceSummaryResponse struct {
	Balances       []BalanceResponse `json:"balances"`
	TotalOwedToYou decimal.Decimal   `json:"total_owed_to_you"`
	TotalYouOwe    decimal.Decimal   `json:"total_you_owe"`
	NetBalance     decimal.Decimal   `json:"net_balance"`
}

func toBalanceSummaryResponse(s *calculator.BalanceSummary) BalanceSummaryResponse {
	balances := make([]BalanceResponse, len(s.Balances))
	for i, b := range s.Balances {
		balances[i] = BalanceResponse{UserID: b.UserID, UserName: b.UserName, Amount: b.Amount}
	}
	return BalanceSummaryResponse{
		Balances:       balances,
		TotalOwedToYou: s.TotalOwedToYou,
		TotalYouOwe:    s.TotalYouOwe,
		NetBalance:     s.NetBalance,
	}
}
