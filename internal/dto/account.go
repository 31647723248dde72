package dto

import (
	"github.com/xylo-fin/xylo-backend/internal/core/domain"
)

// AccountSpec defines one chart-of-accounts entry in a seeding request.
type AccountSpec struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=asset liability equity income expense"`
	NormalBalance string `json:"normalBalance" binding:"required,oneof=debit credit"`
}

// SeedAccountsRequest defines the input for seeding the chart of accounts.
// An empty account list seeds the built-in default chart.
type SeedAccountsRequest struct {
	Accounts []AccountSpec `json:"accounts" binding:"dive"`
}

// AccountResponse defines the data returned for a chart-of-accounts entry.
type AccountResponse struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	NormalBalance string `json:"normalBalance"`
}

// ToDomainAccount converts an AccountSpec to a domain.Account.
func (s AccountSpec) ToDomainAccount() domain.Account {
	return domain.Account{
		Code:          s.Code,
		Name:          s.Name,
		Type:          domain.AccountType(s.Type),
		NormalBalance: domain.BalanceSide(s.NormalBalance),
	}
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:          acc.Code,
		Name:          acc.Name,
		Type:          string(acc.Type),
		NormalBalance: string(acc.NormalBalance),
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		responses[i] = ToAccountResponse(&acc)
	}
	return responses
}
