package dto

import (
	"time"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string           `json:"name" binding:"required"`
	AccountType    string           `json:"type" binding:"required,oneof=personal household company couple other"`
	Currency       string           `json:"currency" binding:"omitempty,len=3"`
	InitialBalance *decimal.Decimal `json:"initialBalance"`
	Color          *string          `json:"color" binding:"omitempty,hexcolor"`
	Icon           *string          `json:"icon"`
}

// UpdateAccountRequest defines the fields allowed for a partial account
// update. Pointers distinguish omitted fields from zero values.
type UpdateAccountRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	AccountType *string `json:"type" binding:"omitempty,oneof=personal household company couple other"`
	Currency    *string `json:"currency" binding:"omitempty,len=3"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
	Icon        *string `json:"icon"`
}

// Fields returns the provided values keyed by column name, for the
// dynamic patch builder.
func (r UpdateAccountRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.AccountType != nil {
		fields["account_type"] = *r.AccountType
	}
	if r.Currency != nil {
		fields["currency"] = *r.Currency
	}
	if r.Color != nil {
		fields["color"] = *r.Color
	}
	if r.Icon != nil {
		fields["icon"] = *r.Icon
	}
	return fields
}

// AccountResponse defines the data returned for an account. Role is the
// requesting user's role in it.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	AccountType    string          `json:"type"`
	Currency       string          `json:"currency"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Color          *string         `json:"color,omitempty"`
	Icon           *string         `json:"icon,omitempty"`
	Role           domain.Role     `json:"role,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account, role domain.Role) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		AccountType:    string(acc.AccountType),
		Currency:       acc.Currency,
		InitialBalance: acc.InitialBalance,
		CurrentBalance: acc.CurrentBalance,
		Color:          acc.Color,
		Icon:           acc.Icon,
		Role:           role,
		CreatedAt:      acc.CreatedAt,
		UpdatedAt:      acc.UpdatedAt,
	}
}

// AccountEnvelope wraps a single account under its resource key.
// Message is set on mutations only.
type AccountEnvelope struct {
	Message string          `json:"message,omitempty"`
	Account AccountResponse `json:"account"`
}

// ListAccountsResponse wraps the caller's accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts membership-joined accounts to the list envelope.
func ToListAccountsResponse(accounts []domain.AccountWithRole) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i].Account, accounts[i].Role)
	}
	return ListAccountsResponse{Accounts: res}
}

// InviteMemberRequest invites an existing user to an account by email.
type InviteMemberRequest struct {
	Email string      `json:"email" binding:"required,email"`
	Role  domain.Role `json:"role" binding:"required,oneof=editor viewer"`
}

// MemberResponse defines the data returned for an account member.
type MemberResponse struct {
	AccountID string              `json:"accountID"`
	UserID    string              `json:"userID"`
	Email     string              `json:"email,omitempty"`
	FullName  string              `json:"fullName,omitempty"`
	Role      domain.Role         `json:"role"`
	Status    domain.MemberStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

// ToMemberResponse converts a domain.AccountMember to MemberResponse.
func ToMemberResponse(m *domain.AccountMember) MemberResponse {
	return MemberResponse{
		AccountID: m.AccountID,
		UserID:    m.UserID,
		Email:     m.UserEmail,
		FullName:  m.UserName,
		Role:      m.Role,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

// MemberEnvelope wraps a single membership under its resource key.
type MemberEnvelope struct {
	Message string         `json:"message,omitempty"`
	Member  MemberResponse `json:"member"`
}

// ListMembersResponse wraps an account's members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}
