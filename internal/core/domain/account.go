package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies a shared ledger.
type AccountType string

const (
	AccountPersonal  AccountType = "personal"
	AccountHousehold AccountType = "household"
	AccountCompany   AccountType = "company"
	AccountCouple    AccountType = "couple"
	AccountOther     AccountType = "other"
)

// Account is a shared financial ledger multiple users can belong to with
// distinct roles. Soft-deleted via DeletedAt while referenced.
type Account struct {
	AccountID      string          `json:"accountID" db:"account_id"`
	Name           string          `json:"name" db:"name"`
	AccountType    AccountType     `json:"type" db:"account_type"`
	Currency       string          `json:"currency" db:"currency"`
	InitialBalance decimal.Decimal `json:"initialBalance" db:"initial_balance"`
	CurrentBalance decimal.Decimal `json:"currentBalance" db:"current_balance"`
	Color          *string         `json:"color,omitempty" db:"color"`
	Icon           *string         `json:"icon,omitempty" db:"icon"`
	DeletedAt      *time.Time      `json:"deletedAt,omitempty" db:"deleted_at"`
	AuditFields
}

// Role governs what a member may do with an account's resources.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Action is a class of operation checked against a member's role.
type Action string

const (
	// ActionRead covers GETs on any account-scoped resource.
	ActionRead Action = "read"
	// ActionWrite covers create/update/delete of ledger resources
	// (transactions, categories, budgets, goals, investments) and
	// non-destructive updates to the account itself.
	ActionWrite Action = "write"
	// ActionManage covers destructive operations on the account:
	// deleting it and managing its members.
	ActionManage Action = "manage"
)

// Can reports whether the role permits the action. Viewer is read-only;
// editor additionally writes; only owner deletes the account or manages
// its members.
func (r Role) Can(action Action) bool {
	switch action {
	case ActionRead:
		return r == RoleOwner || r == RoleEditor || r == RoleViewer
	case ActionWrite:
		return r == RoleOwner || r == RoleEditor
	case ActionManage:
		return r == RoleOwner
	default:
		return false
	}
}

// MemberStatus tracks invitation acceptance.
type MemberStatus string

const (
	MemberPending  MemberStatus = "pending"
	MemberAccepted MemberStatus = "accepted"
)

// AccountMember binds a User to an Account with a role and acceptance
// status. Every account-scoped resource is reachable for a caller only
// through a member row with status accepted.
type AccountMember struct {
	AccountID string       `json:"accountID" db:"account_id"`
	UserID    string       `json:"userID" db:"user_id"`
	Role      Role         `json:"role" db:"role"`
	Status    MemberStatus `json:"status" db:"status"`
	InvitedBy *string      `json:"invitedBy,omitempty" db:"invited_by"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`

	// Populated by member-listing joins, not stored on the row.
	UserEmail string `json:"userEmail,omitempty" db:"user_email"`
	UserName  string `json:"userName,omitempty" db:"user_name"`
}

// AccountWithRole pairs an account with the caller's role in it, as
// returned by membership-joined listing queries.
type AccountWithRole struct {
	Account
	Role Role `json:"role" db:"role"`
}
