package domain

// CategoryType splits categories into spending and earning buckets.
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

// Category belongs to exactly one account and optionally to a parent
// category. A category with at least one referencing transaction cannot
// be deleted.
type Category struct {
	CategoryID string       `json:"categoryID" db:"category_id"`
	AccountID  string       `json:"accountID" db:"account_id"`
	Name       string       `json:"name" db:"name"`
	Type       CategoryType `json:"type" db:"category_type"`
	Color      *string      `json:"color,omitempty" db:"color"`
	Icon       *string      `json:"icon,omitempty" db:"icon"`
	ParentID   *string      `json:"parentID,omitempty" db:"parent_id"`
	IsActive   bool         `json:"isActive" db:"is_active"`
	AuditFields
}
