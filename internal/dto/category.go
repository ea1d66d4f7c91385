package dto

import (
	"time"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	AccountID string  `json:"accountID" binding:"required,uuid"`
	Name      string  `json:"name" binding:"required"`
	Type      string  `json:"type" binding:"required,oneof=expense income"`
	Color     *string `json:"color" binding:"omitempty,hexcolor"`
	Icon      *string `json:"icon"`
	ParentID  *string `json:"parentID" binding:"omitempty,uuid"`
}

// UpdateCategoryRequest defines the fields allowed for a partial category update.
type UpdateCategoryRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Color    *string `json:"color" binding:"omitempty,hexcolor"`
	Icon     *string `json:"icon"`
	IsActive *bool   `json:"isActive"`
}

// Fields returns the provided values keyed by column name.
func (r UpdateCategoryRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Color != nil {
		fields["color"] = *r.Color
	}
	if r.Icon != nil {
		fields["icon"] = *r.Icon
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	return fields
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string    `json:"categoryID"`
	AccountID  string    `json:"accountID"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Color      *string   `json:"color,omitempty"`
	Icon       *string   `json:"icon,omitempty"`
	ParentID   *string   `json:"parentID,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		AccountID:  c.AccountID,
		Name:       c.Name,
		Type:       string(c.Type),
		Color:      c.Color,
		Icon:       c.Icon,
		ParentID:   c.ParentID,
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// CategoryEnvelope wraps a single category under its resource key.
// Message is set on mutations only.
type CategoryEnvelope struct {
	Message  string           `json:"message,omitempty"`
	Category CategoryResponse `json:"category"`
}

// ListCategoriesResponse wraps an account's categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToListCategoriesResponse converts domain categories to the list envelope.
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categories: res}
}
