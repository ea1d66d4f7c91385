package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	portsrepo "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/repositories"
)

const categoryColumns = `category_id, account_id, name, category_type, color, icon, parent_id, is_active, created_at, updated_at`

var categoryPatchColumns = []string{"name", "category_type", "color", "icon", "parent_id", "is_active"}

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.AccountID,
		category.Name,
		category.Type,
		category.Color,
		category.Icon,
		category.ParentID,
		category.IsActive,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "save category")
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`
	rows, err := r.Pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, apperrors.FromPgError(err, "query category")
	}
	category, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan category")
	}
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategoriesByAccountID(ctx context.Context, accountID string) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE account_id = $1 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.FromPgError(err, "list categories")
	}
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Category])
	if err != nil {
		return nil, apperrors.FromPgError(err, "scan categories")
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, categoryID string, fields map[string]any) (*domain.Category, error) {
	setClause, args, err := buildPatch(categoryPatchColumns, fields)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		UPDATE categories SET %s, updated_at = NOW()
		WHERE category_id = $%d
		RETURNING %s;
	`, setClause, len(args)+1, categoryColumns)
	rows, err := r.Pool.Query(ctx, query, append(args, categoryID)...)
	if err != nil {
		return nil, apperrors.FromPgError(err, "update category")
	}
	category, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan updated category")
	}
	return &category, nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM categories WHERE category_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, categoryID)
	if err != nil {
		return apperrors.FromPgError(err, "delete category")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) CountTransactionsByCategoryID(ctx context.Context, categoryID string) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE category_id = $1;`
	var count int64
	if err := r.Pool.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		return 0, apperrors.FromPgError(err, "count category transactions")
	}
	return count, nil
}
