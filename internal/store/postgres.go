package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/muntadher/nizam-api/internal/database"
	"github.com/muntadher/nizam-api/internal/models"
)

// pgCollection is the durable backend for one entity collection. Columns
// are snake_case; reads map back onto struct fields through their db tags,
// so the snake/camel translation stays at this boundary. columns[0] is
// always "id" and values(row) is aligned with columns.
type pgCollection[T Entity] struct {
	pool    database.PgxPool
	table   string
	columns []string
	values  func(T) []any
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

func (c *pgCollection[T]) columnList() string {
	return strings.Join(c.columns, ", ")
}

func (c *pgCollection[T]) Insert(ctx context.Context, row T) error {
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", c.table, c.columnList(), placeholders(len(c.columns)))
	if _, err := c.pool.Exec(ctx, sql, c.values(row)...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", c.table, err)
	}
	return nil
}

func (c *pgCollection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	rows, err := c.pool.Query(ctx, fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", c.columnList(), c.table), id)
	if err != nil {
		return zero, false, fmt.Errorf("failed to query %s: %w", c.table, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("failed to scan %s row: %w", c.table, err)
	}
	return row, true, nil
}

func (c *pgCollection[T]) ListAll(ctx context.Context) ([]T, error) {
	rows, err := c.pool.Query(ctx, fmt.Sprintf("SELECT %s FROM %s", c.columnList(), c.table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.table, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s rows: %w", c.table, err)
	}
	return out, nil
}

func (c *pgCollection[T]) ListByWorkspace(ctx context.Context, workspaceID string) ([]T, error) {
	rows, err := c.pool.Query(ctx,
		fmt.Sprintf("SELECT %s FROM %s WHERE workspace_id = $1", c.columnList(), c.table), workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.table, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s rows: %w", c.table, err)
	}
	return out, nil
}

func (c *pgCollection[T]) Replace(ctx context.Context, row T) (bool, error) {
	sets := make([]string, 0, len(c.columns)-1)
	for i, col := range c.columns[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+2))
	}
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", c.table, strings.Join(sets, ", "))
	tag, err := c.pool.Exec(ctx, sql, c.values(row)...)
	if err != nil {
		return false, fmt.Errorf("failed to update %s: %w", c.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (c *pgCollection[T]) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := c.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", c.table), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", c.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

const workspaceColumns = "id, code, name_ar, name_en, type, sort_order, created_at, updated_at"

type pgWorkspaces struct {
	pool database.PgxPool
}

func (w *pgWorkspaces) List(ctx context.Context) ([]models.Workspace, error) {
	rows, err := w.pool.Query(ctx, "SELECT "+workspaceColumns+" FROM workspaces ORDER BY sort_order")
	if err != nil {
		return nil, fmt.Errorf("failed to query workspaces: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[models.Workspace])
	if err != nil {
		return nil, fmt.Errorf("failed to scan workspaces: %w", err)
	}
	return out, nil
}

func (w *pgWorkspaces) Get(ctx context.Context, id string) (models.Workspace, bool, error) {
	rows, err := w.pool.Query(ctx, "SELECT "+workspaceColumns+" FROM workspaces WHERE id = $1", id)
	if err != nil {
		return models.Workspace{}, false, fmt.Errorf("failed to query workspaces: %w", err)
	}
	ws, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.Workspace])
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Workspace{}, false, nil
	}
	if err != nil {
		return models.Workspace{}, false, fmt.Errorf("failed to scan workspace: %w", err)
	}
	return ws, true, nil
}

type pgBudgets struct {
	pool database.PgxPool
}

func (b *pgBudgets) Get(ctx context.Context, workspaceID string) (float64, error) {
	var amount float64
	err := b.pool.QueryRow(ctx,
		"SELECT amount FROM workspace_budgets WHERE workspace_id = $1", workspaceID).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query budget: %w", err)
	}
	return amount, nil
}

func (b *pgBudgets) Set(ctx context.Context, workspaceID string, amount float64) (float64, error) {
	_, err := b.pool.Exec(ctx, `
		INSERT INTO workspace_budgets (workspace_id, amount)
		VALUES ($1, $2)
		ON CONFLICT (workspace_id) DO UPDATE SET amount = EXCLUDED.amount
	`, workspaceID, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert budget: %w", err)
	}
	return amount, nil
}

// NewPostgres builds the durable store over an open pool. The schema is
// managed by database.Migrate, not here.
func NewPostgres(db *database.DB) *Store {
	return newPgStore(db.Pool)
}
