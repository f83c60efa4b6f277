package repository

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

const (
	targetsTable = "targets t"
)

type TargetRepository interface {
	GetLatestMonth(ctx context.Context) (string, error)
	ListByMonths(ctx context.Context, months []string) ([]*domain.Target, error)
	ListLatest(ctx context.Context, limit int) ([]*domain.Target, error)
	InsertMissing(ctx context.Context, runner database.Execer, targets []*domain.Target) (int64, error)
}

type targetRepository struct {
	conn *database.Connection
}

func NewTargetRepository(conn *database.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

// GetLatestMonth retorna o mês mais recente com meta ("" quando a tabela está vazia)
func (r *targetRepository) GetLatestMonth(ctx context.Context) (string, error) {
	query, args, err := squirrel.
		Select("MAX(t.month)").
		From(targetsTable).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullString
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&latest); err != nil {
		return "", fmt.Errorf("erro ao buscar mês mais recente das metas: %w", err)
	}

	return latest.String, nil
}

func (r *targetRepository) ListByMonths(ctx context.Context, months []string) ([]*domain.Target, error) {
	if len(months) == 0 {
		return []*domain.Target{}, nil
	}

	query, args, err := squirrel.
		Select("t.month", "COALESCE(t.target, 0)").
		From(targetsTable).
		Where(squirrel.Eq{"t.month": months}).
		OrderBy("t.month ASC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listTargets(ctx, query, args)
}

// ListLatest retorna as últimas metas em ordem cronológica
func (r *targetRepository) ListLatest(ctx context.Context, limit int) ([]*domain.Target, error) {
	if limit <= 0 {
		return []*domain.Target{}, nil
	}

	query, args, err := squirrel.
		Select("t.month", "COALESCE(t.target, 0)").
		From(targetsTable).
		OrderBy("t.month DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	targets, err := r.listTargets(ctx, query, args)
	if err != nil {
		return nil, err
	}

	slices.Reverse(targets)
	return targets, nil
}

func (r *targetRepository) InsertMissing(ctx context.Context, runner database.Execer, targets []*domain.Target) (int64, error) {
	rows := make([][]interface{}, 0, len(targets))
	for _, t := range targets {
		rows = append(rows, []interface{}{t.Month, t.Target})
	}

	return insertIgnoringConflicts(ctx, runner, r.conn.Placeholder(), "targets", "month",
		[]string{"month", "target"},
		rows,
	)
}

func (r *targetRepository) listTargets(ctx context.Context, query string, args []interface{}) ([]*domain.Target, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	targets := make([]*domain.Target, 0)
	for rows.Next() {
		target := &domain.Target{}
		if err := rows.Scan(&target.Month, &target.Target); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}
