package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

type RepRepository interface {
	ListReps(ctx context.Context) ([]*domain.Rep, error)
	InsertMissing(ctx context.Context, runner database.Execer, reps []*domain.Rep) (int64, error)
}

type repRepository struct {
	conn *database.Connection
}

func NewRepRepository(conn *database.Connection) RepRepository {
	return &repRepository{
		conn: conn,
	}
}

func (r *repRepository) ListReps(ctx context.Context) ([]*domain.Rep, error) {
	query, args, err := squirrel.
		Select("r.rep_id", "COALESCE(r.name, '')").
		From("reps r").
		OrderBy("r.rep_id ASC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reps := make([]*domain.Rep, 0)
	for rows.Next() {
		rep := &domain.Rep{}
		if err := rows.Scan(&rep.ID, &rep.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
		}
		reps = append(reps, rep)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reps, nil
}

func (r *repRepository) InsertMissing(ctx context.Context, runner database.Execer, reps []*domain.Rep) (int64, error) {
	rows := make([][]interface{}, 0, len(reps))
	for _, rep := range reps {
		rows = append(rows, []interface{}{rep.ID, rep.Name})
	}

	return insertIgnoringConflicts(ctx, runner, r.conn.Placeholder(), "reps", "rep_id",
		[]string{"rep_id", "name"},
		rows,
	)
}
