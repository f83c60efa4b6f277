package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

type ActivityRepository interface {
	GetLatestActivityDate(ctx context.Context) (*time.Time, error)
	InsertMissing(ctx context.Context, runner database.Execer, activities []*domain.Activity) (int64, error)
}

type activityRepository struct {
	conn *database.Connection
}

func NewActivityRepository(conn *database.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func (r *activityRepository) GetLatestActivityDate(ctx context.Context) (*time.Time, error) {
	query, args, err := squirrel.
		Select(`MAX(act."timestamp")`).
		From("activities act").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullString
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&latest); err != nil {
		return nil, fmt.Errorf("erro ao buscar atividade mais recente: %w", err)
	}

	if !latest.Valid {
		return nil, nil
	}

	return utils.ParseDate(latest.String)
}

func (r *activityRepository) InsertMissing(ctx context.Context, runner database.Execer, activities []*domain.Activity) (int64, error) {
	rows := make([][]interface{}, 0, len(activities))
	for _, act := range activities {
		rows = append(rows, []interface{}{
			act.ID,
			act.DealID,
			act.Type,
			utils.FormatTimestamp(act.Timestamp),
		})
	}

	return insertIgnoringConflicts(ctx, runner, r.conn.Placeholder(), "activities", "activity_id",
		[]string{"activity_id", "deal_id", "type", `"timestamp"`},
		rows,
	)
}
