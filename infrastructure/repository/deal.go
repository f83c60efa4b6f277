package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/period"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

const (
	dealsTable = "deals d"
)

var dealColumns = []string{
	"d.deal_id",
	"COALESCE(d.account_id, '')",
	"COALESCE(d.rep_id, '')",
	"COALESCE(d.stage, '')",
	"COALESCE(d.amount, 0)",
	"d.created_at",
	"d.closed_at",
}

type DealRepository interface {
	CountDeals(ctx context.Context) (int, error)
	GetLatestClosedDate(ctx context.Context) (*time.Time, error)
	GetLatestDealDate(ctx context.Context) (*time.Time, error)
	ListClosedBetween(ctx context.Context, window period.Window) ([]*domain.Deal, error)
	ListOpenCreatedBetween(ctx context.Context, window period.Window) ([]*domain.Deal, error)
	ListOpenWithLastActivity(ctx context.Context) ([]*domain.OpenDealActivity, error)
	InsertMissing(ctx context.Context, runner database.Execer, deals []*domain.Deal) (int64, error)
}

type dealRepository struct {
	conn *database.Connection
}

func NewDealRepository(conn *database.Connection) DealRepository {
	return &dealRepository{
		conn: conn,
	}
}

func (r *dealRepository) CountDeals(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(dealsTable).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar negócios: %w", err)
	}

	return count, nil
}

// GetLatestClosedDate retorna MAX(closed_at), âncora do trimestre corrente. Nil quando nenhum negócio foi fechado.
func (r *dealRepository) GetLatestClosedDate(ctx context.Context) (*time.Time, error) {
	return r.maxDate(ctx, "MAX(d.closed_at)", squirrel.NotEq{"d.closed_at": nil})
}

// GetLatestDealDate retorna MAX(COALESCE(closed_at, created_at))
func (r *dealRepository) GetLatestDealDate(ctx context.Context) (*time.Time, error) {
	return r.maxDate(ctx, "MAX(COALESCE(d.closed_at, d.created_at))", nil)
}

func (r *dealRepository) maxDate(ctx context.Context, expr string, where squirrel.Sqlizer) (*time.Time, error) {
	builder := squirrel.
		Select(expr).
		From(dealsTable).
		PlaceholderFormat(r.conn.Placeholder())
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullString
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&latest); err != nil {
		return nil, fmt.Errorf("erro ao buscar data mais recente: %w", err)
	}

	if !latest.Valid {
		return nil, nil
	}

	return utils.ParseDate(latest.String)
}

// ListClosedBetween lista negócios ganhos ou perdidos com closed_at dentro da janela (inclusiva)
func (r *dealRepository) ListClosedBetween(ctx context.Context, window period.Window) ([]*domain.Deal, error) {
	query, args, err := squirrel.
		Select(dealColumns...).
		From(dealsTable).
		Where(squirrel.Eq{"d.stage": domain.ClosedStages}).
		Where(squirrel.GtOrEq{"d.closed_at": utils.FormatDate(window.Start)}).
		Where(squirrel.Lt{"d.closed_at": utils.FormatDate(window.Exclusive())}).
		OrderBy("d.closed_at ASC", "d.deal_id ASC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listDeals(ctx, query, args)
}

// ListOpenCreatedBetween lista negócios em estágios abertos criados dentro da janela
func (r *dealRepository) ListOpenCreatedBetween(ctx context.Context, window period.Window) ([]*domain.Deal, error) {
	query, args, err := squirrel.
		Select(dealColumns...).
		From(dealsTable).
		Where(squirrel.NotEq{"d.stage": domain.ClosedStages}).
		Where(squirrel.GtOrEq{"d.created_at": utils.FormatDate(window.Start)}).
		Where(squirrel.Lt{"d.created_at": utils.FormatDate(window.Exclusive())}).
		OrderBy("d.created_at ASC", "d.deal_id ASC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listDeals(ctx, query, args)
}

// ListOpenWithLastActivity lista negócios abertos com o nome da conta e a última atividade
func (r *dealRepository) ListOpenWithLastActivity(ctx context.Context) ([]*domain.OpenDealActivity, error) {
	columns := append([]string{}, dealColumns...)
	columns = append(columns, "COALESCE(ac.name, '')", "la.last_activity")

	query, args, err := squirrel.
		Select(columns...).
		From(dealsTable).
		LeftJoin("accounts ac ON ac.account_id = d.account_id").
		LeftJoin(`(SELECT deal_id, MAX("timestamp") AS last_activity FROM activities GROUP BY deal_id) la ON la.deal_id = d.deal_id`).
		Where(squirrel.NotEq{"d.stage": domain.ClosedStages}).
		OrderBy("d.deal_id ASC").
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

	deals := make([]*domain.OpenDealActivity, 0)
	for rows.Next() {
		item := &domain.OpenDealActivity{}
		var lastActivity sql.NullString

		deal, err := scanDeal(rows, &item.AccountName, &lastActivity)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócio aberto: %w", err)
		}
		item.Deal = *deal

		if lastActivity.Valid {
			item.LastActivityAt, err = utils.ParseDate(lastActivity.String)
			if err != nil {
				return nil, fmt.Errorf("erro ao converter data da última atividade: %w", err)
			}
		}

		deals = append(deals, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deals, nil
}

func (r *dealRepository) InsertMissing(ctx context.Context, runner database.Execer, deals []*domain.Deal) (int64, error) {
	rows := make([][]interface{}, 0, len(deals))
	for _, d := range deals {
		var closedAt interface{}
		if d.ClosedAt != nil {
			closedAt = utils.FormatDate(*d.ClosedAt)
		}

		rows = append(rows, []interface{}{
			d.ID,
			d.AccountID,
			d.RepID,
			d.Stage,
			d.Amount,
			utils.FormatDate(d.CreatedAt),
			closedAt,
		})
	}

	return insertIgnoringConflicts(ctx, runner, r.conn.Placeholder(), "deals", "deal_id",
		[]string{"deal_id", "account_id", "rep_id", "stage", "amount", "created_at", "closed_at"},
		rows,
	)
}

func (r *dealRepository) listDeals(ctx context.Context, query string, args []interface{}) ([]*domain.Deal, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	deals := make([]*domain.Deal, 0)
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
		}
		deals = append(deals, deal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deals, nil
}

// scanDeal lê as colunas de dealColumns seguidas de destinos extras opcionais
func scanDeal(rows *sql.Rows, extra ...interface{}) (*domain.Deal, error) {
	deal := &domain.Deal{}
	var createdAt, closedAt sql.NullString

	dest := []interface{}{
		&deal.ID,
		&deal.AccountID,
		&deal.RepID,
		&deal.Stage,
		&deal.Amount,
		&createdAt,
		&closedAt,
	}
	dest = append(dest, extra...)

	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	created, err := utils.ParseDate(createdAt.String)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter created_at do negócio %s: %w", deal.ID, err)
	}
	if created != nil {
		deal.CreatedAt = *created
	}

	if closedAt.Valid {
		deal.ClosedAt, err = utils.ParseDate(closedAt.String)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter closed_at do negócio %s: %w", deal.ID, err)
		}
	}

	return deal, nil
}
