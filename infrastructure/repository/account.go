package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

type AccountRepository interface {
	ListActivityStats(ctx context.Context) ([]*domain.AccountActivityStats, error)
	InsertMissing(ctx context.Context, runner database.Execer, accounts []*domain.Account) (int64, error)
}

type accountRepository struct {
	conn *database.Connection
}

func NewAccountRepository(conn *database.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

// ListActivityStats conta as atividades de todos os negócios de cada conta e a data da mais recente.
// Contas citadas por negócios mas ausentes da tabela accounts entram com nome vazio.
func (a *accountRepository) ListActivityStats(ctx context.Context) ([]*domain.AccountActivityStats, error) {
	accountIDs := squirrel.
		Select("account_id").
		From("accounts").
		Suffix("UNION SELECT account_id FROM deals")

	query, args, err := squirrel.
		Select(
			"k.account_id",
			"COALESCE(ac.name, '')",
			"COUNT(act.activity_id)",
			`MAX(act."timestamp")`,
		).
		FromSelect(accountIDs, "k").
		LeftJoin("accounts ac ON ac.account_id = k.account_id").
		LeftJoin("deals d ON d.account_id = k.account_id").
		LeftJoin("activities act ON act.deal_id = d.deal_id").
		GroupBy("k.account_id", "ac.name").
		OrderBy("k.account_id ASC").
		PlaceholderFormat(a.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.AccountActivityStats, 0)
	for rows.Next() {
		item := &domain.AccountActivityStats{}
		var lastActivity sql.NullString

		if err := rows.Scan(&item.AccountID, &item.AccountName, &item.ActivityCount, &lastActivity); err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade da conta: %w", err)
		}

		if lastActivity.Valid {
			item.LastActivityAt, err = utils.ParseDate(lastActivity.String)
			if err != nil {
				return nil, fmt.Errorf("erro ao converter data da última atividade da conta %s: %w", item.AccountID, err)
			}
		}

		stats = append(stats, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

func (a *accountRepository) InsertMissing(ctx context.Context, runner database.Execer, accounts []*domain.Account) (int64, error) {
	rows := make([][]interface{}, 0, len(accounts))
	for _, acc := range accounts {
		rows = append(rows, []interface{}{acc.ID, acc.Name, acc.Industry, acc.Segment})
	}

	return insertIgnoringConflicts(ctx, runner, a.conn.Placeholder(), "accounts", "account_id",
		[]string{"account_id", "name", "industry", "segment"},
		rows,
	)
}
