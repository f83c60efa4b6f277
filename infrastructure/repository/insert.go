// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database"
)

// Limita o número de parâmetros por instrução (sqlite e postgres têm tetos diferentes)
const insertBatchSize = 200

// insertIgnoringConflicts insere em lotes e ignora chaves já existentes, sem sobrescrever
func insertIgnoringConflicts(
	ctx context.Context,
	runner database.Execer,
	placeholder squirrel.PlaceholderFormat,
	table string,
	key string,
	columns []string,
	rows [][]interface{},
) (int64, error) {
	var inserted int64

	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))

		query := squirrel.StatementBuilder.
			Insert(table).
			Columns(columns...).
			PlaceholderFormat(placeholder)

		for _, row := range rows[start:end] {
			query = query.Values(row...)
		}

		query = query.Suffix(fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", key))

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("erro ao construir query de inserção em %s: %w", table, err)
		}

		result, err := runner.ExecContext(ctx, sqlQuery, args...)
		if err != nil {
			return inserted, fmt.Errorf("erro ao executar query de inserção em %s: %w", table, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}
		inserted += affected
	}

	return inserted, nil
}
