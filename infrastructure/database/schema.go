package database

import (
	"context"
	"fmt"
)

// A mesma DDL roda no postgres e no sqlite. Datas ficam em texto ISO-8601
// para que a comparação lexicográfica seja cronológica nos dois bancos.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		account_id TEXT PRIMARY KEY,
		name TEXT,
		industry TEXT,
		segment TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS reps (
		rep_id TEXT PRIMARY KEY,
		name TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS deals (
		deal_id TEXT PRIMARY KEY,
		account_id TEXT,
		rep_id TEXT,
		stage TEXT,
		amount DOUBLE PRECISION,
		created_at TEXT,
		closed_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		activity_id TEXT PRIMARY KEY,
		deal_id TEXT,
		type TEXT,
		"timestamp" TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS targets (
		month TEXT PRIMARY KEY,
		target DOUBLE PRECISION
	)`,
	`CREATE INDEX IF NOT EXISTS idx_deals_closed_at ON deals (closed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_deals_created_at ON deals (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_deal_id ON activities (deal_id)`,
}

// Migrate cria as tabelas caso ainda não existam
func (c *Connection) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := c.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar schema: %w", err)
		}
	}
	return nil
}
