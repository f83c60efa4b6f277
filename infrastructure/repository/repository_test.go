package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/period"
)

func newTestConn(t *testing.T) *database.Connection {
	t.Helper()

	conn, err := database.NewConnection(context.Background(), config.Database{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Migrate(context.Background()))
	return conn
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func seed(t *testing.T, conn *database.Connection) {
	t.Helper()
	ctx := context.Background()

	_, err := NewAccountRepository(conn).InsertMissing(ctx, conn, []*domain.Account{
		{ID: "A1", Name: "Acme"},
		{ID: "A2", Name: "Globex"},
		{ID: "A3", Name: "Initech"},
	})
	require.NoError(t, err)

	_, err = NewRepRepository(conn).InsertMissing(ctx, conn, []*domain.Rep{
		{ID: "R2", Name: "Bruno"},
		{ID: "R1", Name: "Ana"},
	})
	require.NoError(t, err)

	_, err = NewDealRepository(conn).InsertMissing(ctx, conn, []*domain.Deal{
		{ID: "D1", AccountID: "A1", RepID: "R1", Stage: domain.StageClosedWon, Amount: 1000, CreatedAt: day(2024, 5, 1), ClosedAt: dayPtr(2024, 5, 15)},
		{ID: "D2", AccountID: "A1", RepID: "R2", Stage: domain.StageClosedLost, Amount: 300, CreatedAt: day(2024, 4, 1), ClosedAt: dayPtr(2024, 6, 30)},
		{ID: "D3", AccountID: "A2", RepID: "R1", Stage: domain.StageNegotiation, Amount: 700, CreatedAt: day(2024, 6, 2)},
		{ID: "D4", AccountID: "A9", RepID: "R2", Stage: domain.StageProspecting, Amount: 50, CreatedAt: day(2024, 7, 3)},
		{ID: "D5", AccountID: "A2", RepID: "R1", Stage: domain.StageClosedWon, Amount: 200, CreatedAt: day(2024, 1, 10), ClosedAt: dayPtr(2024, 3, 31)},
	})
	require.NoError(t, err)

	_, err = NewActivityRepository(conn).InsertMissing(ctx, conn, []*domain.Activity{
		{ID: "X1", DealID: "D3", Type: "call", Timestamp: time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)},
		{ID: "X2", DealID: "D3", Type: "email", Timestamp: time.Date(2024, 6, 20, 9, 30, 0, 0, time.UTC)},
		{ID: "X3", DealID: "D1", Type: "meeting", Timestamp: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	_, err = NewTargetRepository(conn).InsertMissing(ctx, conn, []*domain.Target{
		{Month: "2024-04", Target: 500},
		{Month: "2024-05", Target: 500},
		{Month: "2024-06", Target: 500},
		{Month: "2024-03", Target: 400},
	})
	require.NoError(t, err)
}

func TestDealRepository(t *testing.T) {
	ctx := context.Background()
	conn := newTestConn(t)
	seed(t, conn)
	repo := NewDealRepository(conn)

	t.Run("CountDeals", func(t *testing.T) {
		count, err := repo.CountDeals(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("GetLatestClosedDate", func(t *testing.T) {
		latest, err := repo.GetLatestClosedDate(ctx)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, day(2024, 6, 30), *latest)
	})

	t.Run("GetLatestDealDate usa created_at dos abertos", func(t *testing.T) {
		latest, err := repo.GetLatestDealDate(ctx)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, day(2024, 7, 3), *latest)
	})

	t.Run("ListClosedBetween inclui o último dia da janela", func(t *testing.T) {
		deals, err := repo.ListClosedBetween(ctx, period.QuarterOf(day(2024, 5, 15)).Window)
		require.NoError(t, err)
		require.Len(t, deals, 2)
		assert.Equal(t, "D1", deals[0].ID)
		assert.Equal(t, "D2", deals[1].ID)
		assert.Equal(t, day(2024, 6, 30), *deals[1].ClosedAt)
	})

	t.Run("ListOpenCreatedBetween", func(t *testing.T) {
		w, err := period.MonthWindow("2024-06")
		require.NoError(t, err)

		deals, err := repo.ListOpenCreatedBetween(ctx, w)
		require.NoError(t, err)
		require.Len(t, deals, 1)
		assert.Equal(t, "D3", deals[0].ID)
		assert.Nil(t, deals[0].ClosedAt)
	})

	t.Run("ListOpenWithLastActivity tolera conta inexistente", func(t *testing.T) {
		deals, err := repo.ListOpenWithLastActivity(ctx)
		require.NoError(t, err)
		require.Len(t, deals, 2)

		assert.Equal(t, "D3", deals[0].ID)
		assert.Equal(t, "Globex", deals[0].AccountName)
		require.NotNil(t, deals[0].LastActivityAt)
		assert.Equal(t, time.Date(2024, 6, 20, 9, 30, 0, 0, time.UTC), *deals[0].LastActivityAt)

		assert.Equal(t, "D4", deals[1].ID)
		assert.Equal(t, "", deals[1].AccountName)
		assert.Nil(t, deals[1].LastActivityAt)
	})
}

func TestDealRepository_EmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := NewDealRepository(newTestConn(t))

	count, err := repo.CountDeals(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	latest, err := repo.GetLatestClosedDate(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestDealRepository_InsertMissingIgnoresDuplicates(t *testing.T) {
	ctx := context.Background()
	conn := newTestConn(t)
	repo := NewDealRepository(conn)

	original := &domain.Deal{ID: "D1", AccountID: "A1", RepID: "R1", Stage: domain.StageNegotiation, Amount: 10, CreatedAt: day(2024, 1, 1)}
	inserted, err := repo.InsertMissing(ctx, conn, []*domain.Deal{original, original})
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	changed := *original
	changed.Amount = 999
	inserted, err = repo.InsertMissing(ctx, conn, []*domain.Deal{&changed})
	require.NoError(t, err)
	assert.Zero(t, inserted)

	deals, err := repo.ListOpenCreatedBetween(ctx, period.YearWindow(2024))
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, 10.0, deals[0].Amount)
}

func TestAccountRepository_ListActivityStats(t *testing.T) {
	conn := newTestConn(t)
	seed(t, conn)

	stats, err := NewAccountRepository(conn).ListActivityStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 4)

	assert.Equal(t, "A1", stats[0].AccountID)
	assert.Equal(t, 1, stats[0].ActivityCount)
	require.NotNil(t, stats[0].LastActivityAt)
	assert.Equal(t, time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC), *stats[0].LastActivityAt)

	assert.Equal(t, "A2", stats[1].AccountID)
	assert.Equal(t, 2, stats[1].ActivityCount)

	assert.Equal(t, "Initech", stats[2].AccountName)
	assert.Zero(t, stats[2].ActivityCount)
	assert.Nil(t, stats[2].LastActivityAt)

	// A9 só existe no negócio D4
	assert.Equal(t, "A9", stats[3].AccountID)
	assert.Equal(t, "", stats[3].AccountName)
	assert.Zero(t, stats[3].ActivityCount)
	assert.Nil(t, stats[3].LastActivityAt)
}

func TestAccountRepository_ListActivityStats_OnlyDeals(t *testing.T) {
	ctx := context.Background()
	conn := newTestConn(t)

	_, err := NewDealRepository(conn).InsertMissing(ctx, conn, []*domain.Deal{
		{ID: "D1", AccountID: "B1", RepID: "R1", Stage: domain.StageNegotiation, Amount: 10, CreatedAt: day(2024, 1, 1)},
		{ID: "D2", AccountID: "B1", RepID: "R1", Stage: domain.StageProspecting, Amount: 20, CreatedAt: day(2024, 1, 2)},
	})
	require.NoError(t, err)

	_, err = NewActivityRepository(conn).InsertMissing(ctx, conn, []*domain.Activity{
		{ID: "X1", DealID: "D1", Type: "call", Timestamp: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)},
		{ID: "X2", DealID: "D2", Type: "email", Timestamp: time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	stats, err := NewAccountRepository(conn).ListActivityStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "B1", stats[0].AccountID)
	assert.Equal(t, "", stats[0].AccountName)
	assert.Equal(t, 2, stats[0].ActivityCount)
	require.NotNil(t, stats[0].LastActivityAt)
	assert.Equal(t, time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC), *stats[0].LastActivityAt)
}

func TestActivityRepository_GetLatestActivityDate(t *testing.T) {
	conn := newTestConn(t)
	repo := NewActivityRepository(conn)

	latest, err := repo.GetLatestActivityDate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)

	seed(t, conn)
	latest, err = repo.GetLatestActivityDate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, time.Date(2024, 6, 20, 9, 30, 0, 0, time.UTC), *latest)
}

func TestRepRepository_ListReps(t *testing.T) {
	conn := newTestConn(t)
	seed(t, conn)

	reps, err := NewRepRepository(conn).ListReps(context.Background())
	require.NoError(t, err)
	require.Len(t, reps, 2)
	assert.Equal(t, &domain.Rep{ID: "R1", Name: "Ana"}, reps[0])
}

func TestTargetRepository(t *testing.T) {
	ctx := context.Background()
	conn := newTestConn(t)
	repo := NewTargetRepository(conn)

	latest, err := repo.GetLatestMonth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", latest)

	seed(t, conn)

	latest, err = repo.GetLatestMonth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-06", latest)

	targets, err := repo.ListByMonths(ctx, []string{"2024-04", "2024-05", "2024-06", "2024-07"})
	require.NoError(t, err)
	assert.Len(t, targets, 3)
	assert.Equal(t, 1500.0, domain.SumTargets(targets, []string{"2024-04", "2024-05", "2024-06"}))

	recent, err := repo.ListLatest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2024-05", recent[0].Month)
	assert.Equal(t, "2024-06", recent[1].Month)
}
