package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const seoul = "Asia/Seoul"

// newMockStore wires a Store to go-sqlmock through GORM's MySQL dialector.
func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return New(gdb, seoul), mock
}

func TestSettlementSummaries(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`(?s)sum\(T1\.settlement_amount\).*convert_tz\(T2\.schedule, 'UTC', \?\).*group by T3\.id, T3\.name\s+order by T3\.name`).
		WithArgs("매니저팀", seoul, "2025-03-01", seoul, "2025-03-31", "RELEASE").
		WillReturnRows(sqlmock.NewRows([]string{"manager_id", "name", "total_amount", "total_tip"}).
			AddRow(int64(3), "김민수", "90000.00", "0").
			AddRow(int64(7), "박지훈", nil, "5000.00"))

	rows, err := store.SettlementSummaries(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(3), rows[0].ManagerID)
	assert.Equal(t, "김민수", rows[0].Name)
	assert.True(t, rows[0].TotalAmount.Valid)
	assert.Equal(t, "90000", rows[0].TotalAmount.Decimal.String())

	assert.Equal(t, "박지훈", rows[1].Name)
	assert.False(t, rows[1].TotalAmount.Valid)
	assert.Equal(t, "5000", rows[1].TotalTip.Decimal.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlementSummariesWrapsErrors(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`manager_settlement`).WillReturnError(errors.New("dial tcp 10.0.0.5:3306: connect: connection refused"))

	_, err := store.SettlementSummaries(context.Background(), "2025-03-01", "2025-03-31")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query settlement summaries")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestManagerMatches(t *testing.T) {
	store, mock := newMockStore(t)

	kickoff := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)time\(convert_tz\(T2\.schedule, 'UTC', \?\)\).*left join stadium_group T8.*order by T2\.schedule asc`).
		WithArgs(seoul, seoul, int64(42), "매니저팀", seoul, "2025-03-01", seoul, "2025-03-31", "RELEASE").
		WillReturnRows(sqlmock.NewRows([]string{
			"match_id", "match_date", "match_time", "settlement_amount", "tip_amount",
			"match_title", "stadium_name", "stadium_group_name", "max_player_cnt", "match_type",
		}).
			AddRow(int64(101), kickoff, "00:30:00", "30000.00", "0", nil, "B", "A", int64(22), "league").
			AddRow(int64(102), kickoff, "19:00:00", "25000.00", "3000.00", "주말 매치", "C", "A", nil, "cup"))

	rows, err := store.ManagerMatches(context.Background(), 42, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, int64(101), first.MatchID)
	require.NotNil(t, first.MatchDate)
	assert.True(t, kickoff.Equal(*first.MatchDate))
	require.NotNil(t, first.MatchTime)
	assert.Equal(t, "00:30:00", *first.MatchTime)
	assert.Nil(t, first.MatchTitle)
	require.NotNil(t, first.MaxPlayerCnt)
	assert.Equal(t, int64(22), *first.MaxPlayerCnt)
	assert.Equal(t, "league", *first.MatchType)

	second := rows[1]
	require.NotNil(t, second.MatchTitle)
	assert.Equal(t, "주말 매치", *second.MatchTitle)
	assert.Nil(t, second.MaxPlayerCnt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchByIDMissingReturnsNil(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("FROM `match` WHERE id = ").
		WillReturnRows(sqlmock.NewRows([]string{"id", "match_title"}))

	row, err := store.MatchByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, row)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchByIDReturnsRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("FROM `match` WHERE id = ").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(int64(5), "RELEASE"))

	row, err := store.MatchByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Contains(t, row, "id")
	assert.Contains(t, row, "status")
}

func TestMatchesByDateFiltersOnLocalDate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`(?s)SELECT id, match_title, schedule, stadium_id, type FROM .match. WHERE date\(convert_tz\(schedule, 'UTC', \?\)\) = \?`).
		WithArgs(seoul, "2025-03-02").
		WillReturnRows(sqlmock.NewRows([]string{"id", "match_title", "schedule", "stadium_id", "type"}).
			AddRow(int64(101), nil, time.Date(2025, 3, 1, 15, 30, 0, 0, time.UTC), int64(9), "league"))

	rows, err := store.MatchesByDate(context.Background(), "2025-03-02")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInspectionQueries(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery(`SHOW COLUMNS FROM stadium`).
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type"}).AddRow("id", "int").AddRow("name", "varchar(100)"))
	mock.ExpectQuery("FROM `stadium`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "A구장"))
	mock.ExpectQuery("LEFT JOIN stadium ON `match`.stadium_id = stadium.id").
		WillReturnRows(sqlmock.NewRows([]string{"match_id", "stadium_id", "stadium_title", "stadium_name"}))
	mock.ExpectQuery("LEFT JOIN match_type ON `match`.match_type_id = match_type.id").
		WillReturnRows(sqlmock.NewRows([]string{"match_id", "type", "match_type_id", "match_type_name"}))

	columns, err := store.StadiumColumns(ctx)
	require.NoError(t, err)
	assert.Len(t, columns, 2)

	sample, err := store.StadiumSample(ctx)
	require.NoError(t, err)
	assert.Len(t, sample, 1)

	joined, err := store.MatchStadiums(ctx)
	require.NoError(t, err)
	assert.NotNil(t, joined)
	assert.Empty(t, joined)

	types, err := store.MatchTypes(ctx)
	require.NoError(t, err)
	assert.Empty(t, types)

	assert.NoError(t, mock.ExpectationsWereMet())
}
