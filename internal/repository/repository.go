// Package repository runs the read-only SQL behind every endpoint.
//
// Statement text is fixed at compile time; caller input only ever travels as a bound
// parameter. All schedule filtering is done on the local calendar date, computed in SQL
// with convert_tz from the stored UTC instant.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/matchops/settlement-report/internal/models"
)

// Row is an untyped result row, used only by the inspection queries.
type Row = map[string]any

// Store executes reporting and inspection queries against the platform database.
type Store struct {
	db *gorm.DB
	tz string // IANA zone passed to convert_tz, e.g. "Asia/Seoul"
}

// New returns a Store that converts schedules into timezone before filtering.
func New(db *gorm.DB, timezone string) *Store {
	return &Store{db: db, tz: timezone}
}

const settlementSummaryQuery = `
select
    T3.id                           as manager_id,
    T3.name                         as name,
    sum(T1.settlement_amount)       as total_amount,
    COALESCE(sum(T5.price), 0)      as total_tip
from manager_settlement T1
         left join ` + "`match`" + ` T2 on T1.match_id = T2.id
         left join manager T3 on T2.manager_id = T3.id
         left join auth_user T4 on T3.user_id = T4.id
         left join manager_tip T5 on T2.id = T5.match_id and T3.id = T5.manager_id
where T4.is_staff = 1
  and T3.is_open = 1
  and T3.name != ?
  and date(convert_tz(T2.schedule, 'UTC', ?)) >= ?
  and date(convert_tz(T2.schedule, 'UTC', ?)) <= ?
  and T2.status = ?
group by T3.id, T3.name
order by T3.name`

// SettlementSummaries returns one row per eligible manager with settlements whose
// match falls between start and end (inclusive, local dates "YYYY-MM-DD"),
// ordered by manager name.
func (s *Store) SettlementSummaries(ctx context.Context, start, end string) ([]models.SettlementSummaryRow, error) {
	var rows []models.SettlementSummaryRow
	err := s.db.WithContext(ctx).
		Raw(settlementSummaryQuery,
			models.ReservedManagerName,
			s.tz, start,
			s.tz, end,
			string(models.MatchStatusRelease),
		).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query settlement summaries: %w", err)
	}
	return rows, nil
}

const managerMatchesQuery = `
select
    T2.id                                         as match_id,
    date(convert_tz(T2.schedule, 'UTC', ?))       as match_date,
    time(convert_tz(T2.schedule, 'UTC', ?))       as match_time,
    T1.settlement_amount                          as settlement_amount,
    COALESCE(T5.price, 0)                         as tip_amount,
    T2.match_title                                as match_title,
    T7.name                                       as stadium_name,
    T8.name                                       as stadium_group_name,
    T2.max_player_cnt                             as max_player_cnt,
    T2.type                                       as match_type
from manager_settlement T1
         left join ` + "`match`" + ` T2 on T1.match_id = T2.id
         left join manager T3 on T2.manager_id = T3.id
         left join auth_user T4 on T3.user_id = T4.id
         left join manager_tip T5 on T2.id = T5.match_id and T3.id = T5.manager_id
         left join stadium T7 on T2.stadium_id = T7.id
         left join stadium_group T8 on T7.group_id = T8.id
where T4.is_staff = 1
  and T3.is_open = 1
  and T3.id = ?
  and T3.name != ?
  and date(convert_tz(T2.schedule, 'UTC', ?)) >= ?
  and date(convert_tz(T2.schedule, 'UTC', ?)) <= ?
  and T2.status = ?
order by T2.schedule asc`

// ManagerMatches returns every settled match for one manager between start and end,
// ordered by kick-off time.
func (s *Store) ManagerMatches(ctx context.Context, managerID int64, start, end string) ([]models.MatchDetailRow, error) {
	var rows []models.MatchDetailRow
	err := s.db.WithContext(ctx).
		Raw(managerMatchesQuery,
			s.tz, s.tz,
			managerID,
			models.ReservedManagerName,
			s.tz, start,
			s.tz, end,
			string(models.MatchStatusRelease),
		).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query manager %d matches: %w", managerID, err)
	}
	return rows, nil
}

// --- Inspection queries ---
// These back the /api/debug routes and return rows exactly as the driver produced them.

// StadiumColumns describes the stadium table.
func (s *Store) StadiumColumns(ctx context.Context) ([]Row, error) {
	rows := []Row{}
	if err := s.db.WithContext(ctx).Raw("SHOW COLUMNS FROM stadium").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("describe stadium: %w", err)
	}
	return rows, nil
}

// StadiumSample returns the first five stadium rows.
func (s *Store) StadiumSample(ctx context.Context) ([]Row, error) {
	rows := []Row{}
	if err := s.db.WithContext(ctx).Model(&models.Stadium{}).Limit(5).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("sample stadium: %w", err)
	}
	return rows, nil
}

// MatchStadiums joins released matches to their stadium.
func (s *Store) MatchStadiums(ctx context.Context) ([]Row, error) {
	rows := []Row{}
	err := s.db.WithContext(ctx).
		Model(&models.Match{}).
		Select("`match`.id AS match_id, `match`.stadium_id, stadium.title AS stadium_title, stadium.name AS stadium_name").
		Joins("LEFT JOIN stadium ON `match`.stadium_id = stadium.id").
		Where("`match`.status = ?", string(models.MatchStatusRelease)).
		Limit(10).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("join match stadium: %w", err)
	}
	return rows, nil
}

// MatchTypes joins released matches to their match_type category.
func (s *Store) MatchTypes(ctx context.Context) ([]Row, error) {
	rows := []Row{}
	err := s.db.WithContext(ctx).
		Model(&models.Match{}).
		Select("`match`.id AS match_id, `match`.type, `match`.match_type_id, match_type.name AS match_type_name").
		Joins("LEFT JOIN match_type ON `match`.match_type_id = match_type.id").
		Where("`match`.status = ?", string(models.MatchStatusRelease)).
		Limit(10).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("join match type: %w", err)
	}
	return rows, nil
}

// MatchByID returns the raw match row, or nil when no match has that id.
func (s *Store) MatchByID(ctx context.Context, id int64) (Row, error) {
	rows := []Row{}
	err := s.db.WithContext(ctx).
		Model(&models.Match{}).
		Where("id = ?", id).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load match %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// MatchesByDate lists matches whose local kick-off date equals date ("YYYY-MM-DD").
func (s *Store) MatchesByDate(ctx context.Context, date string) ([]Row, error) {
	rows := []Row{}
	err := s.db.WithContext(ctx).
		Model(&models.Match{}).
		Select("id, match_title, schedule, stadium_id, type").
		Where("date(convert_tz(schedule, 'UTC', ?)) = ?", s.tz, date).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list matches on %s: %w", date, err)
	}
	return rows, nil
}
