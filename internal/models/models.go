// Package models defines the data structures that map to the booking platform's tables
// and to the rows our reporting queries return.
//
// Everything here is read-only from this service's point of view: the platform owns the
// schema and writes the data, we only aggregate and display it.
//
// The relationships the reports rely on:
//   - a Match is run by one Manager at one Stadium (which belongs to a StadiumGroup)
//   - a manager_settlement row records what the manager is owed for a match
//   - a manager_tip row records an extra payment for the same manager/match pair
//   - a Manager belongs to an auth_user account; only staff accounts are reported on
package models

import (
	"time"

	// decimal keeps DECIMAL money columns exact until the moment they are shaped for JSON.
	"github.com/shopspring/decimal"
)

// --- Enums ---

// MatchStatus is the publication state of a match.
type MatchStatus string

const (
	// MatchStatusRelease marks a match that is published; only these count toward settlements.
	MatchStatusRelease MatchStatus = "RELEASE"
)

// ReservedManagerName is the shared placeholder account used for team-run matches.
// It is never a real payee, so it is excluded from every report.
const ReservedManagerName = "매니저팀"

// MatchType is the code stored in match.type describing the match format.
type MatchType string

const (
	MatchTypeStandard MatchType = "match"   // Regular pickup match
	MatchTypeThreeWay MatchType = "3teams"  // Three teams rotating
	MatchTypeStarter  MatchType = "starter" // Beginner-level match
	MatchTypeCup      MatchType = "cup"     // Cup competition
	MatchTypeLeague   MatchType = "league"  // League fixture
	MatchTypeTShirt   MatchType = "tshirt"  // Match where players receive a branded shirt
)

// matchTypeLabels is the closed set of display labels shown to operators.
var matchTypeLabels = map[MatchType]string{
	MatchTypeStandard: "축구 매치",
	MatchTypeThreeWay: "3파전",
	MatchTypeStarter:  "스타터 매치",
	MatchTypeCup:      "컵",
	MatchTypeLeague:   "리그",
	MatchTypeTShirt:   "티셔츠",
}

// DefaultMatchTypeLabel is shown for codes that are missing or not in the table above.
const DefaultMatchTypeLabel = "매치"

// Label returns the display label for the match type, or DefaultMatchTypeLabel
// when the code is unknown.
func (t MatchType) Label() string {
	if label, ok := matchTypeLabels[t]; ok {
		return label
	}
	return DefaultMatchTypeLabel
}

// --- Table models ---
// Only the tables the debug endpoints query through GORM's builder are modelled here.
// The reporting queries use raw SQL because they aggregate across six joins.

// Match is one scheduled game.
type Match struct {
	ID           int64       `gorm:"primaryKey"`
	MatchTitle   *string     // Optional human title; many flows leave it NULL
	Schedule     time.Time   // Kick-off instant, stored in UTC
	StadiumID    *int64      // Foreign key: stadium.id
	Type         MatchType   `gorm:"column:type"`
	MatchTypeID  *int64      // Foreign key: match_type.id (newer categorisation)
	ManagerID    *int64      // Foreign key: manager.id
	Status       MatchStatus // e.g. RELEASE
	MaxPlayerCnt *int        // Total players across both sides, e.g. 22 for 11vs11
}

// TableName overrides GORM's pluralised default; the platform table is singular.
func (Match) TableName() string { return "match" }

// Stadium is a pitch inside a stadium group (venue).
type Stadium struct {
	ID      int64   `gorm:"primaryKey"`
	Name    string  // Pitch name, e.g. "A구장"
	Title   *string // Marketing title, rarely set
	GroupID *int64  // Foreign key: stadium_group.id
}

// TableName returns the platform's table name.
func (Stadium) TableName() string { return "stadium" }

// --- Report rows ---
// These are the typed shapes of the two reporting queries. Nullable columns are pointers
// so the shaping step can tell "absent" from "zero".

// SettlementSummaryRow is one manager's totals over a date range.
type SettlementSummaryRow struct {
	ManagerID   int64               `gorm:"column:manager_id"`
	Name        string              `gorm:"column:name"`
	TotalAmount decimal.NullDecimal `gorm:"column:total_amount"`
	TotalTip    decimal.NullDecimal `gorm:"column:total_tip"`
}

// MatchDetailRow is one settled match for a single manager.
type MatchDetailRow struct {
	MatchID          int64               `gorm:"column:match_id"`
	MatchDate        *time.Time          `gorm:"column:match_date"` // Local calendar date
	MatchTime        *string             `gorm:"column:match_time"` // Local wall-clock time as returned by TIME()
	SettlementAmount decimal.NullDecimal `gorm:"column:settlement_amount"`
	TipAmount        decimal.NullDecimal `gorm:"column:tip_amount"`
	MatchTitle       *string             `gorm:"column:match_title"`
	StadiumName      *string             `gorm:"column:stadium_name"`
	StadiumGroupName *string             `gorm:"column:stadium_group_name"`
	MaxPlayerCnt     *int64              `gorm:"column:max_player_cnt"`
	MatchType        *string             `gorm:"column:match_type"`
}
