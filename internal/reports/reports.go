// Package reports turns raw reporting rows into the JSON shapes the dashboard consumes.
//
// Two rules apply everywhere:
//   - money is always a number in the response, never null; absent or zero sums become 0
//   - dates and times are pre-formatted strings so the browser never has to guess a zone
//
// Match detail rows additionally get a synthesized title when the match has none.
package reports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/matchops/settlement-report/internal/models"
)

// SettlementSummary is one manager's totals as sent to the client.
type SettlementSummary struct {
	ManagerID   int64   `json:"manager_id"`
	Name        string  `json:"name"`
	TotalAmount float64 `json:"total_amount"` // Sum of settlements; 0 if none
	TotalTip    float64 `json:"total_tip"`    // Sum of tips; 0 if none
}

// MatchDetail is one settled match as sent to the client.
//
// StadiumName carries the full display title, not the raw pitch name;
// the dashboard renders that column as the match label.
type MatchDetail struct {
	MatchID          int64   `json:"match_id"`
	MatchDate        *string `json:"match_date"` // "YYYY-MM-DD" in the local zone
	MatchTime        *string `json:"match_time"` // "HH:MM:SS" in the local zone
	SettlementAmount float64 `json:"settlement_amount"`
	TipAmount        float64 `json:"tip_amount"`
	MatchTitle       string  `json:"match_title"`
	StadiumName      string  `json:"stadium_name"`
	StadiumGroupName *string `json:"stadium_group_name"`
	MaxPlayerCnt     *int64  `json:"max_player_cnt"`
	MatchType        *string `json:"match_type"`
}

// Amount converts a nullable money column into a JSON-friendly number.
// NULL and zero both become 0.
func Amount(d decimal.NullDecimal) float64 {
	if !d.Valid || d.Decimal.IsZero() {
		return 0
	}
	return d.Decimal.InexactFloat64()
}

// ShapeSummaries converts summary rows in order. The result is never nil so the
// handler always encodes a JSON array.
func ShapeSummaries(rows []models.SettlementSummaryRow) []SettlementSummary {
	out := make([]SettlementSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, SettlementSummary{
			ManagerID:   row.ManagerID,
			Name:        row.Name,
			TotalAmount: Amount(row.TotalAmount),
			TotalTip:    Amount(row.TotalTip),
		})
	}
	return out
}

// ShapeMatchDetails converts match detail rows in order.
func ShapeMatchDetails(rows []models.MatchDetailRow) []MatchDetail {
	out := make([]MatchDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, ShapeMatchDetail(row))
	}
	return out
}

// ShapeMatchDetail applies, in order: amount coercion, date and time formatting,
// title synthesis when the match has no title, and the stadium_name override.
func ShapeMatchDetail(row models.MatchDetailRow) MatchDetail {
	detail := MatchDetail{
		MatchID:          row.MatchID,
		SettlementAmount: Amount(row.SettlementAmount),
		TipAmount:        Amount(row.TipAmount),
		StadiumGroupName: row.StadiumGroupName,
		MaxPlayerCnt:     row.MaxPlayerCnt,
		MatchType:        row.MatchType,
	}

	if row.MatchDate != nil {
		s := row.MatchDate.Format("2006-01-02")
		detail.MatchDate = &s
	}
	if row.MatchTime != nil {
		s := FormatClock(*row.MatchTime)
		detail.MatchTime = &s
	}

	if row.MatchTitle != nil && *row.MatchTitle != "" {
		detail.MatchTitle = *row.MatchTitle
	} else {
		detail.MatchTitle = SynthesizeTitle(row.StadiumGroupName, row.StadiumName, row.MaxPlayerCnt, row.MatchType)
	}
	detail.StadiumName = detail.MatchTitle

	return detail
}

// SynthesizeTitle rebuilds a match title from its venue, format and type,
// e.g. "서울 풋살파크 A구장 11vs11 리그".
//
// The venue fragment is always "<group> <stadium>" with missing sides left empty.
// The "NvsN" fragment is omitted when the player count is missing or zero.
func SynthesizeTitle(groupName, stadiumName *string, maxPlayers *int64, matchType *string) string {
	parts := []string{deref(groupName) + " " + deref(stadiumName)}

	if maxPlayers != nil && *maxPlayers != 0 {
		half := *maxPlayers / 2
		parts = append(parts, fmt.Sprintf("%dvs%d", half, half))
	}

	parts = append(parts, models.MatchType(deref(matchType)).Label())

	return strings.Join(parts, " ")
}

// FormatClock normalises a MySQL TIME value to zero-padded "HH:MM:SS".
// Fractional seconds are dropped. Values that do not look like a clock are returned as-is.
func FormatClock(raw string) string {
	clock, _, _ := strings.Cut(strings.TrimSpace(raw), ".")
	fields := strings.Split(clock, ":")
	if len(fields) != 3 {
		return raw
	}

	nums := make([]int, 3)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return raw
		}
		nums[i] = n
	}
	return fmt.Sprintf("%02d:%02d:%02d", nums[0], nums[1], nums[2])
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
