package models

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DayRecord is the derived per-date summary driving calendar decoration.
// It is recomputed on every fetch and never persisted.
type DayRecord struct {
	Date        string       `json:"date"`
	Completed   bool         `json:"completed"`
	TotalPoints int          `json:"total_points"`
	Tier        CategoryTier `json:"category"`
}

// DayDetail is the merged per-date view for the detail panel. Either source
// may be absent; absent fields keep their zero/false/unrated defaults.
// FlagPoints is the flags-side point total, shown separately from the
// scored total in the detail panel.
type DayDetail struct {
	Date        string       `json:"date"`
	TotalPoints int          `json:"total_points"`
	Tier        CategoryTier `json:"category"`
	Missions    [5]bool      `json:"missions"`
	FlagPoints  int          `json:"flag_points"`
}

// AggregateScore folds one raw score row into a DayRecord. Absence of data
// is the "no activity" state, not a failure: a nil row aggregates to an
// unrated, uncompleted record for the date.
func AggregateScore(date time.Time, score *DailyScore) DayRecord {
	rec := DayRecord{
		Date: date.Format(DateLayout),
		Tier: TierUnrated,
	}
	if score == nil {
		return rec
	}
	rec.TotalPoints = score.TotalPoints
	rec.Completed = score.TotalPoints > 0
	rec.Tier = NormalizeCategory(score.Category)
	return rec
}

// BuildMonthIndex aggregates score rows into a date-keyed index. Dates with
// no row are simply absent; the calendar renders them undecorated.
func BuildMonthIndex(rows []DailyScore) map[string]DayRecord {
	index := make(map[string]DayRecord, len(rows))
	for i := range rows {
		row := rows[i]
		rec := AggregateScore(row.Date, &row)
		index[rec.Date] = rec
	}
	return index
}

// MergeDayDetail joins the mission flags row and the score row for one date.
// Returns ok=false only when both sources are absent; a single present source
// still yields a partial detail, since scoring runs async from flag writes.
func MergeDayDetail(date time.Time, flags *MissionDay, score *DailyScore) (DayDetail, bool) {
	if flags == nil && score == nil {
		return DayDetail{}, false
	}

	detail := DayDetail{
		Date: date.Format(DateLayout),
		Tier: TierUnrated,
	}
	if score != nil {
		detail.TotalPoints = score.TotalPoints
		detail.Tier = NormalizeCategory(score.Category)
	}
	if flags != nil {
		detail.Missions = flags.Flags()
		detail.FlagPoints = flags.TotalPoints
	}
	return detail, true
}
