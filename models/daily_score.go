package models

import "time"

// DailyScore stores the scored point total and category label for one
// profile and one calendar date. Scoring runs asynchronously from the
// mission flags, so a date may have a score without flags or vice versa.
type DailyScore struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProfileID   uint      `gorm:"index;index:idx_daily_score,unique;not null" json:"profile_id"`
	Date        time.Time `gorm:"index:idx_daily_score,unique;type:date;not null" json:"date"`
	TotalPoints int       `gorm:"not null;default:0" json:"total_points"`
	Category    string    `gorm:"size:32" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName keeps the table shared with the scoring service.
func (DailyScore) TableName() string {
	return "daily_scores"
}
