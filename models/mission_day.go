package models

import "time"

// MissionDay stores the five per-mission completion flags for one profile
// and one calendar date, plus the point total computed from the flags.
// Rows are written by the mission service; this service only reads them.
type MissionDay struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProfileID    uint      `gorm:"index;index:idx_mission_day,unique;not null" json:"profile_id"`
	Date         time.Time `gorm:"index:idx_mission_day,unique;type:date;not null" json:"date"`
	Mission1Done bool      `gorm:"not null;default:false" json:"mission_1_completed"`
	Mission2Done bool      `gorm:"not null;default:false" json:"mission_2_completed"`
	Mission3Done bool      `gorm:"not null;default:false" json:"mission_3_completed"`
	Mission4Done bool      `gorm:"not null;default:false" json:"mission_4_completed"`
	Mission5Done bool      `gorm:"not null;default:false" json:"mission_5_completed"`
	TotalPoints  int       `gorm:"not null;default:0" json:"total_points"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the table shared with the mission writer service.
func (MissionDay) TableName() string {
	return "mission_days"
}

// Flags returns the five completion flags in mission order.
func (m *MissionDay) Flags() [5]bool {
	return [5]bool{m.Mission1Done, m.Mission2Done, m.Mission3Done, m.Mission4Done, m.Mission5Done}
}
