package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vidaleve/missioncal/models"
)

// GormMissionStore reads mission rows from MySQL via gorm.
type GormMissionStore struct {
	db *gorm.DB
}

// NewGormMissionStore creates a store over the given connection.
func NewGormMissionStore(db *gorm.DB) *GormMissionStore {
	return &GormMissionStore{db: db}
}

// ResolveProfile maps an external auth user id to the internal profile id.
func (s *GormMissionStore) ResolveProfile(ctx context.Context, authUserID uint) (uint, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("auth_user_id = ?", authUserID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrProfileNotFound
		}
		return 0, err
	}
	return profile.ID, nil
}

// DailyScoresInRange returns score rows for [from, to] inclusive, ascending.
// Dates compare as strings against the DATE column to avoid timezone drift.
func (s *GormMissionStore) DailyScoresInRange(ctx context.Context, profileID uint, from, to time.Time) ([]models.DailyScore, error) {
	var rows []models.DailyScore
	err := s.db.WithContext(ctx).
		Where("profile_id = ? AND date >= ? AND date <= ?",
			profileID, from.Format(models.DateLayout), to.Format(models.DateLayout)).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DailyScoreForDate returns the score row for the exact date or ErrNotFound.
func (s *GormMissionStore) DailyScoreForDate(ctx context.Context, profileID uint, date time.Time) (*models.DailyScore, error) {
	var row models.DailyScore
	err := s.db.WithContext(ctx).
		Where("profile_id = ? AND date = ?", profileID, date.Format(models.DateLayout)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// MissionFlagsForDate returns the flags row for the exact date or ErrNotFound.
func (s *GormMissionStore) MissionFlagsForDate(ctx context.Context, profileID uint, date time.Time) (*models.MissionDay, error) {
	var row models.MissionDay
	err := s.db.WithContext(ctx).
		Where("profile_id = ? AND date = ?", profileID, date.Format(models.DateLayout)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}
