package store

import (
	"context"
	"errors"
	"time"

	"github.com/vidaleve/missioncal/models"
)

var (
	// ErrProfileNotFound means the auth user has no profile row. This is a
	// user-resolution failure, never folded into row absence.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrNotFound means the requested row does not exist. Callers treat it
	// as a business state, not a fault.
	ErrNotFound = errors.New("record not found")
)

// MissionStore is the read surface over the mission tables. All lookups are
// scoped by profile id; implementations must never drop that filter.
type MissionStore interface {
	// ResolveProfile maps an external auth user id to the internal profile id.
	ResolveProfile(ctx context.Context, authUserID uint) (uint, error)
	// DailyScoresInRange returns score rows for [from, to] inclusive, ordered
	// by date ascending.
	DailyScoresInRange(ctx context.Context, profileID uint, from, to time.Time) ([]models.DailyScore, error)
	// DailyScoreForDate returns the score row for the exact date or ErrNotFound.
	DailyScoreForDate(ctx context.Context, profileID uint, date time.Time) (*models.DailyScore, error)
	// MissionFlagsForDate returns the flags row for the exact date or ErrNotFound.
	MissionFlagsForDate(ctx context.Context, profileID uint, date time.Time) (*models.MissionDay, error)
}
