package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidaleve/missioncal/middleware"
	"github.com/vidaleve/missioncal/models"
	"github.com/vidaleve/missioncal/store"
	"github.com/vidaleve/missioncal/utils"
)

// CalendarController serves the mission calendar month index, the per-day
// detail panel and the tier legend.
type CalendarController struct {
	store store.MissionStore
}

// NewCalendarController creates a new controller instance.
func NewCalendarController(st store.MissionStore) *CalendarController {
	return &CalendarController{store: st}
}

// MonthIndex returns one DayRecord per active date of the requested month.
// Month defaults to the current one when the query param is absent.
func (c *CalendarController) MonthIndex(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	month, err := parseMonth(ctx.Query("month"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid month, expected YYYY-MM")
		return
	}

	profileID, err := c.store.ResolveProfile(ctx.Request.Context(), userID)
	if err != nil {
		respondProfileError(ctx, err)
		return
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	rows, err := c.store.DailyScoresInRange(ctx.Request.Context(), profileID, first, last)
	if err != nil {
		utils.Sugar.Errorf("month index fetch failed profile=%d month=%s: %v", profileID, first.Format("2006-01"), err)
		utils.Error(ctx, http.StatusInternalServerError, 50040, "could not load month")
		return
	}

	index := models.BuildMonthIndex(rows)
	days := make([]models.DayRecord, 0, len(index))
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if rec, ok := index[d.Format(models.DateLayout)]; ok {
			days = append(days, rec)
		}
	}

	utils.Success(ctx, gin.H{
		"month": first.Format("2006-01"),
		"days":  days,
	})
}

// DayDetail returns the merged detail for one date, or 404 when neither the
// flags row nor the score row exists. A single present source still yields a
// partial detail; hiding the day would lose data written before scoring ran.
func (c *CalendarController) DayDetail(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	date, err := time.ParseInLocation(models.DateLayout, ctx.Param("date"), time.Local)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40011, "invalid date, expected YYYY-MM-DD")
		return
	}

	profileID, err := c.store.ResolveProfile(ctx.Request.Context(), userID)
	if err != nil {
		respondProfileError(ctx, err)
		return
	}

	flags, err := c.store.MissionFlagsForDate(ctx.Request.Context(), profileID, date)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		utils.Sugar.Errorf("mission flags fetch failed profile=%d date=%s: %v", profileID, date.Format(models.DateLayout), err)
		utils.Error(ctx, http.StatusInternalServerError, 50041, "could not load day")
		return
	}

	score, err := c.store.DailyScoreForDate(ctx.Request.Context(), profileID, date)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		utils.Sugar.Errorf("daily score fetch failed profile=%d date=%s: %v", profileID, date.Format(models.DateLayout), err)
		utils.Error(ctx, http.StatusInternalServerError, 50041, "could not load day")
		return
	}

	detail, found := models.MergeDayDetail(date, flags, score)
	if !found {
		utils.Error(ctx, http.StatusNotFound, 40440, "no mission for this date")
		return
	}

	utils.Success(ctx, detail)
}

// Legend returns the fixed tier presentation tuples for the calendar legend.
func (c *CalendarController) Legend(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"tiers": models.AllTierPresentations()})
}

// parseMonth parses a YYYY-MM query value, defaulting to the current month.
func parseMonth(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().In(time.Local), nil
	}
	return time.ParseInLocation("2006-01", raw, time.Local)
}

func respondProfileError(ctx *gin.Context, err error) {
	if errors.Is(err, store.ErrProfileNotFound) {
		utils.Error(ctx, http.StatusNotFound, 40420, "profile not found")
		return
	}
	utils.Sugar.Errorf("profile resolution failed: %v", err)
	utils.Error(ctx, http.StatusInternalServerError, 50020, "could not resolve profile")
}

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}
