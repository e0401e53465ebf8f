package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidaleve/missioncal/models"
	"github.com/vidaleve/missioncal/store"
	"github.com/vidaleve/missioncal/utils"
)

// SummaryController provides per-month aggregate statistics for the
// progress header above the calendar.
type SummaryController struct {
	store store.MissionStore
}

// NewSummaryController creates a new SummaryController instance.
func NewSummaryController(st store.MissionStore) *SummaryController {
	return &SummaryController{store: st}
}

// MonthSummary returns active/completed day counts, total points and
// per-tier day counts for the requested month.
func (s *SummaryController) MonthSummary(ctx *gin.Context) {
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

	profileID, err := s.store.ResolveProfile(ctx.Request.Context(), userID)
	if err != nil {
		respondProfileError(ctx, err)
		return
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	rows, err := s.store.DailyScoresInRange(ctx.Request.Context(), profileID, first, last)
	if err != nil {
		utils.Sugar.Errorf("month summary fetch failed profile=%d month=%s: %v", profileID, first.Format("2006-01"), err)
		utils.Error(ctx, http.StatusInternalServerError, 50042, "could not load summary")
		return
	}

	var completed int
	var totalPoints int
	tierCounts := map[models.CategoryTier]int{}
	for i := range rows {
		rec := models.AggregateScore(rows[i].Date, &rows[i])
		if rec.Completed {
			completed++
		}
		totalPoints += rec.TotalPoints
		tierCounts[rec.Tier]++
	}

	utils.Success(ctx, gin.H{
		"month":          first.Format("2006-01"),
		"active_days":    len(rows),
		"completed_days": completed,
		"total_points":   totalPoints,
		"tier_counts":    tierCounts,
	})
}
