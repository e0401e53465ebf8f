package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaleve/missioncal/config"
	"github.com/vidaleve/missioncal/middleware"
	"github.com/vidaleve/missioncal/models"
	"github.com/vidaleve/missioncal/store"
	"github.com/vidaleve/missioncal/utils"
)

const testAuthUserID = uint(7)
const testProfileID = uint(42)

// fakeStore implements store.MissionStore in memory. Keys are
// "profileID/2006-01-02" date strings.
type fakeStore struct {
	profiles   map[uint]uint
	scores     map[string]models.DailyScore
	flags      map[string]models.MissionDay
	resolveErr error
	fetchErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: map[uint]uint{testAuthUserID: testProfileID},
		scores:   map[string]models.DailyScore{},
		flags:    map[string]models.MissionDay{},
	}
}

func (f *fakeStore) key(profileID uint, date time.Time) string {
	return strconv.FormatUint(uint64(profileID), 10) + "/" + date.Format(models.DateLayout)
}

func (f *fakeStore) ResolveProfile(_ context.Context, authUserID uint) (uint, error) {
	if f.resolveErr != nil {
		return 0, f.resolveErr
	}
	id, ok := f.profiles[authUserID]
	if !ok {
		return 0, store.ErrProfileNotFound
	}
	return id, nil
}

func (f *fakeStore) DailyScoresInRange(_ context.Context, profileID uint, from, to time.Time) ([]models.DailyScore, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var rows []models.DailyScore
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if row, ok := f.scores[f.key(profileID, d)]; ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (f *fakeStore) DailyScoreForDate(_ context.Context, profileID uint, date time.Time) (*models.DailyScore, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	row, ok := f.scores[f.key(profileID, date)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &row, nil
}

func (f *fakeStore) MissionFlagsForDate(_ context.Context, profileID uint, date time.Time) (*models.MissionDay, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	row, ok := f.flags[f.key(profileID, date)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &row, nil
}

func (f *fakeStore) addScore(profileID uint, date time.Time, points int, category string) {
	f.scores[f.key(profileID, date)] = models.DailyScore{ProfileID: profileID, Date: date, TotalPoints: points, Category: category}
}

func (f *fakeStore) addFlags(profileID uint, date time.Time, done [5]bool, points int) {
	f.flags[f.key(profileID, date)] = models.MissionDay{
		ProfileID:    profileID,
		Date:         date,
		Mission1Done: done[0],
		Mission2Done: done[1],
		Mission3Done: done[2],
		Mission4Done: done[3],
		Mission5Done: done[4],
		TotalPoints:  points,
	}
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	// Closed Redis port keeps token revocation in the local map during tests.
	os.Setenv("REDIS_PORT", "1")
	_ = utils.InitLogger(config.AppConfig{LogLevel: "fatal"})
	os.Exit(m.Run())
}

// testRouter wires the calendar routes behind a stub auth middleware that
// injects the given auth user id, skipping real JWT validation.
func testRouter(st store.MissionStore, authUserID uint) *gin.Engine {
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		if authUserID != 0 {
			ctx.Set(middleware.ContextUserIDKey, authUserID)
		}
		ctx.Next()
	})

	calendar := NewCalendarController(st)
	summary := NewSummaryController(st)
	r.GET("/api/v1/missions/calendar", calendar.MonthIndex)
	r.GET("/api/v1/missions/day/:date", calendar.DayDetail)
	r.GET("/api/v1/missions/legend", calendar.Legend)
	r.GET("/api/v1/missions/summary", summary.MonthSummary)
	return r
}

func doGet(t *testing.T, r *gin.Engine, url string) (*httptest.ResponseRecorder, utils.JSONResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)

	var body utils.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestMonthIndexReturnsOnlyActiveDays(t *testing.T) {
	st := newFakeStore()
	st.addScore(testProfileID, date(2026, time.March, 3), 10, "baixa")
	st.addScore(testProfileID, date(2026, time.March, 15), 25, "medio")
	st.addScore(testProfileID, date(2026, time.March, 28), 40, "excelente")
	// Another profile's row inside the same window must never leak.
	st.addScore(testProfileID+1, date(2026, time.March, 15), 99, "excelente")

	r := testRouter(st, testAuthUserID)
	w, body := doGet(t, r, "/api/v1/missions/calendar?month=2026-03")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, body.Code)

	var data struct {
		Month string             `json:"month"`
		Days  []models.DayRecord `json:"days"`
	}
	raw, _ := json.Marshal(body.Data)
	require.NoError(t, json.Unmarshal(raw, &data))

	assert.Equal(t, "2026-03", data.Month)
	require.Len(t, data.Days, 3)
	assert.Equal(t, "2026-03-03", data.Days[0].Date)
	assert.Equal(t, "2026-03-15", data.Days[1].Date)
	assert.Equal(t, "2026-03-28", data.Days[2].Date)
	assert.Equal(t, models.TierGood, data.Days[1].Tier)
	assert.True(t, data.Days[2].Completed)
}

func TestMonthIndexEmptyMonth(t *testing.T) {
	r := testRouter(newFakeStore(), testAuthUserID)
	w, body := doGet(t, r, "/api/v1/missions/calendar?month=2026-03")

	assert.Equal(t, http.StatusOK, w.Code, "an empty month is a valid state, not an error")
	assert.Equal(t, 0, body.Code)
}

func TestMonthIndexInvalidMonth(t *testing.T) {
	r := testRouter(newFakeStore(), testAuthUserID)
	w, body := doGet(t, r, "/api/v1/missions/calendar?month=March-2026")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40010, body.Code)
}

func TestMonthIndexProfileNotFound(t *testing.T) {
	st := newFakeStore()
	r := testRouter(st, uint(9999)) // authenticated but no profile row

	w, body := doGet(t, r, "/api/v1/missions/calendar?month=2026-03")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40420, body.Code, "user resolution failure is its own code")
}

func TestMonthIndexResolveFault(t *testing.T) {
	st := newFakeStore()
	st.resolveErr = errors.New("profiles table unreachable")

	r := testRouter(st, testAuthUserID)
	w, body := doGet(t, r, "/api/v1/missions/calendar?month=2026-03")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 50020, body.Code, "a resolve fault is not a missing profile")
}

func TestMonthIndexStoreFault(t *testing.T) {
	st := newFakeStore()
	st.fetchErr = errors.New("connection reset")

	r := testRouter(st, testAuthUserID)
	w, body := doGet(t, r, "/api/v1/missions/calendar?month=2026-03")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 50040, body.Code, "a fetch fault is never rendered as an empty month")
}

func TestMonthIndexEchoesToken(t *testing.T) {
	r := testRouter(newFakeStore(), testAuthUserID)
	_, body := doGet(t, r, "/api/v1/missions/calendar?month=2026-03&token=17")
	assert.Equal(t, "17", body.Token)
}

func TestDayDetailMergesBothSources(t *testing.T) {
	st := newFakeStore()
	day := date(2026, time.March, 10)
	st.addFlags(testProfileID, day, [5]bool{true, false, true, false, true}, 18)
	st.addScore(testProfileID, day, 22, "medio")

	r := testRouter(st, testAuthUserID)
	w, body := doGet(t, r, "/api/v1/missions/day/2026-03-10")

	assert.Equal(t, http.StatusOK, w.Code)

	var detail models.DayDetail
	raw, _ := json.Marshal(body.Data)
	require.NoError(t, json.Unmarshal(raw, &detail))

	assert.Equal(t, "2026-03-10", detail.Date)
	assert.Equal(t, 22, detail.TotalPoints)
	assert.Equal(t, 18, detail.FlagPoints)
	assert.Equal(t, models.TierGood, detail.Tier)
	assert.Equal(t, [5]bool{true, false, true, false, true}, detail.Missions)
}

func TestDayDetailFlagsOnlyIsNotNotFound(t *testing.T) {
	st := newFakeStore()
	day := date(2026, time.March, 10)
	st.addFlags(testProfileID, day, [5]bool{}, 0)

	r := testRouter(st, testAuthUserID)
	w, body := doGet(t, r, "/api/v1/missions/day/2026-03-10")

	assert.Equal(t, http.StatusOK, w.Code, "flags-only day still renders a partial detail")

	var detail models.DayDetail
	raw, _ := json.Marshal(body.Data)
	require.NoError(t, json.Unmarshal(raw, &detail))

	assert.Equal(t, models.TierUnrated, detail.Tier)
	assert.Equal(t, 0, detail.TotalPoints)
	assert.Equal(t, [5]bool{}, detail.Missions)
}

func TestDayDetailBothAbsent(t *testing.T) {
	r := testRouter(newFakeStore(), testAuthUserID)
	w, body := doGet(t, r, "/api/v1/missions/day/2026-03-10")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40440, body.Code)
}

func TestDayDetailInvalidDate(t *testing.T) {
	r := testRouter(newFakeStore(), testAuthUserID)
	w, body := doGet(t, r, "/api/v1/missions/day/10-03-2026")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40011, body.Code)
}

func TestDayDetailStoreFaultIsNotNotFound(t *testing.T) {
	st := newFakeStore()
	st.fetchErr = errors.New("timeout")

	r := testRouter(st, testAuthUserID)
	w, body := doGet(t, r, "/api/v1/missions/day/2026-03-10")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 50041, body.Code)
}

func TestDayDetailProfileNotFound(t *testing.T) {
	r := testRouter(newFakeStore(), uint(9999))
	w, body := doGet(t, r, "/api/v1/missions/day/2026-03-10")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40420, body.Code)
}

func TestUnauthenticatedRequest(t *testing.T) {
	r := testRouter(newFakeStore(), 0)
	w, body := doGet(t, r, "/api/v1/missions/calendar?month=2026-03")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 40110, body.Code)
}

func TestLegend(t *testing.T) {
	r := testRouter(newFakeStore(), 0) // legend needs no auth
	w, body := doGet(t, r, "/api/v1/missions/legend")

	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Tiers []models.TierPresentation `json:"tiers"`
	}
	raw, _ := json.Marshal(body.Data)
	require.NoError(t, json.Unmarshal(raw, &data))

	require.Len(t, data.Tiers, 4)
	assert.Equal(t, "green", data.Tiers[0].ColorToken)
	assert.Equal(t, "Unrated", data.Tiers[3].Label)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
