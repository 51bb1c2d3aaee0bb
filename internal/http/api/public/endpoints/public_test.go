package endpoints

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/hijri"
	"github.com/MahmoudAkram21/um-qura/internal/http/api"
	"github.com/MahmoudAkram21/um-qura/internal/model"
	"github.com/MahmoudAkram21/um-qura/internal/redis"
)

// 2025-03-01 falls on 1 Ramadan 1446 in the tabular calendar.
var ramadanFirst = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newPublicRouter(t *testing.T, store db.Store, cache redis.Cache, now func() time.Time) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api.MountGroup(router, api.GroupConfig{Prefix: "/api/v1"},
		CalendarModule(store, cache),
		OccasionsModule(store, cache, now),
	)
	return router
}

func get(t *testing.T, router *gin.Engine, path string) (int, json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env struct {
		Status bool            `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env.Data
}

func TestCalendarNestsStarsUnderSeasons(t *testing.T) {
	store := db.NewMemStore()
	summer, err := store.CreateSeason("الصيف", "#F4A300", "sun", "93 يوم", 1)
	require.NoError(t, err)
	winter, err := store.CreateSeason("الشتاء", "#3A6EA5", "snow", "89 يوم", 2)
	require.NoError(t, err)

	_, err = store.CreateStar(db.NewStar{
		SeasonID: summer.ID, Name: "الثريا",
		StartDate: "2025-06-07", EndDate: "2025-06-19",
	})
	require.NoError(t, err)
	_, err = store.CreateStar(db.NewStar{
		SeasonID: winter.ID, Name: "سعد الذابح",
		StartDate: "2025-12-21", EndDate: "2026-01-02",
	})
	require.NoError(t, err)

	router := newPublicRouter(t, store, redis.NewMemory(), nil)
	code, data := get(t, router, "/api/v1/stars/calendar")
	require.Equal(t, http.StatusOK, code)

	// calendar wrapper is snake_case; nested stars keep the camelCase seasonId
	require.Contains(t, string(data), `"season_name"`)
	require.Contains(t, string(data), `"color_hex"`)
	require.Contains(t, string(data), `"seasonId"`)

	var seasons []struct {
		ID         int    `json:"id"`
		SeasonName string `json:"season_name"`
		Stars      []struct {
			SeasonID   int     `json:"seasonId"`
			SeasonName *string `json:"season_name"`
		} `json:"stars"`
	}
	require.NoError(t, json.Unmarshal(data, &seasons))
	require.Len(t, seasons, 2)
	require.Equal(t, "الصيف", seasons[0].SeasonName)
	require.Len(t, seasons[0].Stars, 1)
	require.Equal(t, summer.ID, seasons[0].Stars[0].SeasonID)
	require.Len(t, seasons[1].Stars, 1)
	require.Equal(t, winter.ID, seasons[1].Stars[0].SeasonID)
}

func TestCalendarServedFromCache(t *testing.T) {
	store := db.NewMemStore()
	cache := redis.NewMemory()
	_, err := store.CreateSeason("الصيف", "#F4A300", "sun", "93 يوم", 1)
	require.NoError(t, err)

	router := newPublicRouter(t, store, cache, nil)
	_, first := get(t, router, "/api/v1/stars/calendar")

	// mutate behind the cache's back; the stale payload keeps being served
	_, err = store.CreateSeason("الشتاء", "#3A6EA5", "snow", "89 يوم", 2)
	require.NoError(t, err)
	_, second := get(t, router, "/api/v1/stars/calendar")
	require.JSONEq(t, string(first), string(second))

	// dropping the key reveals the new season
	cache.Delete(context.Background(), redis.KeyCalendar)
	_, third := get(t, router, "/api/v1/stars/calendar")
	var seasons []json.RawMessage
	require.NoError(t, json.Unmarshal(third, &seasons))
	require.Len(t, seasons, 2)
}

func seedOccasions(t *testing.T, store db.Store) {
	t.Helper()
	for _, n := range []db.NewOccasion{
		{HijriMonth: 9, HijriDay: 1, Title: "بداية رمضان", PrayerTitle: "دعاء الصيام"},
		{HijriMonth: 9, HijriDay: 27, Title: "ليلة القدر", PrayerTitle: "دعاء ليلة القدر"},
		{HijriMonth: 10, HijriDay: 1, Title: "عيد الفطر", PrayerTitle: "تكبيرات العيد"},
		{HijriMonth: 12, HijriDay: 9, Title: "يوم عرفة", PrayerTitle: "دعاء عرفة"},
	} {
		_, err := store.CreateOccasion(n)
		require.NoError(t, err)
	}
}

func TestOccasionsSectionsForPinnedDate(t *testing.T) {
	store := db.NewMemStore()
	seedOccasions(t, store)

	router := newPublicRouter(t, store, redis.NewMemory(), func() time.Time { return ramadanFirst })
	code, data := get(t, router, "/api/v1/occasions")
	require.Equal(t, http.StatusOK, code)

	var sections struct {
		Today        []struct{ Title string } `json:"today"`
		CurrentMonth []struct{ Title string } `json:"currentMonth"`
		NextMonth    []struct{ Title string } `json:"nextMonth"`
		Year         []struct {
			HijriMonth int `json:"hijri_month"`
			HijriDay   int `json:"hijri_day"`
		} `json:"year"`
	}
	require.NoError(t, json.Unmarshal(data, &sections))

	require.Len(t, sections.Today, 1)
	require.Equal(t, "بداية رمضان", sections.Today[0].Title)

	// today's occasion also appears in its month bucket
	require.Len(t, sections.CurrentMonth, 2)
	require.Len(t, sections.NextMonth, 1)
	require.Equal(t, "عيد الفطر", sections.NextMonth[0].Title)

	require.Len(t, sections.Year, 4)
	for i := 1; i < len(sections.Year); i++ {
		prev, cur := sections.Year[i-1], sections.Year[i]
		require.True(t, prev.HijriMonth < cur.HijriMonth ||
			(prev.HijriMonth == cur.HijriMonth && prev.HijriDay <= cur.HijriDay))
	}
}

func TestOccasionsSectionsEmptyStore(t *testing.T) {
	router := newPublicRouter(t, db.NewMemStore(), redis.NewMemory(), func() time.Time { return ramadanFirst })
	code, data := get(t, router, "/api/v1/occasions")
	require.Equal(t, http.StatusOK, code)

	// empty buckets serialize as [], never null
	require.JSONEq(t, `{"today":[],"currentMonth":[],"nextMonth":[],"year":[]}`, string(data))
}

func TestSectionOccasionsYearBoundary(t *testing.T) {
	// Dhu al-Hijjah wraps to Muharram
	occasions := []model.Occasion{
		{ID: 1, HijriMonth: 1, HijriDay: 10, Title: "عاشوراء", PrayerTitle: "دعاء"},
		{ID: 2, HijriMonth: 12, HijriDay: 9, Title: "يوم عرفة", PrayerTitle: "دعاء"},
	}
	out := sectionOccasions(occasions, hijri.Date{Year: 1446, Month: 12, Day: 9})

	require.Len(t, out.Today, 1)
	require.Equal(t, "يوم عرفة", out.Today[0].Title)
	require.Len(t, out.NextMonth, 1)
	require.Equal(t, "عاشوراء", out.NextMonth[0].Title)
}
