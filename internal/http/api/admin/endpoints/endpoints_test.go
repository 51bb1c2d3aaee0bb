package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/http/api"
	"github.com/MahmoudAkram21/um-qura/internal/http/middleware"
	"github.com/MahmoudAkram21/um-qura/internal/mqtt"
	"github.com/MahmoudAkram21/um-qura/internal/redis"
)

const testSecret = "test-secret"

// recordingNotifier captures change events for assertions.
type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) NotifyChanged(resource, action string) {
	n.events = append(n.events, resource+":"+action)
}

var _ mqtt.Notifier = (*recordingNotifier)(nil)

type fixture struct {
	router   *gin.Engine
	store    *db.MemStore
	cache    redis.Cache
	notifier *recordingNotifier
	token    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := db.NewMemStore()
	cache := redis.NewMemory()
	notifier := &recordingNotifier{}

	hash, err := middleware.HashPassword("s3cret")
	require.NoError(t, err)
	adminID, err := store.CreateAdmin("admin@example.com", hash, nil)
	require.NoError(t, err)
	token, err := middleware.GenerateJWT(adminID, testSecret)
	require.NoError(t, err)

	router := gin.New()
	api.MountGroup(router, api.GroupConfig{
		Prefix: "/api/v1",
	}, AuthPublicModule(testSecret, store))
	api.MountGroup(router, api.GroupConfig{
		Prefix:    "/api/v1/admin",
		Auth:      true,
		SecretKey: testSecret,
		Store:     store,
	},
		SeasonModule(store, cache, notifier),
		StarModule(store, cache, notifier),
		OccasionModule(store, cache, notifier),
		PrayerModule(store, notifier),
		AuthSessionModule(testSecret, store),
	)

	return &fixture{router: router, store: store, cache: cache, notifier: notifier, token: token}
}

// request performs an authenticated request and decodes the envelope.
func (f *fixture) request(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, api.Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var env api.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func dataBytes(t *testing.T, env api.Response) []byte {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	return raw
}

func TestLoginSuccessAndFailure(t *testing.T) {
	f := newFixture(t)
	f.token = ""

	rec, env := f.request(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "admin@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Status)

	var result struct {
		Token string `json:"token"`
		Admin struct {
			Email string `json:"email"`
		} `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(dataBytes(t, env), &result))
	require.NotEmpty(t, result.Token)
	require.Equal(t, "admin@example.com", result.Admin.Email)

	rec, env = f.request(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "admin@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, env.Status)
	require.Equal(t, middleware.ErrInvalidCredentials.Error(), env.Message)
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	f := newFixture(t)
	f.token = ""

	rec, env := f.request(t, http.MethodGet, "/api/v1/admin/seasons", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, env.Status)
}

func TestAdminRoutesRejectBadToken(t *testing.T) {
	f := newFixture(t)
	f.token = "not-a-jwt"

	rec, _ := f.request(t, http.MethodGet, "/api/v1/admin/seasons", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentProfile(t *testing.T) {
	f := newFixture(t)

	rec, env := f.request(t, http.MethodGet, "/api/v1/admin/auth/current_profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		ID    int    `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(dataBytes(t, env), &profile))
	require.Equal(t, "admin@example.com", profile.Email)
}

func TestSeasonCRUD(t *testing.T) {
	f := newFixture(t)

	rec, env := f.request(t, http.MethodPost, "/api/v1/admin/seasons", gin.H{
		"name": "الشتاء", "colorHex": "#3A6EA5", "iconName": "snow",
		"duration": "89 يوم", "sortOrder": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Status)
	require.Equal(t, "ok", env.Message)

	// seasons answer camelCase
	raw := dataBytes(t, env)
	require.Contains(t, string(raw), `"colorHex"`)
	require.NotContains(t, string(raw), `"color_hex"`)

	var created struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))

	rec, env = f.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/seasons/%d", created.ID), gin.H{
		"name": "الربيع",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated struct {
		Name     string `json:"name"`
		ColorHex string `json:"colorHex"`
	}
	require.NoError(t, json.Unmarshal(dataBytes(t, env), &updated))
	require.Equal(t, "الربيع", updated.Name)
	// untouched fields survive a partial update
	require.Equal(t, "#3A6EA5", updated.ColorHex)

	rec, _ = f.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/seasons/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = f.request(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/seasons/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "season not found", env.Message)
}

func TestSeasonCreateValidation(t *testing.T) {
	f := newFixture(t)

	rec, env := f.request(t, http.MethodPost, "/api/v1/admin/seasons", gin.H{
		"colorHex": "#FFFFFF",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Status)
}

func TestStarResponseCasing(t *testing.T) {
	f := newFixture(t)
	season, err := f.store.CreateSeason("الصيف", "#F4A300", "sun", "93 يوم", 2)
	require.NoError(t, err)

	rec, env := f.request(t, http.MethodPost, "/api/v1/admin/stars", gin.H{
		"seasonId": season.ID, "name": "الثريا",
		"startDate": "2025-06-07", "endDate": "2025-06-19",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// snake_case record with the lone camelCase seasonId
	raw := string(dataBytes(t, env))
	require.Contains(t, raw, `"seasonId"`)
	require.Contains(t, raw, `"start_date"`)
	require.Contains(t, raw, `"agricultural_info"`)
	require.NotContains(t, raw, `"startDate"`)

	var star struct {
		AgriculturalInfo []string `json:"agricultural_info"`
		Tips             []string `json:"tips"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &star))
	require.NotNil(t, star.AgriculturalInfo)
	require.NotNil(t, star.Tips)
}

func TestStarCreateRejectsInvertedDates(t *testing.T) {
	f := newFixture(t)
	season, err := f.store.CreateSeason("الصيف", "#F4A300", "sun", "93 يوم", 1)
	require.NoError(t, err)

	rec, env := f.request(t, http.MethodPost, "/api/v1/admin/stars", gin.H{
		"seasonId": season.ID, "name": "x",
		"startDate": "2025-06-19", "endDate": "2025-06-07",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "startDate must not be after endDate", env.Message)
}

func TestStarUpdateRejectsOneSidedDateInversion(t *testing.T) {
	f := newFixture(t)
	season, err := f.store.CreateSeason("الصيف", "#F4A300", "sun", "93 يوم", 1)
	require.NoError(t, err)
	star, err := f.store.CreateStar(db.NewStar{
		SeasonID: season.ID, Name: "الثريا",
		StartDate: "2025-06-07", EndDate: "2025-06-19",
	})
	require.NoError(t, err)

	// moving only startDate past the stored endDate
	rec, env := f.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/stars/%d", star.ID), gin.H{
		"startDate": "2025-07-01",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "startDate must not be after endDate", env.Message)

	// moving only endDate before the stored startDate
	rec, env = f.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/stars/%d", star.ID), gin.H{
		"endDate": "2025-06-01",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "startDate must not be after endDate", env.Message)

	// the stored range is untouched
	stored, err := f.store.GetStarByID(star.ID)
	require.NoError(t, err)
	require.Equal(t, "2025-06-07", stored.StartDate)
	require.Equal(t, "2025-06-19", stored.EndDate)

	// a one-sided change that keeps the range valid still works
	rec, _ = f.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/stars/%d", star.ID), gin.H{
		"startDate": "2025-06-10",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	stored, err = f.store.GetStarByID(star.ID)
	require.NoError(t, err)
	require.Equal(t, "2025-06-10", stored.StartDate)
}

func TestStarCreateUnknownSeason(t *testing.T) {
	f := newFixture(t)

	rec, env := f.request(t, http.MethodPost, "/api/v1/admin/stars", gin.H{
		"seasonId": 42, "name": "x",
		"startDate": "2025-06-07", "endDate": "2025-06-19",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "season not found", env.Message)
}

func TestStarListPaginationAndFilter(t *testing.T) {
	f := newFixture(t)
	summer, err := f.store.CreateSeason("الصيف", "#F4A300", "sun", "93 يوم", 1)
	require.NoError(t, err)
	winter, err := f.store.CreateSeason("الشتاء", "#3A6EA5", "snow", "89 يوم", 2)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := f.store.CreateStar(db.NewStar{
			SeasonID: summer.ID, Name: fmt.Sprintf("نجم %d", i),
			StartDate: fmt.Sprintf("2025-06-%02d", i+1), EndDate: fmt.Sprintf("2025-06-%02d", i+13),
		})
		require.NoError(t, err)
	}
	_, err = f.store.CreateStar(db.NewStar{
		SeasonID: winter.ID, Name: "سعد الذابح",
		StartDate: "2025-12-21", EndDate: "2026-01-02",
	})
	require.NoError(t, err)

	var page struct {
		Stars      []json.RawMessage `json:"stars"`
		Total      int               `json:"total"`
		Page       int               `json:"page"`
		Limit      int               `json:"limit"`
		TotalPages int               `json:"totalPages"`
	}

	_, env := f.request(t, http.MethodGet, "/api/v1/admin/stars?page=2&limit=2", nil)
	require.NoError(t, json.Unmarshal(dataBytes(t, env), &page))
	require.Equal(t, 6, page.Total)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 2, page.Limit)
	require.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Stars, 2)

	_, env = f.request(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/stars?seasonId=%d", winter.ID), nil)
	require.NoError(t, json.Unmarshal(dataBytes(t, env), &page))
	require.Equal(t, 1, page.Total)
	require.Equal(t, 1, page.TotalPages)

	rec, _ := f.request(t, http.MethodGet, "/api/v1/admin/stars?seasonId=abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStarListClampsPagination(t *testing.T) {
	f := newFixture(t)

	var page struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
	}
	_, env := f.request(t, http.MethodGet, "/api/v1/admin/stars?page=0&limit=9999", nil)
	require.NoError(t, json.Unmarshal(dataBytes(t, env), &page))
	require.Equal(t, 1, page.Page)
	require.Equal(t, 100, page.Limit)
}

func TestOccasionCRUDAndValidation(t *testing.T) {
	f := newFixture(t)

	rec, env := f.request(t, http.MethodPost, "/api/v1/admin/occasions", gin.H{
		"hijriMonth": 9, "hijriDay": 1,
		"title": "بداية رمضان", "prayerTitle": "دعاء الصيام",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		ID           int    `json:"id"`
		HijriDisplay string `json:"hijri_display"`
	}
	require.NoError(t, json.Unmarshal(dataBytes(t, env), &created))
	require.Equal(t, "1 رمضان", created.HijriDisplay)

	// hijriMonth 13 fails binding
	rec, _ = f.request(t, http.MethodPost, "/api/v1/admin/occasions", gin.H{
		"hijriMonth": 13, "hijriDay": 1, "title": "x", "prayerTitle": "y",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = f.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/occasions/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/occasions/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPrayerCRUD(t *testing.T) {
	f := newFixture(t)

	rec, env := f.request(t, http.MethodPost, "/api/v1/admin/prayers", gin.H{
		"text": "اللهم اسقنا الغيث",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		ID   int    `json:"id"`
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(dataBytes(t, env), &created))
	require.Equal(t, "اللهم اسقنا الغيث", created.Text)

	_, env = f.request(t, http.MethodGet, "/api/v1/admin/prayers", nil)
	var page struct {
		Prayers []json.RawMessage `json:"prayers"`
		Total   int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(dataBytes(t, env), &page))
	require.Equal(t, 1, page.Total)
	require.Len(t, page.Prayers, 1)
}

func TestStoreErrorHidesDriverDetail(t *testing.T) {
	apiErr := storeError(errors.New(`pq: new row for relation "stars" violates check constraint "stars_date_range"`), "star not found")
	require.Equal(t, http.StatusInternalServerError, apiErr.Code)
	require.Equal(t, "internal error", apiErr.Message)

	apiErr = storeError(db.ErrNotFound, "star not found")
	require.Equal(t, http.StatusNotFound, apiErr.Code)
	require.Equal(t, "star not found", apiErr.Message)
}

func TestMutationInvalidatesCacheAndNotifies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.cache.Set(ctx, redis.KeyCalendar, `[]`, time.Minute)
	f.cache.Set(ctx, redis.KeyOccasions, `{}`, time.Minute)

	rec, _ := f.request(t, http.MethodPost, "/api/v1/admin/seasons", gin.H{
		"name": "الخريف", "colorHex": "#8B5A2B", "iconName": "leaf",
		"duration": "89 يوم", "sortOrder": 3,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := f.cache.Get(ctx, redis.KeyCalendar)
	require.False(t, ok, "season mutation must drop the calendar cache")
	require.Contains(t, f.notifier.events, "seasons:created")

	// occasion mutations drop the occasions cache instead
	rec, _ = f.request(t, http.MethodPost, "/api/v1/admin/occasions", gin.H{
		"hijriMonth": 1, "hijriDay": 10, "title": "x", "prayerTitle": "y",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	_, ok = f.cache.Get(ctx, redis.KeyOccasions)
	require.False(t, ok, "occasion mutation must drop the occasions cache")
	require.Contains(t, f.notifier.events, "occasions:created")
}
