package packets

import (
	"time"

	"github.com/MahmoudAkram21/um-qura/internal/hijri"
	"github.com/MahmoudAkram21/um-qura/internal/model"
)

type SeasonResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ColorHex  string `json:"colorHex"`
	IconName  string `json:"iconName"`
	Duration  string `json:"duration"`
	SortOrder int    `json:"sortOrder"`
}

func NewSeasonResponse(s model.Season) SeasonResponse {
	return SeasonResponse{
		ID:        s.ID,
		Name:      s.Name,
		ColorHex:  s.ColorHex,
		IconName:  s.IconName,
		Duration:  s.Duration,
		SortOrder: s.SortOrder,
	}
}

// StarResponse keeps snake_case except seasonId, which the original API
// shipped camelCase inside an otherwise snake_case record.
type StarResponse struct {
	ID               int      `json:"id"`
	SeasonID         int      `json:"seasonId"`
	Name             string   `json:"name"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Description      *string  `json:"description"`
	WeatherInfo      *string  `json:"weather_info"`
	AgriculturalInfo []string `json:"agricultural_info"`
	Tips             []string `json:"tips"`
	SeasonName       *string  `json:"season_name,omitempty"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

func NewStarResponse(s model.Star) StarResponse {
	return StarResponse{
		ID:               s.ID,
		SeasonID:         s.SeasonID,
		Name:             s.Name,
		StartDate:        s.StartDate,
		EndDate:          s.EndDate,
		Description:      s.Description,
		WeatherInfo:      s.WeatherInfo,
		AgriculturalInfo: emptyIfNil(s.AgriculturalInfo),
		Tips:             emptyIfNil(s.Tips),
		SeasonName:       s.SeasonName,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
	}
}

type StarListResponse struct {
	Stars      []StarResponse `json:"stars"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

type CalendarSeasonResponse struct {
	ID         int            `json:"id"`
	SeasonName string         `json:"season_name"`
	Duration   string         `json:"duration"`
	ColorHex   string         `json:"color_hex"`
	IconName   string         `json:"icon_name"`
	Stars      []StarResponse `json:"stars"`
}

func NewCalendarSeasonResponse(season model.Season, stars []model.Star) CalendarSeasonResponse {
	out := CalendarSeasonResponse{
		ID:         season.ID,
		SeasonName: season.Name,
		Duration:   season.Duration,
		ColorHex:   season.ColorHex,
		IconName:   season.IconName,
		Stars:      make([]StarResponse, 0, len(stars)),
	}
	for _, s := range stars {
		out.Stars = append(out.Stars, NewStarResponse(s))
	}
	return out
}

type OccasionResponse struct {
	ID           int     `json:"id"`
	HijriMonth   int     `json:"hijri_month"`
	HijriDay     int     `json:"hijri_day"`
	Title        string  `json:"title"`
	PrayerTitle  string  `json:"prayer_title"`
	PrayerText   *string `json:"prayer_text"`
	HijriDisplay string  `json:"hijri_display"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewOccasionResponse(o model.Occasion) OccasionResponse {
	return OccasionResponse{
		ID:           o.ID,
		HijriMonth:   o.HijriMonth,
		HijriDay:     o.HijriDay,
		Title:        o.Title,
		PrayerTitle:  o.PrayerTitle,
		PrayerText:   o.PrayerText,
		HijriDisplay: hijri.Display(o.HijriDay, o.HijriMonth),
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.Format(time.RFC3339),
	}
}

func NewOccasionResponses(occasions []model.Occasion) []OccasionResponse {
	out := make([]OccasionResponse, 0, len(occasions))
	for _, o := range occasions {
		out = append(out, NewOccasionResponse(o))
	}
	return out
}

type OccasionListResponse struct {
	Occasions  []OccasionResponse `json:"occasions"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

// OccasionsSectionsResponse buckets occasions by relevance to the current
// Hijri date. Section keys are camelCase; the records inside stay snake_case.
type OccasionsSectionsResponse struct {
	Today        []OccasionResponse `json:"today"`
	CurrentMonth []OccasionResponse `json:"currentMonth"`
	NextMonth    []OccasionResponse `json:"nextMonth"`
	Year         []OccasionResponse `json:"year"`
}

type PrayerResponse struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewPrayerResponse(p model.Prayer) PrayerResponse {
	return PrayerResponse{
		ID:        p.ID,
		Text:      p.Text,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

type PrayerListResponse struct {
	Prayers    []PrayerResponse `json:"prayers"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

type AdminProfile struct {
	ID    int     `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Admin AdminProfile `json:"admin"`
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
