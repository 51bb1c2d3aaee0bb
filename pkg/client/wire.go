package client

import (
	"encoding/json"
	"fmt"
)

// The backend answers stars, occasions, prayers and the calendar wrapper in
// snake_case; the adapters below normalize those records into the domain
// types. Required fields decode through pointers so that a missing field
// becomes a DecodeError instead of a silent zero value.

// DecodeError reports a wire record missing a required field.
type DecodeError struct {
	Resource string
	Field    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: missing or invalid field %q", e.Resource, e.Field)
}

type rawStar struct {
	ID               *int            `json:"id"`
	Name             *string         `json:"name"`
	SeasonID         int             `json:"seasonId"`
	SeasonName       *string         `json:"season_name"`
	StartDate        *string         `json:"start_date"`
	EndDate          *string         `json:"end_date"`
	Description      *string         `json:"description"`
	WeatherInfo      *string         `json:"weather_info"`
	AgriculturalInfo json.RawMessage `json:"agricultural_info"`
	Tips             json.RawMessage `json:"tips"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

// adaptStar normalizes a raw star. seasonID and seasonName override the
// record's own season fields when the caller already knows the owning season
// (mapping stars embedded in a calendar season). When a season name is known
// a partial Season carrying only id and name is attached for display.
func adaptStar(r rawStar, seasonID *int, seasonName *string) (Star, error) {
	if r.ID == nil {
		return Star{}, &DecodeError{Resource: "star", Field: "id"}
	}
	if r.Name == nil {
		return Star{}, &DecodeError{Resource: "star", Field: "name"}
	}
	if r.StartDate == nil {
		return Star{}, &DecodeError{Resource: "star", Field: "start_date"}
	}
	if r.EndDate == nil {
		return Star{}, &DecodeError{Resource: "star", Field: "end_date"}
	}

	sid := r.SeasonID
	if seasonID != nil {
		sid = *seasonID
	}
	name := r.SeasonName
	if seasonName != nil {
		name = seasonName
	}

	star := Star{
		ID:               *r.ID,
		SeasonID:         sid,
		Name:             *r.Name,
		StartDate:        *r.StartDate,
		EndDate:          *r.EndDate,
		Description:      r.Description,
		WeatherInfo:      r.WeatherInfo,
		AgriculturalInfo: stringList(r.AgriculturalInfo),
		Tips:             stringList(r.Tips),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if name != nil {
		star.Season = &Season{ID: sid, Name: *name}
	}
	return star, nil
}

// stringList tolerates a missing, null, or non-array value by returning an
// empty slice; the domain type never carries nil lists.
func stringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

type rawCalendarSeason struct {
	ID         *int      `json:"id"`
	SeasonName *string   `json:"season_name"`
	Duration   string    `json:"duration"`
	ColorHex   string    `json:"color_hex"`
	IconName   string    `json:"icon_name"`
	Stars      []rawStar `json:"stars"`
}

// adaptCalendarSeason maps a raw calendar season, injecting the parent
// season's id and name into every embedded star.
func adaptCalendarSeason(r rawCalendarSeason) (CalendarSeason, error) {
	if r.ID == nil {
		return CalendarSeason{}, &DecodeError{Resource: "calendar season", Field: "id"}
	}
	if r.SeasonName == nil {
		return CalendarSeason{}, &DecodeError{Resource: "calendar season", Field: "season_name"}
	}

	out := CalendarSeason{
		Season: Season{
			ID:       *r.ID,
			Name:     *r.SeasonName,
			ColorHex: r.ColorHex,
			IconName: r.IconName,
			Duration: r.Duration,
		},
		Stars: make([]Star, 0, len(r.Stars)),
	}
	for _, rs := range r.Stars {
		star, err := adaptStar(rs, r.ID, r.SeasonName)
		if err != nil {
			return CalendarSeason{}, err
		}
		out.Stars = append(out.Stars, star)
	}
	return out, nil
}

type rawOccasion struct {
	ID           *int    `json:"id"`
	HijriMonth   *int    `json:"hijri_month"`
	HijriDay     *int    `json:"hijri_day"`
	Title        *string `json:"title"`
	PrayerTitle  *string `json:"prayer_title"`
	PrayerText   *string `json:"prayer_text"`
	HijriDisplay string  `json:"hijri_display"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func adaptOccasion(r rawOccasion) (Occasion, error) {
	if r.ID == nil {
		return Occasion{}, &DecodeError{Resource: "occasion", Field: "id"}
	}
	if r.HijriMonth == nil {
		return Occasion{}, &DecodeError{Resource: "occasion", Field: "hijri_month"}
	}
	if r.HijriDay == nil {
		return Occasion{}, &DecodeError{Resource: "occasion", Field: "hijri_day"}
	}
	if r.Title == nil {
		return Occasion{}, &DecodeError{Resource: "occasion", Field: "title"}
	}
	if r.PrayerTitle == nil {
		return Occasion{}, &DecodeError{Resource: "occasion", Field: "prayer_title"}
	}

	return Occasion{
		ID:           *r.ID,
		HijriMonth:   *r.HijriMonth,
		HijriDay:     *r.HijriDay,
		Title:        *r.Title,
		PrayerTitle:  *r.PrayerTitle,
		PrayerText:   r.PrayerText,
		HijriDisplay: r.HijriDisplay,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

func adaptOccasions(raw []rawOccasion) ([]Occasion, error) {
	out := make([]Occasion, 0, len(raw))
	for _, r := range raw {
		occasion, err := adaptOccasion(r)
		if err != nil {
			return nil, err
		}
		out = append(out, occasion)
	}
	return out, nil
}

type rawPrayer struct {
	ID        *int    `json:"id"`
	Text      *string `json:"text"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func adaptPrayer(r rawPrayer) (Prayer, error) {
	if r.ID == nil {
		return Prayer{}, &DecodeError{Resource: "prayer", Field: "id"}
	}
	if r.Text == nil {
		return Prayer{}, &DecodeError{Resource: "prayer", Field: "text"}
	}
	return Prayer{
		ID:        *r.ID,
		Text:      *r.Text,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}
