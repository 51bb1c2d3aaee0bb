package client

// Domain types consumed by callers of the SDK. Field names are camelCase on
// the wire only where the backend already speaks camelCase (seasons, login);
// everything else is adapted from snake_case in wire.go.

type Season struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ColorHex  string `json:"colorHex"`
	IconName  string `json:"iconName"`
	Duration  string `json:"duration"`
	SortOrder int    `json:"sortOrder"`
}

type Star struct {
	ID               int      `json:"id"`
	SeasonID         int      `json:"seasonId"`
	Name             string   `json:"name"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Description      *string  `json:"description"`
	WeatherInfo      *string  `json:"weatherInfo"`
	AgriculturalInfo []string `json:"agriculturalInfo"`
	Tips             []string `json:"tips"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
	// Season is a partial display-only snapshot (id and name at most);
	// never treat it as a complete Season record.
	Season *Season `json:"season,omitempty"`
}

// CalendarSeason is a Season with its stars nested, as served by the public
// calendar view.
type CalendarSeason struct {
	Season
	Stars []Star `json:"stars"`
}

type Occasion struct {
	ID           int     `json:"id"`
	HijriMonth   int     `json:"hijriMonth"`
	HijriDay     int     `json:"hijriDay"`
	Title        string  `json:"title"`
	PrayerTitle  string  `json:"prayerTitle"`
	PrayerText   *string `json:"prayerText"`
	HijriDisplay string  `json:"hijriDisplay,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

// OccasionsSections is the server-computed partition of occasions by
// relevance to the current Hijri date. Buckets may overlap.
type OccasionsSections struct {
	Today        []Occasion `json:"today"`
	CurrentMonth []Occasion `json:"currentMonth"`
	NextMonth    []Occasion `json:"nextMonth"`
	Year         []Occasion `json:"year"`
}

type Prayer struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Admin is the profile snapshot returned at login and cached in the session.
type Admin struct {
	ID    int     `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// StarPage is one page of the admin star listing, pagination metadata exactly
// as the backend computed it.
type StarPage struct {
	Stars      []Star `json:"stars"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}

type OccasionPage struct {
	Occasions  []Occasion `json:"occasions"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

type PrayerPage struct {
	Prayers    []Prayer `json:"prayers"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"totalPages"`
}
