package model

import "time"

// Occasion is an event anchored to a Hijri month/day with an attached prayer.
type Occasion struct {
	ID          int       `db:"id"`
	HijriMonth  int       `db:"hijri_month"`
	HijriDay    int       `db:"hijri_day"`
	Title       string    `db:"title"`
	PrayerTitle string    `db:"prayer_title"`
	PrayerText  *string   `db:"prayer_text"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
