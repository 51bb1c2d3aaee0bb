package model

import (
	"time"

	"github.com/lib/pq"
)

// Star is an astronomical period nested under a Season. AgriculturalInfo and
// Tips are stored as Postgres text arrays. SeasonName is only populated by
// queries that join seasons.
type Star struct {
	ID               int            `db:"id"`
	SeasonID         int            `db:"season_id"`
	Name             string         `db:"name"`
	StartDate        string         `db:"start_date"`
	EndDate          string         `db:"end_date"`
	Description      *string        `db:"description"`
	WeatherInfo      *string        `db:"weather_info"`
	AgriculturalInfo pq.StringArray `db:"agricultural_info"`
	Tips             pq.StringArray `db:"tips"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
	SeasonName       *string        `db:"season_name"`
}
