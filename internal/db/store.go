package db

import (
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/MahmoudAkram21/um-qura/internal/model"
)

// ErrNotFound is returned when a lookup or delete targets a missing row.
var ErrNotFound = errors.New("not found")

// NewStar carries the fields of a star to insert.
type NewStar struct {
	SeasonID         int
	Name             string
	StartDate        string
	EndDate          string
	Description      *string
	WeatherInfo      *string
	AgriculturalInfo []string
	Tips             []string
}

// StarPatch carries optional star fields for a partial update; nil means keep.
type StarPatch struct {
	SeasonID         *int
	Name             *string
	StartDate        *string
	EndDate          *string
	Description      *string
	WeatherInfo      *string
	AgriculturalInfo []string
	Tips             []string
}

// NewOccasion carries the fields of an occasion to insert.
type NewOccasion struct {
	HijriMonth  int
	HijriDay    int
	Title       string
	PrayerTitle string
	PrayerText  *string
}

// OccasionPatch carries optional occasion fields for a partial update.
type OccasionPatch struct {
	HijriMonth  *int
	HijriDay    *int
	Title       *string
	PrayerTitle *string
	PrayerText  *string
}

// Store is the persistence interface handed to the API layer. pgStore is the
// PostgreSQL implementation; tests use the in-memory MemStore.
type Store interface {
	// admin accounts
	GetAdminByEmail(email string) (*model.Admin, error)
	GetAdminByID(id int) (*model.Admin, error)
	CreateAdmin(email, hashedPassword string, name *string) (int, error)

	// seasons
	ListSeasons() ([]model.Season, error)
	GetSeasonByID(id int) (model.Season, error)
	CreateSeason(name, colorHex, iconName, duration string, sortOrder int) (model.Season, error)
	UpdateSeason(id int, name, colorHex, iconName, duration *string, sortOrder *int) error
	DeleteSeason(id int) error

	// stars
	ListStars(page, limit int, seasonID *int) ([]model.Star, int, error)
	ListStarsBySeason(seasonID int) ([]model.Star, error)
	GetStarByID(id int) (model.Star, error)
	CreateStar(n NewStar) (model.Star, error)
	UpdateStar(id int, p StarPatch) error
	DeleteStar(id int) error

	// occasions
	ListOccasions(page, limit int) ([]model.Occasion, int, error)
	ListAllOccasions() ([]model.Occasion, error)
	GetOccasionByID(id int) (model.Occasion, error)
	CreateOccasion(n NewOccasion) (model.Occasion, error)
	UpdateOccasion(id int, p OccasionPatch) error
	DeleteOccasion(id int) error

	// prayers
	ListPrayers(page, limit int) ([]model.Prayer, int, error)
	GetPrayerByID(id int) (model.Prayer, error)
	CreatePrayer(text string) (model.Prayer, error)
	UpdatePrayer(id int, text string) error
	DeletePrayer(id int) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
