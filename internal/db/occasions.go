package db

import (
	"database/sql"
	"errors"

	"github.com/MahmoudAkram21/um-qura/internal/model"
)

const occasionColumns = `id, hijri_month, hijri_day, title, prayer_title, prayer_text, created_at, updated_at`

func (s *pgStore) ListOccasions(page, limit int) ([]model.Occasion, int, error) {
	var total int
	if err := s.db.Get(&total, `SELECT count(*) FROM occasions`); err != nil {
		return nil, 0, err
	}

	occasions := []model.Occasion{}
	err := s.db.Select(&occasions, `
		SELECT `+occasionColumns+`
		FROM occasions
		ORDER BY hijri_month, hijri_day, id
		LIMIT $1 OFFSET $2
		`, limit, (page-1)*limit)
	return occasions, total, err
}

func (s *pgStore) ListAllOccasions() ([]model.Occasion, error) {
	occasions := []model.Occasion{}
	err := s.db.Select(&occasions, `
		SELECT `+occasionColumns+`
		FROM occasions
		ORDER BY hijri_month, hijri_day, id
		`)
	return occasions, err
}

func (s *pgStore) GetOccasionByID(id int) (model.Occasion, error) {
	var occasion model.Occasion
	err := s.db.Get(&occasion, `
		SELECT `+occasionColumns+`
		FROM occasions
		WHERE id = $1
		`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Occasion{}, ErrNotFound
	}
	return occasion, err
}

func (s *pgStore) CreateOccasion(n NewOccasion) (model.Occasion, error) {
	var occasion model.Occasion
	q := `
	INSERT INTO occasions (hijri_month, hijri_day, title, prayer_title, prayer_text, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	RETURNING ` + occasionColumns + `;`
	if err := s.db.Get(&occasion, q, n.HijriMonth, n.HijriDay, n.Title, n.PrayerTitle, n.PrayerText); err != nil {
		return model.Occasion{}, err
	}
	return occasion, nil
}

func (s *pgStore) UpdateOccasion(id int, p OccasionPatch) error {
	res, err := s.db.Exec(`
		UPDATE occasions
		SET hijri_month = COALESCE($2, hijri_month),
		hijri_day = COALESCE($3, hijri_day),
		title = COALESCE($4, title),
		prayer_title = COALESCE($5, prayer_title),
		prayer_text = COALESCE($6, prayer_text),
		updated_at = now()
		WHERE id = $1
		`, id, p.HijriMonth, p.HijriDay, p.Title, p.PrayerTitle, p.PrayerText)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *pgStore) DeleteOccasion(id int) error {
	res, err := s.db.Exec(`DELETE FROM occasions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
