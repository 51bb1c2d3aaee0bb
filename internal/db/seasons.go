package db

import (
	"database/sql"
	"errors"

	"github.com/MahmoudAkram21/um-qura/internal/model"
)

func (s *pgStore) ListSeasons() ([]model.Season, error) {
	seasons := []model.Season{}
	err := s.db.Select(&seasons, `
		SELECT id, name, color_hex, icon_name, duration, sort_order, created_at, updated_at
		FROM seasons
		ORDER BY sort_order, id
		`)
	return seasons, err
}

func (s *pgStore) GetSeasonByID(id int) (model.Season, error) {
	var season model.Season
	err := s.db.Get(&season, `
		SELECT id, name, color_hex, icon_name, duration, sort_order, created_at, updated_at
		FROM seasons
		WHERE id = $1
		`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Season{}, ErrNotFound
	}
	return season, err
}

func (s *pgStore) CreateSeason(name, colorHex, iconName, duration string, sortOrder int) (model.Season, error) {
	var season model.Season
	q := `
	INSERT INTO seasons (name, color_hex, icon_name, duration, sort_order, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	RETURNING id, name, color_hex, icon_name, duration, sort_order, created_at, updated_at;`
	if err := s.db.Get(&season, q, name, colorHex, iconName, duration, sortOrder); err != nil {
		return model.Season{}, err
	}
	return season, nil
}

func (s *pgStore) UpdateSeason(id int, name, colorHex, iconName, duration *string, sortOrder *int) error {
	res, err := s.db.Exec(`
		UPDATE seasons
		SET name = COALESCE($2, name),
		color_hex = COALESCE($3, color_hex),
		icon_name = COALESCE($4, icon_name),
		duration = COALESCE($5, duration),
		sort_order = COALESCE($6, sort_order),
		updated_at = now()
		WHERE id = $1
		`, id, name, colorHex, iconName, duration, sortOrder)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *pgStore) DeleteSeason(id int) error {
	res, err := s.db.Exec(`DELETE FROM seasons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
