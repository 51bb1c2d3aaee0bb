package db

import (
	"database/sql"
	"errors"

	"github.com/MahmoudAkram21/um-qura/internal/model"
)

func (s *pgStore) ListPrayers(page, limit int) ([]model.Prayer, int, error) {
	var total int
	if err := s.db.Get(&total, `SELECT count(*) FROM prayers`); err != nil {
		return nil, 0, err
	}

	prayers := []model.Prayer{}
	err := s.db.Select(&prayers, `
		SELECT id, text, created_at, updated_at
		FROM prayers
		ORDER BY id
		LIMIT $1 OFFSET $2
		`, limit, (page-1)*limit)
	return prayers, total, err
}

func (s *pgStore) GetPrayerByID(id int) (model.Prayer, error) {
	var prayer model.Prayer
	err := s.db.Get(&prayer, `
		SELECT id, text, created_at, updated_at
		FROM prayers
		WHERE id = $1
		`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Prayer{}, ErrNotFound
	}
	return prayer, err
}

func (s *pgStore) CreatePrayer(text string) (model.Prayer, error) {
	var prayer model.Prayer
	q := `
	INSERT INTO prayers (text, created_at, updated_at)
	VALUES ($1, now(), now())
	RETURNING id, text, created_at, updated_at;`
	if err := s.db.Get(&prayer, q, text); err != nil {
		return model.Prayer{}, err
	}
	return prayer, nil
}

func (s *pgStore) UpdatePrayer(id int, text string) error {
	res, err := s.db.Exec(`
		UPDATE prayers
		SET text = $2,
		updated_at = now()
		WHERE id = $1
		`, id, text)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *pgStore) DeletePrayer(id int) error {
	res, err := s.db.Exec(`DELETE FROM prayers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
