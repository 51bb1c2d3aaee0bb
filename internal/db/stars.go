package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/MahmoudAkram21/um-qura/internal/model"
)

// starColumns joins the owning season so responses can carry season_name.
// Dates are rendered as ISO 8601 strings at the SQL level.
const starColumns = `
	s.id, s.season_id, s.name,
	to_char(s.start_date, 'YYYY-MM-DD') AS start_date,
	to_char(s.end_date, 'YYYY-MM-DD') AS end_date,
	s.description, s.weather_info, s.agricultural_info, s.tips,
	s.created_at, s.updated_at,
	se.name AS season_name`

func (s *pgStore) ListStars(page, limit int, seasonID *int) ([]model.Star, int, error) {
	var total int
	countQ := `SELECT count(*) FROM stars s WHERE $1::int IS NULL OR s.season_id = $1`
	if err := s.db.Get(&total, countQ, seasonID); err != nil {
		return nil, 0, err
	}

	stars := []model.Star{}
	err := s.db.Select(&stars, `
		SELECT `+starColumns+`
		FROM stars s
		JOIN seasons se ON se.id = s.season_id
		WHERE $1::int IS NULL OR s.season_id = $1
		ORDER BY s.start_date, s.id
		LIMIT $2 OFFSET $3
		`, seasonID, limit, (page-1)*limit)
	return stars, total, err
}

func (s *pgStore) ListStarsBySeason(seasonID int) ([]model.Star, error) {
	stars := []model.Star{}
	err := s.db.Select(&stars, `
		SELECT `+starColumns+`
		FROM stars s
		JOIN seasons se ON se.id = s.season_id
		WHERE s.season_id = $1
		ORDER BY s.start_date, s.id
		`, seasonID)
	return stars, err
}

func (s *pgStore) GetStarByID(id int) (model.Star, error) {
	var star model.Star
	err := s.db.Get(&star, `
		SELECT `+starColumns+`
		FROM stars s
		JOIN seasons se ON se.id = s.season_id
		WHERE s.id = $1
		`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Star{}, ErrNotFound
	}
	return star, err
}

func (s *pgStore) CreateStar(n NewStar) (model.Star, error) {
	var id int
	q := `
	INSERT INTO stars (season_id, name, start_date, end_date, description, weather_info,
		agricultural_info, tips, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	RETURNING id;`
	err := s.db.Get(&id, q,
		n.SeasonID, n.Name, n.StartDate, n.EndDate, n.Description, n.WeatherInfo,
		pq.Array(n.AgriculturalInfo), pq.Array(n.Tips))
	if err != nil {
		return model.Star{}, err
	}
	return s.GetStarByID(id)
}

func (s *pgStore) UpdateStar(id int, p StarPatch) error {
	res, err := s.db.Exec(`
		UPDATE stars
		SET season_id = COALESCE($2, season_id),
		name = COALESCE($3, name),
		start_date = COALESCE($4::date, start_date),
		end_date = COALESCE($5::date, end_date),
		description = COALESCE($6, description),
		weather_info = COALESCE($7, weather_info),
		agricultural_info = COALESCE($8, agricultural_info),
		tips = COALESCE($9, tips),
		updated_at = now()
		WHERE id = $1
		`, id, p.SeasonID, p.Name, p.StartDate, p.EndDate, p.Description, p.WeatherInfo,
		nullableArray(p.AgriculturalInfo), nullableArray(p.Tips))
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *pgStore) DeleteStar(id int) error {
	res, err := s.db.Exec(`DELETE FROM stars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// nullableArray keeps COALESCE semantics for list fields: a nil slice means
// "leave unchanged" while an empty one overwrites.
func nullableArray(v []string) interface{} {
	if v == nil {
		return nil
	}
	return pq.Array(v)
}
