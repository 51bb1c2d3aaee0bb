package db

import (
	"database/sql"
	"errors"

	"github.com/MahmoudAkram21/um-qura/internal/model"
)

func (s *pgStore) GetAdminByEmail(email string) (*model.Admin, error) {
	var admin model.Admin
	err := s.db.Get(&admin, `
		SELECT id, email, hashed_password, name, created_at, updated_at
		FROM admins
		WHERE email = $1
		`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *pgStore) GetAdminByID(id int) (*model.Admin, error) {
	var admin model.Admin
	err := s.db.Get(&admin, `
		SELECT id, email, hashed_password, name, created_at, updated_at
		FROM admins
		WHERE id = $1
		`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *pgStore) CreateAdmin(email, hashedPassword string, name *string) (int, error) {
	var id int
	q := `
	INSERT INTO admins (email, hashed_password, name, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id;`
	if err := s.db.Get(&id, q, email, hashedPassword, name); err != nil {
		return 0, err
	}
	return id, nil
}
