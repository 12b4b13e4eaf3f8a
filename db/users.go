package db

import (
	"context"

	"citykitch/models"
)

func (s *Storage) CreateUser(ctx context.Context, u *models.User) error {
	query := `
        INSERT INTO users (id, email, role, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at`
	err := s.db.QueryRowContext(ctx, query, u.ID, u.Email, u.Role, u.PasswordHash).
		Scan(&u.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	u := &models.User{}
	query := `SELECT * FROM users WHERE id=$1`
	err := s.db.GetContext(ctx, u, query, id)
	return u, notFound(err)
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u := &models.User{}
	query := `SELECT * FROM users WHERE email=$1`
	err := s.db.GetContext(ctx, u, query, email)
	return u, notFound(err)
}

func (s *Storage) GetUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT * FROM users ORDER BY created_at ASC`
	err := s.db.SelectContext(ctx, &users, query)
	return users, err
}

// DeleteUser removes the account only. Requests, bids and messages the user
// created are left in place; the admin views still list them as orphans.
func (s *Storage) DeleteUser(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id=$1`
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
