package postgres

import (
	"context"
	"database/sql"
	"errors"

	domuser "github.com/dhdiogoh/cyga-ecommerce/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domuser.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*domuser.User, error) {
	var u domuser.User
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, password_hash, role_code, created_at
        FROM users WHERE `+column+` = $1
    `, value).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleCode, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domuser.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
