package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"tamagotchi-api/internal/domain/users"
)

const uniqueViolation = "23505"

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, $3)
	`,
		u.Username,
		u.PasswordHash,
		u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return users.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT username, password_hash, created_at
		FROM users
		WHERE username = $1
	`, username)

	var u users.User
	if err := row.Scan(&u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrUserNotFound
		}
		return users.User{}, err
	}
	return u, nil
}
