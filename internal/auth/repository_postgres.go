package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	query := `
		INSERT INTO users (username, password, remember)
		VALUES ($1, $2, $3)
		ON CONFLICT (username)
		DO UPDATE SET password = EXCLUDED.password, remember = EXCLUDED.remember
	`
	_, err := r.db.Exec(context.Background(), query,
		user.Username, user.PasswordHash, user.Remember,
	)
	return err
}

func (r *PostgresUserRepository) ExistsByUsername(username string) (bool, error) {
	query := `SELECT 1 FROM users WHERE username=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, username)

	var exists int
	err := row.Scan(&exists)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByUsername(username string) (*User, error) {
	query := `
		SELECT username, password, remember
		FROM users WHERE username=$1
	`
	row := r.db.QueryRow(context.Background(), query, username)

	user := &User{}
	if err := row.Scan(&user.Username, &user.PasswordHash, &user.Remember); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}
