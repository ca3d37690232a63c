package diary

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresEntryRepository struct {
	db *pgxpool.Pool
}

func NewPostgresEntryRepository(db *pgxpool.Pool) *PostgresEntryRepository {
	return &PostgresEntryRepository{db: db}
}

func (r *PostgresEntryRepository) Append(username, date string, entries []Entry) error {
	ctx := context.Background()

	query := `
		INSERT INTO diary_entries (id, username, entry_date, raw, name, kcal)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if _, err := r.db.Exec(ctx, query,
			e.ID, username, date, e.Raw, e.Name, e.Kcal,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresEntryRepository) List(username, date string) ([]Entry, error) {
	query := `
		SELECT id, raw, name, kcal
		FROM diary_entries
		WHERE username=$1 AND entry_date=$2
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(context.Background(), query, username, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Raw, &e.Name, &e.Kcal); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresEntryRepository) ClearDay(username, date string) error {
	query := `DELETE FROM diary_entries WHERE username=$1 AND entry_date=$2`
	_, err := r.db.Exec(context.Background(), query, username, date)
	return err
}

func (r *PostgresEntryRepository) ResetAll(username string) error {
	query := `DELETE FROM diary_entries WHERE username=$1`
	_, err := r.db.Exec(context.Background(), query, username)
	return err
}
