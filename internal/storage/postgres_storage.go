package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/ports"
)

// PostgresStorage keeps the publication log in Postgres.
type PostgresStorage struct {
	Pool *pgxpool.Pool
}

func NewPostgresStorage(ctx context.Context, connStr string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	s := &PostgresStorage{Pool: pool}
	if err := s.initSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

var _ ports.Storage = (*PostgresStorage)(nil)

func (s *PostgresStorage) initSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS publications (
			id SERIAL PRIMARY KEY,
			platform TEXT NOT NULL,
			post_id TEXT NOT NULL,
			content TEXT NOT NULL,
			posted_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS publications_platform_posted_at_idx
			ON publications (platform, posted_at)`,
	}
	for _, q := range queries {
		if _, err := s.Pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStorage) RecordPublication(ctx context.Context, rec domain.PublicationRecord) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO publications (platform, post_id, content, posted_at) VALUES ($1, $2, $3, $4)`,
		string(rec.Platform), rec.PostID, rec.Text, rec.PostedAt)
	return err
}

func (s *PostgresStorage) Stats(ctx context.Context, platform domain.Platform) (int, string, error) {
	var count int
	var lastDate *string
	err := s.Pool.QueryRow(ctx,
		`SELECT count(*) FILTER (WHERE posted_at::date = now()::date),
		        to_char(max(posted_at), 'YYYY-MM-DD')
		 FROM publications WHERE platform = $1`,
		string(platform)).Scan(&count, &lastDate)
	if err != nil {
		return 0, "", err
	}
	if lastDate == nil {
		return count, "", nil
	}
	return count, *lastDate, nil
}

func (s *PostgresStorage) Close() {
	s.Pool.Close()
}
