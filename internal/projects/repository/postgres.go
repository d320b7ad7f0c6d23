package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/strata-labs/strata-backend/internal/projects/domain"
)

// PostgresStore persists projects in a single table:
//
//	CREATE TABLE strata_projects (
//	    user_id      text NOT NULL,
//	    project_id   text NOT NULL,
//	    website_url  text NOT NULL,
//	    category     text NOT NULL,
//	    description  text NOT NULL,
//	    title        text NOT NULL,
//	    health_score int  NOT NULL,
//	    status       text NOT NULL,
//	    created_at   text NOT NULL,
//	    updated_at   text NOT NULL,
//	    last_checked text NOT NULL,
//	    scraped_data jsonb NOT NULL,
//	    PRIMARY KEY (user_id, project_id)
//	);
//
// There is intentionally no unique constraint on (user_id, website_url);
// duplicate prevention lives in the check-then-insert flow above the Store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed project store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Exists reports whether the user already has a project for the URL.
func (s *PostgresStore) Exists(ctx context.Context, userID, websiteURL string) (bool, error) {
	const q = `
SELECT EXISTS (
    SELECT 1 FROM strata_projects
    WHERE user_id = $1 AND website_url = $2
);
`
	var exists bool
	if err := s.pool.QueryRow(ctx, q, userID, websiteURL).Scan(&exists); err != nil {
		return false, fmt.Errorf("query projects for user %s: %w", userID, err)
	}
	return exists, nil
}

// Insert upserts on (user_id, project_id) so an ID collision overwrites
// silently, matching the Store contract.
func (s *PostgresStore) Insert(ctx context.Context, p *domain.Project) error {
	scraped, err := json.Marshal(p.ScrapedData)
	if err != nil {
		return fmt.Errorf("marshal scraped data for %s: %w", p.ProjectID, err)
	}

	const q = `
INSERT INTO strata_projects
    (user_id, project_id, website_url, category, description, title,
     health_score, status, created_at, updated_at, last_checked, scraped_data)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (user_id, project_id) DO UPDATE SET
    website_url  = EXCLUDED.website_url,
    category     = EXCLUDED.category,
    description  = EXCLUDED.description,
    title        = EXCLUDED.title,
    health_score = EXCLUDED.health_score,
    status       = EXCLUDED.status,
    created_at   = EXCLUDED.created_at,
    updated_at   = EXCLUDED.updated_at,
    last_checked = EXCLUDED.last_checked,
    scraped_data = EXCLUDED.scraped_data;
`
	_, err = s.pool.Exec(ctx, q,
		p.UserID, p.ProjectID, p.WebsiteURL, p.Category, p.Description, p.Title,
		p.HealthScore, p.Status, p.CreatedAt, p.UpdatedAt, p.LastChecked, scraped)
	if err != nil {
		return fmt.Errorf("insert project %s: %w", p.ProjectID, err)
	}
	return nil
}

// Ping checks the connection pool.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	return nil
}
