package repository

import (
	"context"

	"github.com/strata-labs/strata-backend/internal/projects/domain"
)

// Store is the persistence seam for projects. One record per project,
// keyed by (user_id, project_id), with a per-user query access pattern
// backing the duplicate check.
//
// Exists and Insert are deliberately not atomic as a pair: two
// concurrent creates for the same (user_id, website_url) can both pass
// the existence check before either inserts. Callers own that race.
type Store interface {
	// Exists reports whether the user already has a project for the URL.
	Exists(ctx context.Context, userID, websiteURL string) (bool, error)

	// Insert writes the full record unconditionally. A project_id
	// collision overwrites silently; the ID scheme makes that negligible.
	Insert(ctx context.Context, p *domain.Project) error

	// Ping reports backend reachability for health checks.
	Ping(ctx context.Context) error
}
