package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/strata-labs/strata-backend/internal/projects/domain"
	"github.com/strata-labs/strata-backend/internal/projects/repository"
	"github.com/strata-labs/strata-backend/internal/projects/scoring"
	"github.com/strata-labs/strata-backend/internal/projects/validation"
)

// Defaults applied when the payload omits optional fields.
const (
	DefaultCategory = "General"
	DefaultUserID   = "default_user"
)

// ProjectService handles project creation business logic.
type ProjectService struct {
	store repository.Store
}

// NewProjectService creates a new project service.
func NewProjectService(store repository.Store) *ProjectService {
	return &ProjectService{store: store}
}

// CreateResult pairs the response payload with the HTTP status the
// transport layer should frame it with. Direct (non-HTTP) callers use
// Body alone and ignore Status.
type CreateResult struct {
	Status int
	Body   domain.Response
}

// Create runs the full creation flow: apply defaults, validate,
// duplicate-check, score, persist. Every outcome maps to exactly one
// CreateResult; errors never escape except through the 500 response.
func (s *ProjectService) Create(ctx context.Context, req domain.CreateProjectRequest) CreateResult {
	category := req.Category
	if category == "" {
		category = DefaultCategory
	}
	userID := req.UserID
	if userID == "" {
		userID = DefaultUserID
	}

	if req.WebsiteURL == "" {
		return fail(http.StatusBadRequest, "websiteUrl is required")
	}
	if len(req.ScrapedData) == 0 {
		return fail(http.StatusBadRequest, "scrapedData is required")
	}
	if !validation.ValidWebsiteURL(req.WebsiteURL) {
		return fail(http.StatusBadRequest, "Invalid website URL format")
	}
	if !validation.ValidScrapedData(req.ScrapedData) {
		return fail(http.StatusBadRequest, "Invalid scraped data structure")
	}

	// Fail-open on duplicate-check errors: a store hiccup here must not
	// surface as a spurious 409, so we log and continue as "no duplicate".
	exists, err := s.store.Exists(ctx, userID, req.WebsiteURL)
	if err != nil {
		log.Printf("[warn] operation=duplicate_check user_id=%s error=%v", userID, err)
		exists = false
	}
	if exists {
		return fail(http.StatusConflict, "Project already exists for this URL")
	}

	project, err := buildProject(userID, req.WebsiteURL, category, req.Description, req.ScrapedData)
	if err != nil {
		return internalError("create_project", err)
	}

	if err := s.store.Insert(ctx, project); err != nil {
		return internalError("insert_project", err)
	}

	return CreateResult{
		Status: http.StatusCreated,
		Body: domain.Response{
			Success: true,
			Data:    project,
			Message: "Project created successfully",
		},
	}
}

// buildProject assembles the record: generated ID, health score, and the
// three timestamp fields stamped with the same UTC instant.
func buildProject(userID, websiteURL, category, description string, scrapedData map[string]any) (*domain.Project, error) {
	projectID, err := domain.NewProjectID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	return &domain.Project{
		UserID:      userID,
		ProjectID:   projectID,
		WebsiteURL:  websiteURL,
		Category:    category,
		Description: description,
		Title:       titleFrom(scrapedData, websiteURL),
		HealthScore: scoring.Score(scrapedData),
		Status:      domain.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
		LastChecked: now,
		ScrapedData: scrapedData,
	}, nil
}

// titleFrom falls back to the URL only when the title key is absent;
// a present-but-empty title is kept as is.
func titleFrom(scrapedData map[string]any, websiteURL string) string {
	v, ok := scrapedData["title"]
	if !ok {
		return websiteURL
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func fail(status int, msg string) CreateResult {
	return CreateResult{
		Status: status,
		Body:   domain.Response{Success: false, Error: msg},
	}
}

func internalError(operation string, err error) CreateResult {
	log.Printf("[error] operation=%s error=%v", operation, err)
	return CreateResult{
		Status: http.StatusInternalServerError,
		Body: domain.Response{
			Success: false,
			Error:   "Internal server error",
			Message: err.Error(),
		},
	}
}
