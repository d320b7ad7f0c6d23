package domain

// Project is the persisted record for a user-tracked website.
// It is intentionally storage-agnostic and used across repository and HTTP layers;
// the dynamodbav tags mirror the json names so the DynamoDB item layout matches
// the API payload field for field.
type Project struct {
	UserID      string         `json:"user_id" dynamodbav:"user_id"`
	ProjectID   string         `json:"project_id" dynamodbav:"project_id"`
	WebsiteURL  string         `json:"website_url" dynamodbav:"website_url"`
	Category    string         `json:"category" dynamodbav:"category"`
	Description string         `json:"description" dynamodbav:"description"`
	Title       string         `json:"title" dynamodbav:"title"`
	HealthScore int            `json:"health_score" dynamodbav:"health_score"`
	Status      string         `json:"status" dynamodbav:"status"`
	CreatedAt   string         `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt   string         `json:"updated_at" dynamodbav:"updated_at"`
	LastChecked string         `json:"last_checked" dynamodbav:"last_checked"`
	ScrapedData map[string]any `json:"scraped_data" dynamodbav:"scraped_data"`
}

// StatusActive is the only status a project can have at creation time.
const StatusActive = "active"

// CreateProjectRequest is the invocation payload for project creation.
// Only websiteUrl and scrapedData are required; the rest default server-side.
type CreateProjectRequest struct {
	WebsiteURL  string         `json:"websiteUrl"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	ScrapedData map[string]any `json:"scrapedData"`
	UserID      string         `json:"userId"`
}

// Response is the uniform payload shape for every outcome of the create flow.
type Response struct {
	Success bool     `json:"success"`
	Data    *Project `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Message string   `json:"message,omitempty"`
}
