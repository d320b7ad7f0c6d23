package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/strata-labs/strata-backend/internal/projects/domain"
)

const (
	projectKeyPrefix = "projects:item:" // Project record: projects:item:{user_id}:{project_id}
	userSetPrefix    = "projects:user:" // Set of project IDs for a user: projects:user:{user_id}
	urlSetPrefix     = "projects:urls:" // Set of website URLs for a user: projects:urls:{user_id}
)

// RedisStore persists projects in Redis. Each project is a JSON value,
// with per-user sets indexing project IDs and website URLs.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed project store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Exists checks the user's URL index set.
func (s *RedisStore) Exists(ctx context.Context, userID, websiteURL string) (bool, error) {
	member, err := s.client.SIsMember(ctx, s.urlSetKey(userID), websiteURL).Result()
	if err != nil {
		return false, fmt.Errorf("check url index for user %s: %w", userID, err)
	}
	return member, nil
}

// Insert writes the record and both index entries in one pipeline.
func (s *RedisStore) Insert(ctx context.Context, p *domain.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal project %s: %w", p.ProjectID, err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.projectKey(p.UserID, p.ProjectID), data, 0)
	pipe.SAdd(ctx, s.userSetKey(p.UserID), p.ProjectID)
	pipe.SAdd(ctx, s.urlSetKey(p.UserID), p.WebsiteURL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert project %s: %w", p.ProjectID, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (s *RedisStore) projectKey(userID, projectID string) string {
	return projectKeyPrefix + userID + ":" + projectID
}

func (s *RedisStore) userSetKey(userID string) string {
	return userSetPrefix + userID
}

func (s *RedisStore) urlSetKey(userID string) string {
	return urlSetPrefix + userID
}
