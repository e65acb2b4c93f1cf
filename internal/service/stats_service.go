package service

import (
	"context"
	"fmt"

	"github.com/news-api/internal/repository"
)

type statsService struct {
	repos *repository.Repositories
}

func newStatsService(repos *repository.Repositories) *statsService {
	return &statsService{repos: repos}
}

// GetCount returns the row count for one of topics, users, articles or comments
func (s *statsService) GetCount(ctx context.Context, resource string) (int, error) {
	switch resource {
	case "topics":
		return s.repos.Topic.Count(ctx)
	case "users":
		return s.repos.User.Count(ctx)
	case "articles":
		return s.repos.Article.Count(ctx)
	case "comments":
		return s.repos.Comment.Count(ctx)
	default:
		return 0, fmt.Errorf("unknown resource: %s", resource)
	}
}
