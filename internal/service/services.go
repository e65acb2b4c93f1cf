package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// Accessors take identifiers as raw path strings and validate their shape
// before touching the store. Failures are *apperror.Error values, or wrapped
// store errors for anything unexpected.

// TopicService defines the interface for topic operations
type TopicService interface {
	ListTopics(ctx context.Context) ([]*models.Topic, error)
	GetTopic(ctx context.Context, slug string) (*models.Topic, error)
}

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	ListArticles(ctx context.Context, q validation.ArticleListQuery) (*models.ArticleList, error)
	GetArticle(ctx context.Context, rawID string) (*models.Article, error)
	CreateArticle(ctx context.Context, req models.NewArticle) (int, error)
	UpdateArticleVotes(ctx context.Context, rawID string, incVotes interface{}) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListComments(ctx context.Context, rawArticleID string) ([]*models.Comment, error)
	CreateComment(ctx context.Context, rawArticleID string, req models.NewComment) (*models.Comment, error)
	UpdateCommentVotes(ctx context.Context, rawID string, incVotes interface{}) (*models.Comment, error)
	DeleteComment(ctx context.Context, rawID string) error
}

// StatsService reports row counts per table
type StatsService interface {
	GetCount(ctx context.Context, resource string) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	User    UserService
	Article ArticleService
	Comment CommentService
	Stats   StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Topic:   newTopicService(repos.Topic, log),
		User:    newUserService(repos.User, log),
		Article: newArticleService(repos.Article, log),
		Comment: newCommentService(repos.Comment, log),
		Stats:   newStatsService(repos),
	}
}
