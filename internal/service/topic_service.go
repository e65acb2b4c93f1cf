package service

import (
	"context"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

type topicService struct {
	repo repository.TopicRepository
	log  zerolog.Logger
}

func newTopicService(repo repository.TopicRepository, log zerolog.Logger) *topicService {
	return &topicService{
		repo: repo,
		log:  log.With().Str("service", "topic").Logger(),
	}
}

func (s *topicService) ListTopics(ctx context.Context) ([]*models.Topic, error) {
	return s.repo.List(ctx)
}

// GetTopic rejects empty or numeric-looking slugs before querying
func (s *topicService) GetTopic(ctx context.Context, slug string) (*models.Topic, error) {
	if err := validation.RequireText(slug, validation.MsgInvalidTopicName); err != nil {
		return nil, err
	}

	topic, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, apperror.NotFoundf("Topic %s Not Found", slug)
	}
	return topic, nil
}
