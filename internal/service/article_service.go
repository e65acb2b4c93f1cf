package service

import (
	"context"
	"strings"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

type articleService struct {
	repo repository.ArticleRepository
	log  zerolog.Logger
}

func newArticleService(repo repository.ArticleRepository, log zerolog.Logger) *articleService {
	return &articleService{
		repo: repo,
		log:  log.With().Str("service", "article").Logger(),
	}
}

// ListArticles validates the query string, then lists and counts. A valid
// query that matches nothing is a NotFound.
func (s *articleService) ListArticles(ctx context.Context, q validation.ArticleListQuery) (*models.ArticleList, error) {
	filter, err := validation.ParseArticleListQuery(q)
	if err != nil {
		return nil, err
	}

	articles, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, apperror.NotFound("No Articles Found")
	}

	total, err := s.repo.CountMatching(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("sort_by", string(filter.SortBy)).
		Str("order", string(filter.Order)).
		Str("topic", filter.Topic).
		Int("returned", len(articles)).
		Int("total", total).
		Msg("Listed articles")

	return &models.ArticleList{Articles: articles, TotalCount: total}, nil
}

func (s *articleService) GetArticle(ctx context.Context, rawID string) (*models.Article, error) {
	id, err := validation.ParseID(rawID, validation.MsgInvalidArticleID)
	if err != nil {
		return nil, err
	}

	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperror.NotFoundf("Article %d Not Found", id)
	}
	return article, nil
}

// CreateArticle inserts req and returns the new id. Author and topic
// existence is the caller's concern; the foreign keys still guard it.
func (s *articleService) CreateArticle(ctx context.Context, req models.NewArticle) (int, error) {
	required := []struct{ name, value string }{
		{"author", req.Author},
		{"title", req.Title},
		{"body", req.Body},
		{"topic", req.Topic},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return 0, validation.MissingField(f.name)
		}
	}

	imgURL := req.ArticleImgURL
	if imgURL == "" {
		imgURL = models.DefaultArticleImgURL
	}

	id, err := s.repo.Create(ctx, &models.Article{
		Author:        req.Author,
		Title:         req.Title,
		Body:          req.Body,
		Topic:         req.Topic,
		ArticleImgURL: imgURL,
	})
	if err != nil {
		return 0, err
	}

	s.log.Info().Int("article_id", id).Str("author", req.Author).Str("topic", req.Topic).Msg("Article created")
	return id, nil
}

// UpdateArticleVotes checks the id before the delta
func (s *articleService) UpdateArticleVotes(ctx context.Context, rawID string, incVotes interface{}) (*models.Article, error) {
	id, err := validation.ParseID(rawID, validation.MsgInvalidArticleID)
	if err != nil {
		return nil, err
	}
	delta, ok := validation.ParseVoteDelta(incVotes)
	if !ok {
		return nil, apperror.InvalidInput(validation.MsgArticleVotesNaN)
	}

	article, err := s.repo.UpdateVotes(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperror.NotFoundf("Article %d Not Found", id)
	}
	return article, nil
}
