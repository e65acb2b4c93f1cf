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

type commentService struct {
	repo repository.CommentRepository
	log  zerolog.Logger
}

func newCommentService(repo repository.CommentRepository, log zerolog.Logger) *commentService {
	return &commentService{
		repo: repo,
		log:  log.With().Str("service", "comment").Logger(),
	}
}

// ListComments returns an article's comments, possibly none. Whether the
// article exists is checked by the caller.
func (s *commentService) ListComments(ctx context.Context, rawArticleID string) ([]*models.Comment, error) {
	articleID, err := validation.ParseID(rawArticleID, validation.MsgInvalidArticleID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByArticle(ctx, articleID)
}

func (s *commentService) CreateComment(ctx context.Context, rawArticleID string, req models.NewComment) (*models.Comment, error) {
	articleID, err := validation.ParseID(rawArticleID, validation.MsgInvalidArticleID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Username) == "" {
		return nil, validation.MissingField("username")
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, validation.MissingField("body")
	}

	comment, err := s.repo.Create(ctx, &models.Comment{
		ArticleID: articleID,
		Author:    req.Username,
		Body:      req.Body,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("comment_id", comment.CommentID).Int("article_id", articleID).Msg("Comment created")
	return comment, nil
}

func (s *commentService) UpdateCommentVotes(ctx context.Context, rawID string, incVotes interface{}) (*models.Comment, error) {
	id, err := validation.ParseID(rawID, validation.MsgInvalidCommentID)
	if err != nil {
		return nil, err
	}
	delta, ok := validation.ParseVoteDelta(incVotes)
	if !ok {
		return nil, apperror.InvalidInput(validation.MsgCommentVotesNaN)
	}

	comment, err := s.repo.UpdateVotes(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperror.NotFoundf("Comment %d Not Found", id)
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, rawID string) error {
	id, err := validation.ParseID(rawID, validation.MsgInvalidCommentID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFoundf("Comment %d Not Found", id)
	}

	s.log.Info().Int("comment_id", id).Msg("Comment deleted")
	return nil
}
