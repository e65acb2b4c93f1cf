package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID := c.Param("article_id")

	var comments []*models.Comment
	err := awaitAll(c.Request.Context(),
		func(ctx context.Context) error {
			_, err := h.services.Article.GetArticle(ctx, articleID)
			return err
		},
		func(ctx context.Context) error {
			var err error
			comments, err = h.services.Comment.ListComments(ctx, articleID)
			return err
		},
	)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /api/articles/:article_id/comments
// The article is checked before the user when both are missing.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("article_id")

	var req models.NewComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validation.BindingError(err))
		return
	}

	err := awaitAll(ctx,
		func(ctx context.Context) error {
			_, err := h.services.Article.GetArticle(ctx, articleID)
			return err
		},
		func(ctx context.Context) error {
			_, err := h.services.User.GetUser(ctx, req.Username)
			return err
		},
	)
	if err != nil {
		c.Error(err)
		return
	}

	comment, err := h.services.Comment.CreateComment(ctx, articleID, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateVotes handles PATCH /api/comments/:comment_id with {"inc_votes": n}
func (h *CommentHandler) UpdateVotes(c *gin.Context) {
	var req models.VoteUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		req.IncVotes = nil
	}

	comment, err := h.services.Comment.UpdateCommentVotes(c.Request.Context(), c.Param("comment_id"), req.IncVotes)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.services.Comment.DeleteComment(c.Request.Context(), c.Param("comment_id")); err != nil {
		c.Error(err)
		return
	}

	h.log.Debug().Str("comment_id", c.Param("comment_id")).Msg("Comment removed")
	c.Status(http.StatusNoContent)
}
