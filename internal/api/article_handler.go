package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /api/articles?sort_by=&order=&topic=&limit=&p=
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	list, err := h.services.Article.ListArticles(c.Request.Context(), validation.ArticleListQuery{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Topic:  c.Query("topic"),
		Limit:  c.Query("limit"),
		Page:   c.Query("p"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.services.Article.GetArticle(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// CreateArticle handles POST /api/articles
// Author and topic are checked concurrently; the author's failure is
// reported when both fail.
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.NewArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validation.BindingError(err))
		return
	}

	err := awaitAll(ctx,
		func(ctx context.Context) error {
			_, err := h.services.User.GetUser(ctx, req.Author)
			return err
		},
		func(ctx context.Context) error {
			_, err := h.services.Topic.GetTopic(ctx, req.Topic)
			return err
		},
	)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := h.services.Article.CreateArticle(ctx, req)
	if err != nil {
		c.Error(err)
		return
	}

	article, err := h.services.Article.GetArticle(ctx, strconv.Itoa(id))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// UpdateVotes handles PATCH /api/articles/:article_id with {"inc_votes": n}
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	var req models.VoteUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body is reported as a non-numeric delta, after the id check
		req.IncVotes = nil
	}

	article, err := h.services.Article.UpdateArticleVotes(c.Request.Context(), c.Param("article_id"), req.IncVotes)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}
