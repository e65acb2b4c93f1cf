package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/news-api/internal/api"
	"github.com/news-api/internal/config"
	"github.com/news-api/internal/mocks"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStoreStatus struct {
	pingErr error
}

func (f fakeStoreStatus) HealthCheck(ctx context.Context) error { return f.pingErr }

func (f fakeStoreStatus) Stats() sql.DBStats {
	return sql.DBStats{OpenConnections: 2, InUse: 1, Idle: 1}
}

func setupTestRouter(t *testing.T) (*gin.Engine, *mocks.Store) {
	t.Helper()
	return setupTestRouterWithStatus(t, fakeStoreStatus{})
}

func setupTestRouterWithStatus(t *testing.T, status api.StoreStatus) (*gin.Engine, *mocks.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := mocks.NewSeededStore()
	log := zerolog.Nop()
	services := service.NewServices(store.Repositories(), log)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "9090", RequestTimeout: 5 * time.Second},
	}

	return api.NewRouter(services, status, cfg, log), store
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func assertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	assert.Equal(t, status, w.Code, "body: %s", w.Body.String())
	assert.Equal(t, map[string]interface{}{"msg": msg}, decodeBody(t, w))
}

type articleListResponse struct {
	Articles   []map[string]interface{} `json:"articles"`
	TotalCount int                      `json:"total_count"`
}

func listArticles(t *testing.T, router http.Handler, query string) articleListResponse {
	t.Helper()
	w := doRequest(t, router, http.MethodGet, "/api/articles"+query, nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var resp articleListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func articleIDs(articles []map[string]interface{}) []int {
	ids := make([]int, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, int(a["article_id"].(float64)))
	}
	return ids
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "news-api", body["service"])
}

func TestHealthEndpoint_DatabaseDown(t *testing.T) {
	router, _ := setupTestRouterWithStatus(t, fakeStoreStatus{pingErr: errors.New("connection refused")})

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unhealthy", decodeBody(t, w)["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	database := body["database"].(map[string]interface{})
	assert.Equal(t, float64(3), database["topics"])
	assert.Equal(t, float64(4), database["users"])
	assert.Equal(t, float64(5), database["articles"])
	assert.Equal(t, float64(6), database["comments"])

	pool := body["pool"].(map[string]interface{})
	assert.Equal(t, float64(2), pool["open_connections"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestEndpointsDescription(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	for _, endpoint := range []string{
		"GET /api/topics",
		"GET /api/articles",
		"POST /api/articles",
		"PATCH /api/articles/:article_id",
		"DELETE /api/comments/:comment_id",
		"GET /api/users/:username",
	} {
		assert.Contains(t, body, endpoint)
	}
}

func TestUnknownPath(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/not-a-route"},
		{http.MethodGet, "/api/topicz"},
		{http.MethodGet, "/nothing/here"},
		{http.MethodGet, "/api/topics/"},
		{http.MethodGet, "/api/articles/1/"},
		{http.MethodPost, "/api/topics"},
		{http.MethodPut, "/api/articles/1"},
		{http.MethodDelete, "/api/articles"},
		{http.MethodPatch, "/api/users/lurker"},
		{http.MethodPost, "/api/nowhere"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doRequest(t, router, tt.method, tt.path, nil)
			assertErrorResponse(t, w, http.StatusNotFound, "Path Not Found")
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/topics", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodOptions, "/api/articles/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestListTopics(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/topics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Topics []models.Topic `json:"topics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Topics, 3)
	for _, topic := range resp.Topics {
		assert.NotEmpty(t, topic.Slug)
		assert.NotEmpty(t, topic.Description)
	}
}

func TestListArticles_Defaults(t *testing.T) {
	router, _ := setupTestRouter(t)

	resp := listArticles(t, router, "")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, articleIDs(resp.Articles))
	assert.Equal(t, 5, resp.TotalCount)

	for _, a := range resp.Articles {
		assert.NotContains(t, a, "body")
		for _, key := range []string{"author", "title", "topic", "created_at", "votes", "article_img_url", "comment_count"} {
			assert.Contains(t, a, key)
		}
	}
	assert.Equal(t, float64(3), resp.Articles[0]["comment_count"])
}

func TestListArticles_Sorting(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		query string
		want  []int
	}{
		{"?sort_by=votes", []int{1, 4, 5, 2, 3}},
		{"?sort_by=votes&order=asc", []int{2, 3, 5, 4, 1}},
		{"?sort_by=title&order=asc", []int{3, 1, 2, 4, 5}},
		{"?sort_by=author&order=asc", []int{1, 2, 3, 4, 5}},
		{"?order=asc", []int{5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp := listArticles(t, router, tt.query)
			assert.Equal(t, tt.want, articleIDs(resp.Articles))
		})
	}
}

func TestListArticles_TopicFilter(t *testing.T) {
	router, _ := setupTestRouter(t)

	resp := listArticles(t, router, "?topic=mitch")
	require.Len(t, resp.Articles, 4)
	for _, a := range resp.Articles {
		assert.Equal(t, "mitch", a["topic"])
	}
	assert.Equal(t, 4, resp.TotalCount)

	// An empty topic value means no filter
	resp = listArticles(t, router, "?topic=")
	assert.Len(t, resp.Articles, 5)
}

func TestListArticles_Pagination(t *testing.T) {
	router, _ := setupTestRouter(t)

	resp := listArticles(t, router, "?limit=2")
	assert.Equal(t, []int{1, 2}, articleIDs(resp.Articles))
	assert.Equal(t, 5, resp.TotalCount)

	resp = listArticles(t, router, "?limit=2&p=3")
	assert.Equal(t, []int{5}, articleIDs(resp.Articles))
	assert.Equal(t, 5, resp.TotalCount)

	resp = listArticles(t, router, "?p=1")
	assert.Len(t, resp.Articles, 5)
}

func TestListArticles_Errors(t *testing.T) {
	router, store := setupTestRouter(t)

	tests := []struct {
		name   string
		query  string
		status int
		msg    string
	}{
		{"invalid sort", "?sort_by=body", http.StatusBadRequest, "Invalid sort by query"},
		{"invalid order", "?order=up", http.StatusBadRequest, "Invalid order query"},
		{"upper-case order", "?order=DESC", http.StatusBadRequest, "Invalid order query"},
		{"mixed-case order", "?order=Asc", http.StatusBadRequest, "Invalid order query"},
		{"hex topic", "?topic=0x10", http.StatusBadRequest, "Invalid topic query"},
		{"sort reported before order", "?sort_by=nope&order=up", http.StatusBadRequest, "Invalid sort by query"},
		{"order reported before topic", "?order=up&topic=1", http.StatusBadRequest, "Invalid order query"},
		{"numeric topic", "?topic=123", http.StatusBadRequest, "Invalid topic query"},
		{"bad limit", "?limit=ten", http.StatusBadRequest, "Invalid limit query"},
		{"negative page", "?p=-1", http.StatusBadRequest, "Invalid page query"},
		{"topic with no articles", "?topic=paper", http.StatusNotFound, "No Articles Found"},
		{"unknown topic", "?topic=not_a_topic", http.StatusNotFound, "No Articles Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, "/api/articles"+tt.query, nil)
			assertErrorResponse(t, w, tt.status, tt.msg)
		})
	}

	// Only the two not-found cases reach the store
	assert.Equal(t, 2, store.Articles.ListCalls)
}

func TestGetArticle(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/articles/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	article := decodeBody(t, w)["article"].(map[string]interface{})
	assert.Equal(t, float64(1), article["article_id"])
	assert.Equal(t, "butter_bridge", article["author"])
	assert.Equal(t, "I find this existence challenging", article["body"])
	assert.Equal(t, float64(100), article["votes"])
	assert.Equal(t, float64(3), article["comment_count"])

	// Repeated reads are identical
	again := doRequest(t, router, http.MethodGet, "/api/articles/1", nil)
	assert.Equal(t, w.Body.String(), again.Body.String())
}

func TestGetArticle_Errors(t *testing.T) {
	router, _ := setupTestRouter(t)

	assertErrorResponse(t, doRequest(t, router, http.MethodGet, "/api/articles/banana", nil),
		http.StatusBadRequest, "Invalid Article ID")
	assertErrorResponse(t, doRequest(t, router, http.MethodGet, "/api/articles/9999", nil),
		http.StatusNotFound, "Article 9999 Not Found")
}

func TestCreateArticle(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/articles", map[string]string{
		"author": "lurker",
		"title":  "Paper is underrated",
		"body":   "An essay on paper.",
		"topic":  "paper",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	created := decodeBody(t, w)["article"].(map[string]interface{})
	assert.Equal(t, float64(6), created["article_id"])
	assert.Equal(t, "lurker", created["author"])
	assert.Equal(t, "Paper is underrated", created["title"])
	assert.Equal(t, "An essay on paper.", created["body"])
	assert.Equal(t, "paper", created["topic"])
	assert.Equal(t, float64(0), created["votes"])
	assert.Equal(t, float64(0), created["comment_count"])
	assert.Equal(t, models.DefaultArticleImgURL, created["article_img_url"])

	got := doRequest(t, router, http.MethodGet, "/api/articles/6", nil)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, created, decodeBody(t, got)["article"])

	resp := listArticles(t, router, "?topic=paper")
	assert.Equal(t, []int{6}, articleIDs(resp.Articles))
}

func TestCreateArticle_Errors(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name   string
		body   interface{}
		status int
		msg    string
	}{
		{
			name:   "missing title",
			body:   map[string]string{"author": "lurker", "body": "b", "topic": "cats"},
			status: http.StatusBadRequest,
			msg:    "Missing required field: title",
		},
		{
			name:   "malformed json",
			body:   `{"author": `,
			status: http.StatusBadRequest,
			msg:    "Invalid request body",
		},
		{
			name:   "numeric author",
			body:   map[string]string{"author": "42", "title": "t", "body": "b", "topic": "cats"},
			status: http.StatusBadRequest,
			msg:    "Invalid username",
		},
		{
			name:   "unknown author reported before unknown topic",
			body:   map[string]string{"author": "nobody", "title": "t", "body": "b", "topic": "dogs"},
			status: http.StatusNotFound,
			msg:    "User nobody Not Found",
		},
		{
			name:   "unknown topic",
			body:   map[string]string{"author": "lurker", "title": "t", "body": "b", "topic": "dogs"},
			status: http.StatusNotFound,
			msg:    "Topic dogs Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/articles", tt.body)
			assertErrorResponse(t, w, tt.status, tt.msg)
		})
	}
}

func TestUpdateArticleVotes(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPatch, "/api/articles/1", map[string]interface{}{"inc_votes": 10})
	require.Equal(t, http.StatusOK, w.Code)
	article := decodeBody(t, w)["article"].(map[string]interface{})
	assert.Equal(t, float64(110), article["votes"])
	assert.Equal(t, float64(3), article["comment_count"])

	w = doRequest(t, router, http.MethodPatch, "/api/articles/1", map[string]interface{}{"inc_votes": -200})
	require.Equal(t, http.StatusOK, w.Code)
	article = decodeBody(t, w)["article"].(map[string]interface{})
	assert.Equal(t, float64(-90), article["votes"])
}

func TestUpdateArticleVotes_Errors(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name   string
		path   string
		body   interface{}
		status int
		msg    string
	}{
		{"non-numeric delta", "/api/articles/1", map[string]interface{}{"inc_votes": "lots"}, http.StatusBadRequest, "inc_votes must be a number"},
		{"missing delta", "/api/articles/1", map[string]interface{}{}, http.StatusBadRequest, "inc_votes must be a number"},
		{"empty body", "/api/articles/1", nil, http.StatusBadRequest, "inc_votes must be a number"},
		{"id checked before delta", "/api/articles/abc", map[string]interface{}{"inc_votes": "lots"}, http.StatusBadRequest, "Invalid Article ID"},
		{"unknown article", "/api/articles/9999", map[string]interface{}{"inc_votes": 1}, http.StatusNotFound, "Article 9999 Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPatch, tt.path, tt.body)
			assertErrorResponse(t, w, tt.status, tt.msg)
		})
	}
}

func TestListComments(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/articles/1/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Comments []models.Comment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Comments, 3)
	for i, comment := range resp.Comments {
		assert.Equal(t, 1, comment.ArticleID)
		if i > 0 {
			assert.False(t, comment.CreatedAt.After(resp.Comments[i-1].CreatedAt))
		}
	}

	w = doRequest(t, router, http.MethodGet, "/api/articles/2/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"comments": []}`, w.Body.String())
}

func TestListComments_Errors(t *testing.T) {
	router, _ := setupTestRouter(t)

	assertErrorResponse(t, doRequest(t, router, http.MethodGet, "/api/articles/abc/comments", nil),
		http.StatusBadRequest, "Invalid Article ID")
	assertErrorResponse(t, doRequest(t, router, http.MethodGet, "/api/articles/9999/comments", nil),
		http.StatusNotFound, "Article 9999 Not Found")
}

func TestCreateComment(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/articles/3/comments", map[string]string{
		"username": "lurker",
		"body":     "Nice gifs",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	comment := decodeBody(t, w)["comment"].(map[string]interface{})
	assert.Equal(t, float64(7), comment["comment_id"])
	assert.Equal(t, float64(3), comment["article_id"])
	assert.Equal(t, "lurker", comment["author"])
	assert.Equal(t, "Nice gifs", comment["body"])
	assert.Equal(t, float64(0), comment["votes"])
	assert.NotEmpty(t, comment["created_at"])

	w = doRequest(t, router, http.MethodGet, "/api/articles/3/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	comments := decodeBody(t, w)["comments"].([]interface{})
	require.Len(t, comments, 3)
	assert.Equal(t, float64(7), comments[0].(map[string]interface{})["comment_id"])

	w = doRequest(t, router, http.MethodGet, "/api/articles/3", nil)
	article := decodeBody(t, w)["article"].(map[string]interface{})
	assert.Equal(t, float64(3), article["comment_count"])
}

func TestCreateComment_Errors(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name   string
		path   string
		body   interface{}
		status int
		msg    string
	}{
		{"missing body", "/api/articles/1/comments", map[string]string{"username": "lurker"}, http.StatusBadRequest, "Missing required field: body"},
		{"missing username", "/api/articles/1/comments", map[string]string{"body": "hi"}, http.StatusBadRequest, "Missing required field: username"},
		{"invalid article id", "/api/articles/abc/comments", map[string]string{"username": "lurker", "body": "hi"}, http.StatusBadRequest, "Invalid Article ID"},
		{"body checked before article id", "/api/articles/abc/comments", `{"username": `, http.StatusBadRequest, "Invalid request body"},
		{"missing field checked before article id", "/api/articles/abc/comments", map[string]string{"username": "lurker"}, http.StatusBadRequest, "Missing required field: body"},
		{"unknown article reported before unknown user", "/api/articles/9999/comments", map[string]string{"username": "nobody", "body": "hi"}, http.StatusNotFound, "Article 9999 Not Found"},
		{"unknown user", "/api/articles/1/comments", map[string]string{"username": "nobody", "body": "hi"}, http.StatusNotFound, "User nobody Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, tt.path, tt.body)
			assertErrorResponse(t, w, tt.status, tt.msg)
		})
	}
}

func TestUpdateCommentVotes(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPatch, "/api/comments/1", map[string]interface{}{"inc_votes": 1})
	require.Equal(t, http.StatusOK, w.Code)
	comment := decodeBody(t, w)["comment"].(map[string]interface{})
	assert.Equal(t, float64(17), comment["votes"])

	w = doRequest(t, router, http.MethodPatch, "/api/comments/1", map[string]interface{}{"inc_votes": "-7"})
	require.Equal(t, http.StatusOK, w.Code)
	comment = decodeBody(t, w)["comment"].(map[string]interface{})
	assert.Equal(t, float64(10), comment["votes"])

	assertErrorResponse(t, doRequest(t, router, http.MethodPatch, "/api/comments/1", map[string]interface{}{"inc_votes": "x"}),
		http.StatusBadRequest, "Invalid inc_votes: must be a number")
	assertErrorResponse(t, doRequest(t, router, http.MethodPatch, "/api/comments/one", map[string]interface{}{"inc_votes": "x"}),
		http.StatusBadRequest, "Invalid Comment ID")
	assertErrorResponse(t, doRequest(t, router, http.MethodPatch, "/api/comments/999", map[string]interface{}{"inc_votes": 1}),
		http.StatusNotFound, "Comment 999 Not Found")
}

func TestDeleteComment(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodDelete, "/api/comments/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/api/articles/1/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	comments := decodeBody(t, w)["comments"].([]interface{})
	assert.Len(t, comments, 2)
	for _, c := range comments {
		assert.NotEqual(t, float64(1), c.(map[string]interface{})["comment_id"])
	}

	assertErrorResponse(t, doRequest(t, router, http.MethodDelete, "/api/comments/1", nil),
		http.StatusNotFound, "Comment 1 Not Found")
	assertErrorResponse(t, doRequest(t, router, http.MethodDelete, "/api/comments/abc", nil),
		http.StatusBadRequest, "Invalid Comment ID")
}

func TestUsers(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decodeBody(t, w)["users"].([]interface{})
	assert.Len(t, users, 4)

	w = doRequest(t, router, http.MethodGet, "/api/users/lurker", nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "lurker", user["username"])
	assert.Equal(t, "do_nothing", user["name"])
	assert.Contains(t, user, "avatar_url")

	assertErrorResponse(t, doRequest(t, router, http.MethodGet, "/api/users/123", nil),
		http.StatusBadRequest, "Invalid username")
	assertErrorResponse(t, doRequest(t, router, http.MethodGet, "/api/users/nobody", nil),
		http.StatusNotFound, "User nobody Not Found")
}

func TestErrorNormalizer_PostgresConstraint(t *testing.T) {
	router, store := setupTestRouter(t)
	store.Articles.InsertError = &pq.Error{Code: "23503", Message: "insert or update violates foreign key constraint"}

	w := doRequest(t, router, http.MethodPost, "/api/articles", map[string]string{
		"author": "lurker", "title": "t", "body": "b", "topic": "cats",
	})
	assertErrorResponse(t, w, http.StatusBadRequest, "Bad Request")
}

func TestErrorNormalizer_UnexpectedError(t *testing.T) {
	router, store := setupTestRouter(t)
	store.Articles.ListError = errors.New("connection reset by peer")

	w := doRequest(t, router, http.MethodGet, "/api/articles", nil)
	assertErrorResponse(t, w, http.StatusInternalServerError, "Internal Server Error")
	assert.False(t, strings.Contains(w.Body.String(), "connection reset"))
}

func TestRecovery(t *testing.T) {
	router, _ := setupTestRouter(t)
	router.GET("/api/boom", func(c *gin.Context) {
		panic("unexpected")
	})

	w := doRequest(t, router, http.MethodGet, "/api/boom", nil)
	assertErrorResponse(t, w, http.StatusInternalServerError, "Internal Server Error")
}
