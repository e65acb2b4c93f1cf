package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// Verify interface compliance
var (
	_ repository.TopicRepository   = (*MockTopicRepository)(nil)
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.ArticleRepository = (*MockArticleRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
)

// MockTopicRepository is an in-memory TopicRepository
type MockTopicRepository struct {
	mu       sync.RWMutex
	Topics   []*models.Topic
	GetError error
}

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]*models.Topic, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*models.Topic{}, m.Topics...), nil
}

func (m *MockTopicRepository) GetBySlug(ctx context.Context, slug string) (*models.Topic, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	for _, t := range m.Topics {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, nil
}

func (m *MockTopicRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Topics), nil
}

// MockUserRepository is an in-memory UserRepository
type MockUserRepository struct {
	mu       sync.RWMutex
	Users    []*models.User
	GetError error
	GetCalls int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*models.User{}, m.Users...), nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.GetError != nil {
		return nil, m.GetError
	}
	for _, u := range m.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Users), nil
}

// MockArticleRepository is an in-memory ArticleRepository. Comment counts
// are derived from Comments when set.
type MockArticleRepository struct {
	mu          sync.RWMutex
	Articles    map[int]*models.Article
	Comments    *MockCommentRepository
	nextID      int
	ListError   error
	InsertError error
	ListCalls   int
}

func NewMockArticleRepository(comments *MockCommentRepository) *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int]*models.Article),
		Comments: comments,
		nextID:   1,
	}
}

// Add stores a copy of article, assigning an id when it has none
func (m *MockArticleRepository) Add(article *models.Article) *models.Article {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *article
	if stored.ArticleID == 0 {
		stored.ArticleID = m.nextID
	}
	if stored.ArticleID >= m.nextID {
		m.nextID = stored.ArticleID + 1
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	m.Articles[stored.ArticleID] = &stored
	return &stored
}

func (m *MockArticleRepository) withCount(a *models.Article) *models.Article {
	out := *a
	if m.Comments != nil {
		out.CommentCount = m.Comments.countFor(a.ArticleID)
	}
	return &out
}

func (m *MockArticleRepository) matching(filter models.ArticleFilter) []*models.Article {
	var out []*models.Article
	for _, a := range m.Articles {
		if filter.Topic != "" && a.Topic != filter.Topic {
			continue
		}
		out = append(out, m.withCount(a))
	}
	return out
}

func (m *MockArticleRepository) List(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.ListError != nil {
		return nil, m.ListError
	}

	articles := m.matching(filter)
	sort.SliceStable(articles, func(i, j int) bool {
		c := compareArticles(articles[i], articles[j], filter.SortBy)
		if c == 0 {
			return articles[i].ArticleID < articles[j].ArticleID
		}
		if filter.Order == models.OrderAsc {
			return c < 0
		}
		return c > 0
	})

	if filter.Paginate {
		start := filter.Offset()
		if start > len(articles) {
			start = len(articles)
		}
		end := start + filter.Limit
		if end > len(articles) {
			end = len(articles)
		}
		articles = articles[start:end]
	}

	out := make([]*models.Article, 0, len(articles))
	for _, a := range articles {
		a.Body = ""
		out = append(out, a)
	}
	return out, nil
}

func compareArticles(a, b *models.Article, sortBy models.ArticleSort) int {
	switch sortBy {
	case models.SortByVotes:
		return a.Votes - b.Votes
	case models.SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case models.SortByTopic:
		return strings.Compare(a.Topic, b.Topic)
	case models.SortByAuthor:
		return strings.Compare(a.Author, b.Author)
	case models.SortByCommentCount:
		return a.CommentCount - b.CommentCount
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func (m *MockArticleRepository) CountMatching(ctx context.Context, filter models.ArticleFilter) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.matching(filter)), nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	return m.withCount(a), nil
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) (int, error) {
	if m.InsertError != nil {
		return 0, m.InsertError
	}
	stored := *article
	stored.ArticleID = 0
	stored.Votes = 0
	stored.CreatedAt = time.Now()
	return m.Add(&stored).ArticleID, nil
}

func (m *MockArticleRepository) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	a.Votes += delta
	return m.withCount(a), nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Articles), nil
}

// MockCommentRepository is an in-memory CommentRepository
type MockCommentRepository struct {
	mu          sync.RWMutex
	Comments    map[int]*models.Comment
	nextID      int
	InsertError error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int]*models.Comment),
		nextID:   1,
	}
}

// Add stores a copy of comment, assigning an id when it has none
func (m *MockCommentRepository) Add(comment *models.Comment) *models.Comment {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *comment
	if stored.CommentID == 0 {
		stored.CommentID = m.nextID
	}
	if stored.CommentID >= m.nextID {
		m.nextID = stored.CommentID + 1
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	m.Comments[stored.CommentID] = &stored
	return &stored
}

func (m *MockCommentRepository) countFor(articleID int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int) ([]*models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	comments := []*models.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			copied := *c
			comments = append(comments, &copied)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if m.InsertError != nil {
		return nil, m.InsertError
	}
	stored := *comment
	stored.CommentID = 0
	stored.Votes = 0
	stored.CreatedAt = time.Now()
	return m.Add(&stored), nil
}

func (m *MockCommentRepository) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	c.Votes += delta
	copied := *c
	return &copied, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Comments), nil
}
