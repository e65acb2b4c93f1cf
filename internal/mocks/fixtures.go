package mocks

import (
	"time"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// Store bundles the in-memory repositories so tests can reach their state
type Store struct {
	Topics   *MockTopicRepository
	Users    *MockUserRepository
	Articles *MockArticleRepository
	Comments *MockCommentRepository
}

// Repositories exposes the store through the repository interfaces
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Topic:   s.Topics,
		User:    s.Users,
		Article: s.Articles,
		Comment: s.Comments,
	}
}

// NewStore returns empty in-memory repositories
func NewStore() *Store {
	comments := NewMockCommentRepository()
	return &Store{
		Topics:   NewMockTopicRepository(),
		Users:    NewMockUserRepository(),
		Articles: NewMockArticleRepository(comments),
		Comments: comments,
	}
}

// NewSeededStore returns repositories holding a small fixed dataset:
// three topics (one without articles), four users, five articles and
// six comments. Article 1 has 100 votes and three comments; article 2 has
// none.
func NewSeededStore() *Store {
	s := NewStore()
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Topics.Topics = []*models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "paper", Description: "what books are made of"},
	}

	s.Users.Users = []*models.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/butter_bridge.jpg"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://example.com/icellusedkars.jpg"},
		{Username: "rogersop", Name: "paul", AvatarURL: "https://example.com/rogersop.jpg"},
		{Username: "lurker", Name: "do_nothing", AvatarURL: "https://example.com/lurker.jpg"},
	}

	articles := []models.Article{
		{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge",
			Body: "I find this existence challenging", Votes: 100, CreatedAt: base.Add(50 * time.Hour)},
		{ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars",
			Body: "Call me Mitchell.", Votes: 0, CreatedAt: base.Add(40 * time.Hour)},
		{ArticleID: 3, Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars",
			Body: "some gifs", Votes: 0, CreatedAt: base.Add(30 * time.Hour)},
		{ArticleID: 4, Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop",
			Body: "We all love Mitch and his wonderful, unique typing style.", Votes: 5, CreatedAt: base.Add(20 * time.Hour)},
		{ArticleID: 5, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop",
			Body: "Bastet walks amongst us, and the cats are taking arms!", Votes: 2, CreatedAt: base.Add(10 * time.Hour)},
	}
	for i := range articles {
		articles[i].ArticleImgURL = models.DefaultArticleImgURL
		s.Articles.Add(&articles[i])
	}

	comments := []models.Comment{
		{CommentID: 1, ArticleID: 1, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal!", Votes: 16, CreatedAt: base.Add(60 * time.Hour)},
		{CommentID: 2, ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists.", Votes: 14, CreatedAt: base.Add(55 * time.Hour)},
		{CommentID: 3, ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie", Votes: -100, CreatedAt: base.Add(70 * time.Hour)},
		{CommentID: 4, ArticleID: 3, Author: "icellusedkars", Body: "I hate streaming noses", Votes: 0, CreatedAt: base.Add(35 * time.Hour)},
		{CommentID: 5, ArticleID: 3, Author: "rogersop", Body: "I hate streaming eyes even more", Votes: 0, CreatedAt: base.Add(36 * time.Hour)},
		{CommentID: 6, ArticleID: 5, Author: "butter_bridge", Body: "What do you see? I have no idea where this will lead us.", Votes: 16, CreatedAt: base.Add(12 * time.Hour)},
	}
	for i := range comments {
		s.Comments.Add(&comments[i])
	}

	return s
}
