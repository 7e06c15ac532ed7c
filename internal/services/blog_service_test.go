package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"robohub/internal/models"
	"robohub/internal/repositories"
	"robohub/internal/services"
)

// MockBlogRepository is a mock implementation of repositories.BlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) List(limit, offset int) ([]models.BlogPost, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetRelated(postID string, tags []string, limit int) ([]models.BlogPost, error) {
	args := m.Called(postID, tags, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) Create(post *models.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func TestBlogService_ListPosts(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := services.NewBlogService(mockRepo)

	expected := []models.BlogPost{{ID: "1", Slug: "a"}, {ID: "2", Slug: "b"}}
	mockRepo.On("List", 10, 0).Return(expected, nil).Once()

	posts := service.ListPosts(10, 0)
	assert.Equal(t, expected, posts)

	mockRepo.On("List", 10, 0).Return(nil, fmt.Errorf("backend unreachable")).Once()
	posts = service.ListPosts(10, 0)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
	mockRepo.AssertExpectations(t)
}

func TestBlogService_GetPostBySlugRendersMarkdown(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := services.NewBlogService(mockRepo)

	post := &models.BlogPost{
		ID:      "1",
		Slug:    "choosing-a-robot",
		Title:   "Choosing a Robot",
		Content: "# Choosing a Robot\n\n## Payload\n\nPayload matters.",
	}
	mockRepo.On("GetBySlug", "choosing-a-robot").Return(post, nil).Once()

	rendered := service.GetPostBySlug("choosing-a-robot")

	if assert.NotNil(t, rendered) {
		assert.Equal(t, "choosing-a-robot", rendered.Slug)
		assert.Contains(t, rendered.HTML, `<h2 id="payload">`)
		if assert.Len(t, rendered.TOC, 1) {
			assert.Equal(t, "payload", rendered.TOC[0].ID)
			assert.Equal(t, 2, rendered.TOC[0].Level)
		}
	}
	mockRepo.AssertExpectations(t)
}

func TestBlogService_GetPostBySlugAbsent(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := services.NewBlogService(mockRepo)

	mockRepo.On("GetBySlug", "missing").Return(nil, repositories.ErrNotFound).Once()
	assert.Nil(t, service.GetPostBySlug("missing"))

	mockRepo.On("GetBySlug", "broken").Return(nil, fmt.Errorf("backend unreachable")).Once()
	assert.Nil(t, service.GetPostBySlug("broken"))
	mockRepo.AssertExpectations(t)
}

func TestBlogService_GetRelatedPosts(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := services.NewBlogService(mockRepo)

	tags := []string{"SCARA"}
	expected := []models.BlogPost{{ID: "2", Slug: "other"}}
	mockRepo.On("GetRelated", "1", tags, 3).Return(expected, nil).Once()

	related := service.GetRelatedPosts("1", tags, 3)
	assert.Equal(t, expected, related)

	mockRepo.On("GetRelated", "1", tags, 3).Return(nil, fmt.Errorf("backend unreachable")).Once()
	related = service.GetRelatedPosts("1", tags, 3)
	assert.NotNil(t, related)
	assert.Empty(t, related)
	mockRepo.AssertExpectations(t)
}
