package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/InternHub/internhub-backend/internal/dto"
	"github.com/InternHub/internhub-backend/internal/repository"
	"gorm.io/gorm"
)

type CommunityService interface {
	CreatePost(authorID uint, input dto.CommunityPostInput) (*domain.CommunityPost, error)
	ListPosts(limit, offset int) ([]domain.CommunityPost, error)
	DeletePost(authorID uint, postID uint) error
}

type communityService struct {
	repo repository.CommunityPostRepository
}

func NewCommunityService(repo repository.CommunityPostRepository) CommunityService {
	return &communityService{repo: repo}
}

func (c *communityService) CreatePost(authorID uint, input dto.CommunityPostInput) (*domain.CommunityPost, error) {
	if authorID == 0 {
		return nil, ErrUnauthorized
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrValidation)
	}

	post := &domain.CommunityPost{
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		Tags:        input.Tags,
		Link:        input.Link,
	}

	if err := c.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (c *communityService) ListPosts(limit, offset int) ([]domain.CommunityPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return c.repo.List(limit, offset)
}

func (c *communityService) DeletePost(authorID uint, postID uint) error {
	if authorID == 0 {
		return ErrUnauthorized
	}

	post, err := c.repo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: post", ErrNotFound)
		}
		return err
	}
	if post.AuthorID != authorID {
		return fmt.Errorf("%w: post belongs to another user", ErrForbidden)
	}

	return c.repo.Delete(postID)
}
