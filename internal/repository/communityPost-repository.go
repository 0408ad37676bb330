package repository

import (
	"github.com/InternHub/internhub-backend/internal/domain"
	"gorm.io/gorm"
)

type CommunityPostRepository interface {
	Create(post *domain.CommunityPost) error
	FindByID(postID uint) (*domain.CommunityPost, error)
	List(limit, offset int) ([]domain.CommunityPost, error)
	Delete(postID uint) error
}

type communityPostRepository struct {
	db *gorm.DB
}

func NewCommunityPostRepository(db *gorm.DB) CommunityPostRepository {
	return &communityPostRepository{db: db}
}

func (c *communityPostRepository) Create(post *domain.CommunityPost) error {
	return c.db.Create(post).Error
}

func (c *communityPostRepository) FindByID(postID uint) (*domain.CommunityPost, error) {
	var post domain.CommunityPost
	if err := c.db.First(&post, postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *communityPostRepository) List(limit, offset int) ([]domain.CommunityPost, error) {
	var posts []domain.CommunityPost
	err := c.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *communityPostRepository) Delete(postID uint) error {
	return c.db.Delete(&domain.CommunityPost{}, postID).Error
}
