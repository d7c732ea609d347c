package repositories

import "github.com/sulavmhrzn/BlogIt-API/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error
}

// CommentRepository defines the interface for comment data access.
// Comments are keyed under their post so every lookup is post-scoped.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(postID, id string) (*models.Comment, error)
	ListByPost(postID string) ([]*models.Comment, error)
	CountByPost(postID string) (int, error)
	Update(comment *models.Comment) error
	Delete(postID, id string) error
	DeleteByPost(postID string) error
}
