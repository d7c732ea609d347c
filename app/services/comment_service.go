package services

import (
	"github.com/sulavmhrzn/BlogIt-API/app/dto"
	"github.com/sulavmhrzn/BlogIt-API/app/models"
	"github.com/sulavmhrzn/BlogIt-API/app/policy"
	"github.com/sulavmhrzn/BlogIt-API/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// visiblePost resolves the parent post through the viewer's visibility
// filter. Comments on an invisible post are unreachable.
func (s *CommentService) visiblePost(viewer models.User, postID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if policy.CanViewPost(viewer, post) == policy.Deny {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

// ListComments returns all comments belonging to exactly one post.
func (s *CommentService) ListComments(viewer models.User, postID string) ([]*models.Comment, error) {
	post, err := s.visiblePost(viewer, postID)
	if err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(post.ID)
}

// CreateComment creates a comment on the given post. The user is the
// authenticated caller and the post comes from the URL path, never from
// the request body.
func (s *CommentService) CreateComment(actor models.User, postID string, input dto.CommentInput) (*models.Comment, error) {
	post, err := s.visiblePost(actor, postID)
	if err != nil {
		return nil, err
	}

	if err := checkInput(input); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: post.ID,
		Text:   input.Text,
		User:   actor,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment fully replaces a comment's text. Only the comment's
// user or a staff user may update.
func (s *CommentService) UpdateComment(actor models.User, postID, id string, input dto.CommentInput) (*models.Comment, error) {
	if _, err := s.visiblePost(actor, postID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(postID, id)
	if err != nil {
		return nil, err
	}

	if policy.CanModifyComment(actor, comment) == policy.Deny {
		return nil, ErrForbidden
	}

	if err := checkInput(input); err != nil {
		return nil, err
	}

	comment.Text = input.Text

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment deletes a comment. Only the comment's user or a staff
// user may delete.
func (s *CommentService) DeleteComment(actor models.User, postID, id string) error {
	if _, err := s.visiblePost(actor, postID); err != nil {
		return err
	}

	comment, err := s.commentRepo.GetByID(postID, id)
	if err != nil {
		return err
	}

	if policy.CanModifyComment(actor, comment) == policy.Deny {
		return ErrForbidden
	}

	return s.commentRepo.Delete(postID, id)
}
