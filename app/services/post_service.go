package services

import (
	"fmt"
	"sort"

	"github.com/sulavmhrzn/BlogIt-API/app/dto"
	"github.com/sulavmhrzn/BlogIt-API/app/models"
	"github.com/sulavmhrzn/BlogIt-API/app/policy"
	"github.com/sulavmhrzn/BlogIt-API/app/repositories"
)

// PageSize is the fixed number of posts per listing page.
const PageSize = 25

// PostFilter narrows a post listing. A nil IsActive means no filter,
// Tag matches tag labels by case-insensitive substring.
type PostFilter struct {
	IsActive *bool
	Tag      string
}

// PostPage is one page of a role-filtered post listing. Count is the
// total across all pages.
type PostPage struct {
	Count int
	Posts []*models.Post
}

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost creates a new post authored by the caller. The author is
// always the authenticated user, never client input.
func (s *PostService) CreatePost(author models.User, input dto.PostInput) (*models.Post, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		IsActive:    input.Active(),
		Author:      author,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID through the viewer's visibility
// filter: a post invisible to the viewer is indistinguishable from a
// missing one.
func (s *PostService) GetPost(viewer models.User, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if policy.CanViewPost(viewer, post) == policy.Deny {
		return nil, repositories.ErrNotFound
	}

	count, err := s.commentRepo.CountByPost(post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %v", err)
	}
	post.CommentsCount = count

	return post, nil
}

// ListPosts returns one page of the posts visible to the viewer,
// filtered, annotated with comment counts and ordered newest first.
// A page beyond the last one yields an empty result set, not an error.
func (s *PostService) ListPosts(viewer models.User, filter PostFilter, page int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}

	all, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	visible := []*models.Post{}
	for _, post := range all {
		if policy.CanViewPost(viewer, post) == policy.Deny {
			continue
		}
		if filter.IsActive != nil && post.IsActive != *filter.IsActive {
			continue
		}
		if filter.Tag != "" && !post.HasTag(filter.Tag) {
			continue
		}
		visible = append(visible, post)
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})

	count := len(visible)
	start := (page - 1) * PageSize
	if start > count {
		start = count
	}
	end := start + PageSize
	if end > count {
		end = count
	}
	results := visible[start:end]

	for _, post := range results {
		c, err := s.commentRepo.CountByPost(post.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count comments for post %s: %v", post.ID, err)
		}
		post.CommentsCount = c
	}

	return &PostPage{Count: count, Posts: results}, nil
}

// UpdatePost fully replaces a post's client-writable fields. Only the
// owner or a staff user may update; id, slug, author and created_at
// are preserved.
func (s *PostService) UpdatePost(actor models.User, id string, input dto.PostInput) (*models.Post, error) {
	post, err := s.GetPost(actor, id)
	if err != nil {
		return nil, err
	}

	if policy.CanModifyPost(actor, post) == policy.Deny {
		return nil, ErrForbidden
	}

	if err := checkInput(input); err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Description = input.Description
	post.Tags = input.Tags
	post.IsActive = input.Active()

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post and all its comments. Only the owner or a
// staff user may delete.
func (s *PostService) DeletePost(actor models.User, id string) error {
	post, err := s.GetPost(actor, id)
	if err != nil {
		return err
	}

	if policy.CanModifyPost(actor, post) == policy.Deny {
		return ErrForbidden
	}

	// Cascade to comments first
	if err := s.commentRepo.DeleteByPost(post.ID); err != nil {
		return fmt.Errorf("failed to delete comments: %v", err)
	}

	return s.postRepo.Delete(post.ID)
}
