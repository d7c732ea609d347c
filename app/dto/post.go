package dto

import (
	"time"

	"github.com/sulavmhrzn/BlogIt-API/app/models"
)

// PostInput is the write payload for posts. Slug and author are absent
// on purpose: both are server-derived and any value a client supplies
// for them is ignored.
type PostInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags"`
	IsActive    *bool    `json:"is_active"`
}

// Active returns the requested is_active value, defaulting to true when
// the field is omitted.
func (in PostInput) Active() bool {
	if in.IsActive == nil {
		return true
	}
	return *in.IsActive
}

// PostListItem is the reduced shape used for collection listings. It
// omits the description.
type PostListItem struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Tags          []string  `json:"tags"`
	IsActive      bool      `json:"is_active"`
	CommentsCount int       `json:"comments_count"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PostDetail is the full shape used for every single-item response.
type PostDetail struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Tags          []string  `json:"tags"`
	IsActive      bool      `json:"is_active"`
	CommentsCount int       `json:"comments_count"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewPostListItem projects a post into the list shape.
func NewPostListItem(p *models.Post) PostListItem {
	return PostListItem{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Tags:          tags(p),
		IsActive:      p.IsActive,
		CommentsCount: p.CommentsCount,
		Author:        p.Author.Username,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// NewPostDetail projects a post into the detail shape.
func NewPostDetail(p *models.Post) PostDetail {
	return PostDetail{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Description:   p.Description,
		Tags:          tags(p),
		IsActive:      p.IsActive,
		CommentsCount: p.CommentsCount,
		Author:        p.Author.Username,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// NewPostList projects a page of posts into the list shape.
func NewPostList(posts []*models.Post) []PostListItem {
	items := make([]PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, NewPostListItem(p))
	}
	return items
}

// tags never renders null for an empty tag set.
func tags(p *models.Post) []string {
	if p.Tags == nil {
		return []string{}
	}
	return p.Tags
}
