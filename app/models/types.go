package models

import "time"

// User is the identity snapshot supplied by the external identity
// provider. It is embedded on posts and comments at creation time and
// never set from client input.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

// Post represents a blog post.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Slug        string    `json:"slug"`
	Tags        []string  `json:"tags"`
	IsActive    bool      `json:"is_active"`
	Author      User      `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// CommentsCount is computed at query time and never stored.
	CommentsCount int `json:"-"`
}

// Comment represents a comment on a blog post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Text      string    `json:"text" validate:"required"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
