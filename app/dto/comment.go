package dto

import "github.com/sulavmhrzn/BlogIt-API/app/models"

// CommentInput is the write payload for comments. The post reference
// comes from the URL path and the user from the authenticated caller,
// so neither is accepted here.
type CommentInput struct {
	Text string `json:"text" validate:"required"`
}

// CommentResponse is the comment shape: no post reference, the post is
// implicit from the URL.
type CommentResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	User string `json:"user"`
}

// NewCommentResponse projects a comment into its response shape.
func NewCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:   c.ID,
		Text: c.Text,
		User: c.User.Username,
	}
}

// NewCommentList projects a set of comments into response shapes.
func NewCommentList(comments []*models.Comment) []CommentResponse {
	items := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		items = append(items, NewCommentResponse(c))
	}
	return items
}
