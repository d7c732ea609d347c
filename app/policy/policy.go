package policy

import "github.com/sulavmhrzn/BlogIt-API/app/models"

// Decision is the outcome of an authorization check.
type Decision int

const (
	Allow Decision = iota
	Deny
)

// CanModifyPost decides whether the actor may update or delete a post.
// The staff check runs first and bypasses the ownership rule entirely.
func CanModifyPost(actor models.User, post *models.Post) Decision {
	if actor.IsStaff {
		return Allow
	}
	if post.Author.ID == actor.ID {
		return Allow
	}
	return Deny
}

// CanModifyComment decides whether the actor may update or delete a
// comment, with the same staff bypass.
func CanModifyComment(actor models.User, comment *models.Comment) Decision {
	if actor.IsStaff {
		return Allow
	}
	if comment.User.ID == actor.ID {
		return Allow
	}
	return Deny
}

// CanViewPost applies the visibility rule: staff see every post,
// everyone else only active ones. The owner gets no override.
func CanViewPost(viewer models.User, post *models.Post) Decision {
	if viewer.IsStaff {
		return Allow
	}
	if post.IsActive {
		return Allow
	}
	return Deny
}
