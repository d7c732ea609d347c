package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/sulavmhrzn/BlogIt-API/app/dto"
	"github.com/sulavmhrzn/BlogIt-API/app/middleware"
	"github.com/sulavmhrzn/BlogIt-API/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Index handles listing all comments for a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	comments, err := cc.commentService.ListComments(user, mux.Vars(r)["postId"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, dto.NewCommentList(comments))
}

// Create handles creating a comment on the post named in the URL path
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var input dto.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	comment, err := cc.commentService.CreateComment(user, mux.Vars(r)["postId"], input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, dto.NewCommentResponse(comment))
}

// Edit handles fully replacing a comment
func (cc *CommentController) Edit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var input dto.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	comment, err := cc.commentService.UpdateComment(user, vars["postId"], vars["id"], input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, dto.NewCommentResponse(comment))
}

// Delete handles deleting a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	if err := cc.commentService.DeleteComment(user, vars["postId"], vars["id"]); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
