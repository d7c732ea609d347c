package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sulavmhrzn/BlogIt-API/app/dto"
	"github.com/sulavmhrzn/BlogIt-API/app/mail"
	"github.com/sulavmhrzn/BlogIt-API/app/middleware"
	"github.com/sulavmhrzn/BlogIt-API/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	mailer      mail.Mailer
	mailFrom    string
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, mailer mail.Mailer, mailFrom string) *PostController {
	return &PostController{
		postService: postService,
		mailer:      mailer,
		mailFrom:    mailFrom,
	}
}

// Index handles listing posts visible to the caller, filtered and
// paginated. This is the only handler that uses the reduced list shape.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	page, err := pageParam(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := pc.postService.ListPosts(user, postFilter(r), page)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, dto.Page{
		Links:   pageLinks(r, page, result.Count),
		Count:   result.Count,
		Results: dto.NewPostList(result.Posts),
	})
}

// Show handles retrieving a single post. Posts invisible to the caller
// are reported as not found.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	post, err := pc.postService.GetPost(user, mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, dto.NewPostDetail(post))
}

// Create handles creating a new post authored by the caller. On success
// a notification email is sent best-effort: its failure is logged and
// never affects the response.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var input dto.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(user, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	pc.notifyCreated(post.Title, user.Email)

	sendJSON(w, http.StatusCreated, dto.NewPostDetail(post))
}

// notifyCreated emails the author about their new post.
func (pc *PostController) notifyCreated(title, email string) {
	msg := mail.Message{
		From:    pc.mailFrom,
		To:      email,
		Subject: "Post created: " + title,
		Body:    "Post created",
	}
	if err := pc.mailer.Send(msg); err != nil {
		log.Printf("failed to send post notification: %v", err)
	}
}

// Edit handles fully replacing a post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var input dto.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.UpdatePost(user, mux.Vars(r)["id"], input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, dto.NewPostDetail(post))
}

// Delete handles deleting a post and its comments
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if err := pc.postService.DeletePost(user, mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// postFilter reads the listing filters from the query string.
// is_active uses checkbox semantics: absent means no filter, "false"
// and "0" mean false, any other value means true. tags__name matches
// tag labels case-insensitively by substring.
func postFilter(r *http.Request) services.PostFilter {
	filter := services.PostFilter{
		Tag: r.URL.Query().Get("tags__name"),
	}

	if raw := r.URL.Query().Get("is_active"); raw != "" {
		active := raw != "false" && raw != "0"
		filter.IsActive = &active
	}

	return filter
}
