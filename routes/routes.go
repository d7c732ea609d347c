package routes

import (
	"net/http"

	"github.com/sulavmhrzn/BlogIt-API/app/controllers"
	"github.com/sulavmhrzn/BlogIt-API/app/mail"
	"github.com/sulavmhrzn/BlogIt-API/app/middleware"
	"github.com/sulavmhrzn/BlogIt-API/app/repositories"
	"github.com/sulavmhrzn/BlogIt-API/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// Options carries the dependencies the router needs.
type Options struct {
	DB        *badger.DB
	Mailer    mail.Mailer
	MailFrom  string
	JWTSecret string
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(opts Options) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	postRepo := repositories.NewBadgerPostRepository(opts.DB)
	commentRepo := repositories.NewBadgerCommentRepository(opts.DB)
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	postController := controllers.NewPostController(postService, opts.Mailer, opts.MailFrom)
	commentController := controllers.NewCommentController(commentService)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}).Methods("GET")

	// API routes, all behind authentication
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(opts.JWTSecret))

	// Posts API endpoints
	posts := api.PathPrefix("/post").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")

	// Comments API endpoints, nested under their post
	posts.HandleFunc("/{postId}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId}/comments", commentController.Create).Methods("POST")
	posts.HandleFunc("/{postId}/comments/{id}", commentController.Edit).Methods("PUT")
	posts.HandleFunc("/{postId}/comments/{id}", commentController.Delete).Methods("DELETE")

	return router
}
