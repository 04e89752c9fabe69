package routes

import (
	"net/http"

	"griddle/app/controllers"
	"griddle/app/middleware"
	"griddle/app/repositories"
	"griddle/app/services"
	"griddle/app/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// Options carries the collaborators SetupRoutes wires together.
type Options struct {
	DB           *badger.DB
	Store        storage.AttachmentStore
	JWTSecret    []byte
	UploadFolder string
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(opts Options) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS)
	router.Use(middleware.ContentTypeJSON)

	// mux only runs middleware on matched routes, so browser preflights need
	// an OPTIONS matcher of their own for the CORS middleware to answer.
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	postRepo := repositories.NewBadgerPostRepository(opts.DB)
	adminRepo := repositories.NewBadgerAdminRepository(opts.DB)

	postService := services.NewPostService(postRepo, opts.Store, opts.UploadFolder)
	engagementService := services.NewEngagementService(postRepo)
	commentService := services.NewCommentService(postRepo)
	authService := services.NewAuthService(adminRepo, opts.JWTSecret)

	postController := controllers.NewPostController(postService, engagementService)
	commentController := controllers.NewCommentController(commentService)
	authController := controllers.NewAuthController(authService)

	auth := middleware.Auth(opts.JWTSecret)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API is running..."))
	}).Methods("GET")

	// Admin endpoints
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.HandleFunc("/register", authController.Register).Methods("POST")
	admin.HandleFunc("/login", authController.Login).Methods("POST")

	// Post endpoints; /all must be registered before /{id}
	posts := router.PathPrefix("/api/post").Subrouter()
	posts.HandleFunc("/all", postController.Index).Methods("GET")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}/like", postController.Like).Methods("POST")
	posts.HandleFunc("/{id}/dislike", postController.Dislike).Methods("POST")
	posts.HandleFunc("/{id}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{id}/comments", commentController.Create).Methods("POST")

	// Protected endpoints
	posts.Handle("", auth(http.HandlerFunc(postController.Create))).Methods("POST")
	posts.Handle("/{id}", auth(http.HandlerFunc(postController.Edit))).Methods("PUT")
	posts.Handle("/{id}", auth(http.HandlerFunc(postController.Delete))).Methods("DELETE")
	posts.Handle("/{postId}/comments/{commentId}", auth(http.HandlerFunc(commentController.Delete))).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
