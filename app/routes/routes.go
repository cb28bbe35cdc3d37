package routes

import (
	"database/sql"
	"net/http"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// Setup wires the blog API and static client assets onto a router backed by
// the given database handle.
func Setup(db *sql.DB, staticDir string) *mux.Router {
	return SetupWithRepository(repositories.NewSQLitePostRepository(db), staticDir)
}

// SetupWithRepository builds the router against any PostRepository, which
// lets tests substitute an in-memory implementation.
func SetupWithRepository(repo repositories.PostRepository, staticDir string) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	postController := controllers.NewPostController(services.NewPostService(repo))

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Client assets; registered last so the API subrouter wins.
	if staticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
	}

	return router
}

// Endpoints returns the advertised API surface for startup logging.
func Endpoints() []string {
	return []string{
		"GET    /api/posts",
		"GET    /api/posts/{id}",
		"POST   /api/posts",
		"PUT    /api/posts/{id}",
		"DELETE /api/posts/{id}",
	}
}
