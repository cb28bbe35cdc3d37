package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles GET /api/posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts(r.Context())
	if err != nil {
		pc.sendError(w, err, "Failed to fetch posts")
		return
	}
	pc.sendJSON(w, http.StatusOK, posts)
}

// Show handles GET /api/posts/{id}
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		pc.sendErrorMessage(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPost(r.Context(), id)
	if err != nil {
		pc.sendError(w, err, "Failed to fetch post")
		return
	}
	pc.sendJSON(w, http.StatusOK, post)
}

// Create handles POST /api/posts
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		pc.sendErrorMessage(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := pc.postService.CreatePost(r.Context(), &post); err != nil {
		pc.sendError(w, err, "Failed to create post")
		return
	}
	pc.sendJSON(w, http.StatusCreated, post)
}

// Edit handles PUT /api/posts/{id}
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		pc.sendErrorMessage(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		pc.sendErrorMessage(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	post.ID = id

	if err := pc.postService.UpdatePost(r.Context(), &post); err != nil {
		pc.sendError(w, err, "Failed to update post")
		return
	}
	pc.sendJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/{id}
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		pc.sendErrorMessage(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := pc.postService.DeletePost(r.Context(), id); err != nil {
		pc.sendError(w, err, "Failed to delete post")
		return
	}
	pc.sendJSON(w, http.StatusOK, map[string]any{
		"message": "Post deleted successfully",
		"id":      id,
	})
}

// postID extracts the numeric id path variable.
func postID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// Helper methods for consistent response handling

func (pc *PostController) sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError maps service errors onto status codes. Validation failures keep
// their descriptive message; storage failures get the generic message and
// the cause is logged server-side only.
func (pc *PostController) sendError(w http.ResponseWriter, err error, generic string) {
	switch {
	case errors.Is(err, services.ErrInvalidPost):
		pc.sendErrorMessage(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repositories.ErrNotFound):
		pc.sendErrorMessage(w, "Post not found", http.StatusNotFound)
	default:
		log.Printf("post controller: %v", err)
		pc.sendErrorMessage(w, generic, http.StatusInternalServerError)
	}
}

func (pc *PostController) sendErrorMessage(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
