package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mfergm/app/services"

	"github.com/sirupsen/logrus"
)

// PostController handles HTTP requests for daily mfer posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles GET /posts: a page of approved posts, newest first.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	posts, pagination, err := pc.postService.ListPosts(page, limit)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch posts")
		pc.sendError(w, "Error fetching posts", http.StatusInternalServerError)
		return
	}

	pc.sendJSON(w, http.StatusOK, map[string]interface{}{
		"posts":      posts,
		"pagination": pagination,
	})
}

// Create handles POST /posts: validate, enforce the daily limit, moderate,
// persist.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(r.Context(), input)
	if err != nil {
		if services.IsClientError(err) {
			pc.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		logrus.WithError(err).Error("failed to create post")
		pc.sendError(w, "Error creating post", http.StatusInternalServerError)
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// Helper methods for consistent response handling

func (pc *PostController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (pc *PostController) sendError(w http.ResponseWriter, message string, status int) {
	pc.sendJSON(w, status, map[string]string{"error": message})
}
