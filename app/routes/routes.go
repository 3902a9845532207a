// Package routes wires the HTTP surface onto a gorilla/mux router.
package routes

import (
	"encoding/json"
	"net/http"

	"mfergm/app/controllers"
	"mfergm/app/middleware"
	"mfergm/app/moderation"
	"mfergm/app/repositories"
	"mfergm/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes builds the router for the posting service backed by db and
// moderator.
func SetupRoutes(db *badger.DB, moderator moderation.Moderator) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	postService := services.NewPostService(postRepo, moderator)
	return SetupRoutesWithService(postService)
}

// SetupRoutesWithService builds the router around an already-wired service.
func SetupRoutesWithService(postService *services.PostService) *mux.Router {
	postController := controllers.NewPostController(postService)

	router := mux.NewRouter()

	// Apply global middleware.
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(middleware.ContentTypeJSON)

	router.HandleFunc("/posts", postController.Index).Methods("GET")
	router.HandleFunc("/posts", postController.Create).Methods("POST")

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	router.Handle("/metrics", middleware.MetricsHandler()).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
	})

	return router
}
