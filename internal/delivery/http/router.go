package http

import (
	"net/http"

	"amigos-con-cola/internal/delivery/http/handler"
	"amigos-con-cola/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	animalHandler     *handler.AnimalHandler
	aseoHandler       *handler.AseoHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	animalHandler *handler.AnimalHandler,
	aseoHandler *handler.AseoHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		animalHandler:     animalHandler,
		aseoHandler:       aseoHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public reads
	api.HandleFunc("/animals", r.animalHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/animals/{id:[0-9]+}", r.animalHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/aseos", r.aseoHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/aseos/{id:[0-9]+}", r.aseoHandler.GetByID).Methods(http.MethodGet)

	// Writes (protected)
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/animals", r.animalHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/aseos", r.aseoHandler.Create).Methods(http.MethodPost)

	// Wrapped outside mux so preflights and unmatched paths see them too.
	return r.corsMiddleware.Handle(r.loggingMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
