package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"forumflow/cmd/app"
	"forumflow/internal/auth"
	"forumflow/internal/config"
	handlers "forumflow/internal/handler"
	"forumflow/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	db, repo, services, verifier, store := app.App(cfg)

	handler := handlers.NewHandlers(services, store, db, cfg)
	policy := auth.NewRolePolicy(repo.User)

	authed := middleware.AuthMiddleware(verifier, services.User)
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(h,
			middleware.RequireCapability(policy, auth.CapabilityManage),
			authed,
		)
	}
	verified := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(h, authed)
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)

	r.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	r.HandleFunc("/api/health", handler.Health).Methods(http.MethodGet)

	// Posts
	r.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/count", handler.CountPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/vote/{id}", handler.VotePost).Methods(http.MethodPut)
	r.HandleFunc("/api/posts/comment/{id}", handler.CommentPost).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	r.HandleFunc("/api/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	r.HandleFunc("/api/dashboard/stats", handler.GetDashboardStats).Methods(http.MethodGet)

	// Tags
	r.HandleFunc("/api/tags", handler.GetTags).Methods(http.MethodGet)
	r.HandleFunc("/api/tags/{tag}", handler.GetPostsByTag).Methods(http.MethodGet)

	// Announcements
	r.HandleFunc("/api/announcements", handler.GetAnnouncements).Methods(http.MethodGet)
	r.Handle("/api/announcements", adminOnly(handler.CreateAnnouncement)).Methods(http.MethodPost)
	r.Handle("/api/announcements/{id}", adminOnly(handler.DeleteAnnouncement)).Methods(http.MethodDelete)

	// Authenticated user surface
	r.Handle("/api/me", verified(handler.GetCurrentUser)).Methods(http.MethodGet)
	r.Handle("/api/uploads", verified(handler.UploadImage)).Methods(http.MethodPost)

	// Reports
	r.Handle("/api/reports", verified(handler.CreateReport)).Methods(http.MethodPost)
	r.Handle("/api/reports", adminOnly(handler.GetReports)).Methods(http.MethodGet)
	r.Handle("/api/reports/{id}", adminOnly(handler.ApplyReportAction)).Methods(http.MethodPatch)

	// User management
	r.Handle("/api/users", adminOnly(handler.GetUsers)).Methods(http.MethodGet)
	r.Handle("/api/users/make-admin/{uid}", adminOnly(handler.MakeAdmin)).Methods(http.MethodPatch)
	r.Handle("/api/users/membership/{uid}", adminOnly(handler.UpdateMembership)).Methods(http.MethodPatch)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:    addr,
		Handler: handlerChain,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("ForumFlow server is running on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start the server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	// Drain in-flight requests before releasing the database.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if err := db.CloseDB(shutdownCtx); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("Server stopped")
}
