package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"microblog/internal/cache"
	"microblog/internal/handler"
	"microblog/internal/httputil"
	authmw "microblog/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	FeedHandler    *handler.FeedHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	FollowHandler  *handler.FollowHandler
	GroupHandler   *handler.GroupHandler
	JWTSecret      string

	// PageCache, when set, caches the whole all-posts response for its
	// fixed TTL. Nil disables response caching.
	PageCache cache.PageCache
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Unknown routes get the JSON error envelope instead of a plain 404
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteNotFound(w, "Page not found")
	})

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/refresh", cfg.AuthHandler.Refresh)
	})

	// The all-posts feed is the home page equivalent and carries the
	// short-lived whole-response cache. Post and group listings stay
	// uncached so edits are visible immediately.
	if cfg.PageCache != nil {
		r.With(cache.Middleware(cfg.PageCache)).Get("/posts", cfg.FeedHandler.ListAll)
	} else {
		r.Get("/posts", cfg.FeedHandler.ListAll)
	}

	r.Get("/groups", cfg.GroupHandler.List)
	r.Get("/groups/{slug}/posts", cfg.FeedHandler.ListByGroup)
	r.Get("/posts/{id}", cfg.PostHandler.GetByID)

	// Profile feed changes slightly for signed-in viewers (follow flag)
	r.With(authmw.OptionalAuthMiddleware(cfg.JWTSecret)).
		Get("/users/{username}/posts", cfg.FeedHandler.ListByAuthor)

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Get("/me", cfg.AuthHandler.Me)
		r.Post("/auth/logout", cfg.AuthHandler.Logout)

		r.Post("/posts", cfg.PostHandler.Create)
		r.Put("/posts/{id}", cfg.PostHandler.Update)
		r.Delete("/posts/{id}", cfg.PostHandler.Delete)
		r.Post("/posts/{id}/comments", cfg.CommentHandler.Create)

		r.Get("/feed", cfg.FeedHandler.ListFollowed)

		r.Post("/users/{username}/follow", cfg.FollowHandler.Follow)
		r.Delete("/users/{username}/follow", cfg.FollowHandler.Unfollow)

		r.Post("/groups", cfg.GroupHandler.Create)
	})

	return r
}
