package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"microblog/internal/httputil"
	"microblog/internal/model"
	"microblog/internal/service"
	"microblog/internal/transport/http/middleware"
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

// ListAll handles GET /posts
// Returns the paginated all-posts feed, most recent first.
func (h *FeedHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	feed, err := h.feedService.List(r.Context(), service.AllPosts(), page, viewerID(r))
	if err != nil {
		log.Printf("[ERROR] ListAll handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to list posts")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}

// ListByGroup handles GET /groups/{slug}/posts
// Returns the paginated feed of one group; 404 for an unknown slug.
func (h *FeedHandler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page := pageParam(r)

	feed, err := h.feedService.List(r.Context(), service.ByGroup(slug), page, viewerID(r))
	if err != nil {
		if errors.Is(err, model.ErrGroupNotFound) {
			httputil.WriteNotFound(w, "Group not found")
			return
		}
		log.Printf("[ERROR] ListByGroup handler: slug=%s err=%v", slug, err)
		httputil.WriteInternalError(w, "Failed to list group posts")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}

// ListByAuthor handles GET /users/{username}/posts
// Returns the author's paginated feed plus their post count and the
// viewer's follow status; 404 for an unknown username.
func (h *FeedHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	page := pageParam(r)

	feed, err := h.feedService.List(r.Context(), service.ByAuthor(username), page, viewerID(r))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] ListByAuthor handler: username=%s err=%v", username, err)
		httputil.WriteInternalError(w, "Failed to list user posts")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}

// ListFollowed handles GET /feed
// Returns the paginated feed of posts by authors the caller follows.
func (h *FeedHandler) ListFollowed(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	page := pageParam(r)

	feed, err := h.feedService.List(r.Context(), service.ByFollowed(userID), page, &userID)
	if err != nil {
		log.Printf("[ERROR] ListFollowed handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Failed to list followed posts")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}

// pageParam reads the page query parameter. Absent or non-numeric
// values default to page 1; out-of-range values are clamped by the
// feed service rather than rejected here.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// viewerID returns the authenticated caller's id when present.
func viewerID(r *http.Request) *int64 {
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		return &id
	}
	return nil
}
