package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"microblog/internal/httputil"
	"microblog/internal/model"
	"microblog/internal/service"
	"microblog/internal/transport/http/middleware"
)

type GroupHandler struct {
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// List handles GET /groups
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] List groups handler: %v", err)
		httputil.WriteInternalError(w, "Failed to list groups")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"groups": groups,
	})
}

// Create handles POST /groups
// A duplicate slug is a conflict; slug and title are required.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	group, err := h.groupService.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTitleRequired):
			httputil.WriteBadRequest(w, "Group title is required")
		case errors.Is(err, model.ErrSlugRequired):
			httputil.WriteBadRequest(w, "Group slug is required")
		case errors.Is(err, model.ErrSlugInvalid):
			httputil.WriteBadRequest(w, "Group slug may only contain letters, digits, hyphens and underscores")
		case errors.Is(err, model.ErrSlugExists):
			httputil.WriteConflict(w, "A group with this slug already exists")
		default:
			log.Printf("[ERROR] Create group handler: user=%d err=%v", userID, err)
			httputil.WriteInternalError(w, "Failed to create group")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, group)
}
