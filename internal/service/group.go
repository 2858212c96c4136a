package service

import (
	"context"
	"log"
	"strings"

	"microblog/internal/model"
	"microblog/internal/repository"
)

// GroupService manages topical groups. Groups are created rarely and
// are effectively immutable once posts reference them.
type GroupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// Create validates and persists a new group. The slug is the external
// key used in URLs, so it is restricted to URL-safe characters and must
// be globally unique (duplicates surface as model.ErrSlugExists).
func (s *GroupService) Create(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, model.ErrTitleRequired
	}
	if len(title) > model.MaxGroupTitleLength {
		title = title[:model.MaxGroupTitleLength]
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		return nil, model.ErrSlugRequired
	}
	if len(slug) > model.MaxGroupSlugLength || !validSlug(slug) {
		return nil, model.ErrSlugInvalid
	}

	group := &model.Group{
		Title:       title,
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	log.Printf("[GroupService] Group created: id=%d slug=%s", group.ID, group.Slug)
	return group, nil
}

// GetBySlug resolves a group by its slug.
func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

// List returns all groups ordered by title.
func (s *GroupService) List(ctx context.Context) ([]model.Group, error) {
	return s.groupRepo.List(ctx)
}

func validSlug(slug string) bool {
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
