package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"microblog/internal/model"
	"microblog/internal/repository"
)

// FeedFilter selects which posts a feed page is composed from.
// Construct one with AllPosts, ByGroup, ByAuthor or ByFollowed.
type FeedFilter struct {
	kind       filterKind
	slug       string
	username   string
	followerID int64
}

type filterKind int

const (
	filterAll filterKind = iota
	filterGroup
	filterAuthor
	filterFollowed
)

// AllPosts selects every post on the site.
func AllPosts() FeedFilter {
	return FeedFilter{kind: filterAll}
}

// ByGroup selects posts assigned to the group with the given slug.
func ByGroup(slug string) FeedFilter {
	return FeedFilter{kind: filterGroup, slug: slug}
}

// ByAuthor selects posts written by the user with the given username.
func ByAuthor(username string) FeedFilter {
	return FeedFilter{kind: filterAuthor, username: username}
}

// ByFollowed selects posts whose author the given user follows.
// Callers must only build this filter for an authenticated user.
func ByFollowed(followerID int64) FeedFilter {
	return FeedFilter{kind: filterFollowed, followerID: followerID}
}

// FeedService composes ordered, paginated feeds of posts. The page
// size is injected configuration shared by every filter.
type FeedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	pageSize   int
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	pageSize int,
) *FeedService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &FeedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		pageSize:   pageSize,
	}
}

// List returns one page of the feed selected by the filter.
//
// All filters order posts by creation time descending, id descending as
// a stable tiebreak. The count runs first so the requested page can be
// clamped to the last page before the listing query; a request past the
// end therefore returns the last page rather than an error, and an
// empty result set returns a single empty page.
//
// viewerID, when non-nil, is the authenticated caller; it only affects
// the follow-status flag on author feeds.
func (s *FeedService) List(ctx context.Context, filter FeedFilter, page int, viewerID *int64) (*model.PostPage, error) {
	startTime := time.Now()

	result := &model.PostPage{}

	var (
		count func(context.Context) (int, error)
		list  func(context.Context, int, int) ([]model.Post, error)
	)

	switch filter.kind {
	case filterAll:
		count = s.postRepo.CountAll
		list = s.postRepo.ListAll

	case filterGroup:
		group, err := s.groupRepo.GetBySlug(ctx, filter.slug)
		if err != nil {
			return nil, err
		}
		result.Group = group
		count = func(ctx context.Context) (int, error) {
			return s.postRepo.CountByGroup(ctx, group.ID)
		}
		list = func(ctx context.Context, limit, offset int) ([]model.Post, error) {
			return s.postRepo.ListByGroup(ctx, group.ID, limit, offset)
		}

	case filterAuthor:
		author, err := s.userRepo.GetByUsername(ctx, filter.username)
		if err != nil {
			return nil, err
		}
		result.Profile = &model.Profile{Author: *author.Summary()}
		count = func(ctx context.Context) (int, error) {
			return s.postRepo.CountByAuthor(ctx, author.ID)
		}
		list = func(ctx context.Context, limit, offset int) ([]model.Post, error) {
			return s.postRepo.ListByAuthor(ctx, author.ID, limit, offset)
		}
		if viewerID != nil {
			following, err := s.followRepo.Exists(ctx, *viewerID, author.ID)
			if err != nil {
				// The flag is display-only; degrade to "not following"
				log.Printf("[FeedService] follow status check failed: viewer=%d author=%d err=%v",
					*viewerID, author.ID, err)
			}
			result.Profile.Following = following
		}

	case filterFollowed:
		count = func(ctx context.Context) (int, error) {
			return s.postRepo.CountByFollowed(ctx, filter.followerID)
		}
		list = func(ctx context.Context, limit, offset int) ([]model.Post, error) {
			return s.postRepo.ListByFollowed(ctx, filter.followerID, limit, offset)
		}

	default:
		return nil, fmt.Errorf("unknown feed filter %d", filter.kind)
	}

	total, err := count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	info := model.NewPageInfo(page, s.pageSize, total)
	posts, err := list(ctx, info.PageSize, info.Offset())
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	result.Posts = posts
	result.PageInfo = info
	if result.Profile != nil {
		result.Profile.PostCount = total
	}

	log.Printf("[FeedService] List OK: page=%d/%d items=%d total=%d duration=%v",
		info.Page, info.TotalPages, len(posts), total, time.Since(startTime))

	return result, nil
}
