package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"microblog/internal/model"
	"microblog/internal/repository"
)

// PostService validates and persists post mutations, enforcing the
// text-non-empty and author-ownership rules at the edit boundary.
type PostService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
	}
}

// Create validates and persists a new post. The author is always the
// acting user; caller-supplied author values never reach the store.
// Text must be non-empty after trimming; an unknown group slug is a
// validation failure, not a 404, because it arrives in the form body.
func (s *PostService) Create(ctx context.Context, authorID int64, req model.CreatePostRequest) (*model.Post, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, model.ErrTextRequired
	}

	groupID, group, err := s.resolveGroup(ctx, req.GroupSlug)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		AuthorID: authorID,
		GroupID:  groupID,
		Text:     text,
		ImageURL: req.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	post.Group = group

	if author, err := s.userRepo.GetByID(ctx, authorID); err == nil {
		post.Author = author.Summary()
	}

	log.Printf("[PostService] Post created: post=%d author=%d", post.ID, authorID)
	return post, nil
}

// Edit updates a post's text, group and image. Only the author may
// edit; everyone else gets model.ErrNotPostAuthor and the post is left
// untouched. The creation time never changes.
func (s *PostService) Edit(ctx context.Context, editorID, postID int64, req model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != editorID {
		return nil, model.ErrNotPostAuthor
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, model.ErrTextRequired
	}

	groupID, group, err := s.resolveGroup(ctx, req.GroupSlug)
	if err != nil {
		return nil, err
	}

	post.Text = text
	post.GroupID = groupID
	post.Group = group
	post.ImageURL = req.ImageURL

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	log.Printf("[PostService] Post edited: post=%d author=%d", postID, editorID)
	return post, nil
}

// Delete removes a post owned by userID; its comments cascade away
// with it.
func (s *PostService) Delete(ctx context.Context, userID, postID int64) error {
	if err := s.postRepo.Delete(ctx, postID, userID); err != nil {
		return err
	}
	log.Printf("[PostService] Post deleted: post=%d author=%d", postID, userID)
	return nil
}

// GetDetail returns the detail-page payload: the post, its full comment
// thread newest first, and the author's total post count.
func (s *PostService) GetDetail(ctx context.Context, postID int64) (*model.PostDetail, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	authorPostCount, err := s.postRepo.CountByAuthor(ctx, post.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("count author posts: %w", err)
	}

	return &model.PostDetail{
		Post:            *post,
		Comments:        comments,
		AuthorPostCount: authorPostCount,
	}, nil
}

// resolveGroup maps an optional group slug to its id. nil slug means
// the post belongs to no group.
func (s *PostService) resolveGroup(ctx context.Context, slug *string) (*int64, *model.Group, error) {
	if slug == nil || strings.TrimSpace(*slug) == "" {
		return nil, nil, nil
	}
	group, err := s.groupRepo.GetBySlug(ctx, strings.TrimSpace(*slug))
	if err != nil {
		return nil, nil, err
	}
	return &group.ID, group, nil
}
