package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"microblog/internal/model"
	"microblog/internal/repository"
)

// CommentService persists comments. Any authenticated user may comment
// on any post; the only rules are non-empty text and an existing post.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// Create adds a comment to a post. The author is the acting user.
func (s *CommentService) Create(ctx context.Context, authorID, postID int64, req model.CreateCommentRequest) (*model.Comment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, model.ErrCommentTextRequired
	}

	// Resolve the post first so a bad id is a NotFound, not an FK error
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if author, err := s.userRepo.GetByID(ctx, authorID); err == nil {
		comment.Author = author.Summary()
	}

	log.Printf("[CommentService] User %d commented on post %d", authorID, postID)
	return comment, nil
}
