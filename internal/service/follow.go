package service

import (
	"context"
	"log"

	"microblog/internal/repository"
)

// FollowService manages the directed follow edge between two users.
// Both operations are idempotent: repeated calls leave the store in the
// same state and report success.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the edge follower -> author if absent. Following
// yourself is tolerated as a silent no-op rather than rejected: a
// self-edge would only surface the user's own posts in their feed, so
// nothing is written. Returns model.ErrUserNotFound for an unknown
// author username.
func (s *FollowService) Follow(ctx context.Context, followerID int64, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}

	if author.ID == followerID {
		return nil
	}

	inserted, err := s.followRepo.Create(ctx, followerID, author.ID)
	if err != nil {
		return err
	}

	if inserted {
		log.Printf("[FollowService] Follow created: follower=%d author=%d", followerID, author.ID)
	}
	return nil
}

// Unfollow removes the edge follower -> author if present. Unfollowing
// someone you never followed is a no-op, not an error.
func (s *FollowService) Unfollow(ctx context.Context, followerID int64, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}

	if author.ID == followerID {
		return nil
	}

	deleted, err := s.followRepo.Delete(ctx, followerID, author.ID)
	if err != nil {
		return err
	}

	if deleted {
		log.Printf("[FollowService] Follow removed: follower=%d author=%d", followerID, author.ID)
	}
	return nil
}

// IsFollowing reports whether the edge follower -> author exists.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, authorID int64) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, authorID)
}
