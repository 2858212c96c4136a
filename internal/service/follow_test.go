package service

import (
	"context"
	"errors"
	"testing"

	"microblog/internal/model"
)

func followUserRepo(users ...*model.User) *mockUserRepository {
	return &mockUserRepository{
		getByUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
			for _, u := range users {
				if u.Username == username {
					return u, nil
				}
			}
			return nil, model.ErrUserNotFound
		},
	}
}

func TestFollow_CreatesEdge(t *testing.T) {
	followRepo := &mockFollowRepository{}
	svc := NewFollowService(followRepo, followUserRepo(&model.User{ID: 5, Username: "leo"}))

	if err := svc.Follow(context.Background(), 2, "leo"); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}

	if len(followRepo.createCalls) != 1 {
		t.Fatalf("Create called %d times, want 1", len(followRepo.createCalls))
	}
	if got := followRepo.createCalls[0]; got.FollowerID != 2 || got.AuthorID != 5 {
		t.Errorf("Create called with %+v, want follower=2 author=5", got)
	}
}

func TestFollow_RepeatIsNoOp(t *testing.T) {
	followRepo := &mockFollowRepository{
		createFn: func(ctx context.Context, followerID, authorID int64) (bool, error) {
			// Edge already present; the insert matched the conflict clause.
			return false, nil
		},
	}
	svc := NewFollowService(followRepo, followUserRepo(&model.User{ID: 5, Username: "leo"}))

	if err := svc.Follow(context.Background(), 2, "leo"); err != nil {
		t.Errorf("repeated Follow() error = %v, want nil", err)
	}
}

func TestFollow_SelfIsSilentNoOp(t *testing.T) {
	followRepo := &mockFollowRepository{}
	svc := NewFollowService(followRepo, followUserRepo(&model.User{ID: 2, Username: "leo"}))

	if err := svc.Follow(context.Background(), 2, "leo"); err != nil {
		t.Errorf("self Follow() error = %v, want nil", err)
	}
	if len(followRepo.createCalls) != 0 {
		t.Errorf("Create called %d times for a self-follow, want 0", len(followRepo.createCalls))
	}
}

func TestFollow_UnknownAuthor(t *testing.T) {
	svc := NewFollowService(&mockFollowRepository{}, followUserRepo())

	err := svc.Follow(context.Background(), 2, "ghost")
	if !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("Follow() error = %v, want ErrUserNotFound", err)
	}
}

func TestUnfollow_RemovesEdge(t *testing.T) {
	followRepo := &mockFollowRepository{}
	svc := NewFollowService(followRepo, followUserRepo(&model.User{ID: 5, Username: "leo"}))

	if err := svc.Unfollow(context.Background(), 2, "leo"); err != nil {
		t.Fatalf("Unfollow() error = %v", err)
	}
	if len(followRepo.deleteCalls) != 1 {
		t.Fatalf("Delete called %d times, want 1", len(followRepo.deleteCalls))
	}
	if got := followRepo.deleteCalls[0]; got.FollowerID != 2 || got.AuthorID != 5 {
		t.Errorf("Delete called with %+v, want follower=2 author=5", got)
	}
}

func TestUnfollow_AbsentEdgeIsNoOp(t *testing.T) {
	followRepo := &mockFollowRepository{
		deleteFn: func(ctx context.Context, followerID, authorID int64) (bool, error) {
			return false, nil
		},
	}
	svc := NewFollowService(followRepo, followUserRepo(&model.User{ID: 5, Username: "leo"}))

	if err := svc.Unfollow(context.Background(), 2, "leo"); err != nil {
		t.Errorf("Unfollow() of absent edge error = %v, want nil", err)
	}
}

func TestUnfollow_UnknownAuthor(t *testing.T) {
	svc := NewFollowService(&mockFollowRepository{}, followUserRepo())

	err := svc.Unfollow(context.Background(), 2, "ghost")
	if !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("Unfollow() error = %v, want ErrUserNotFound", err)
	}
}
