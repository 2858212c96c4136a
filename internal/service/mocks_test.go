package service

// Hand-written mocks over the repository interfaces. Each field lets a
// test define custom behavior; unset fields fall back to a zero-value
// response so tests only configure what they assert on.

import (
	"context"

	"microblog/internal/model"
)

type mockUserRepository struct {
	createFn           func(ctx context.Context, user *model.User) error
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)

	createCalls int
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

type mockGroupRepository struct {
	createFn    func(ctx context.Context, group *model.Group) error
	getBySlugFn func(ctx context.Context, slug string) (*model.Group, error)
	listFn      func(ctx context.Context) ([]model.Group, error)
}

func (m *mockGroupRepository) Create(ctx context.Context, group *model.Group) error {
	if m.createFn != nil {
		return m.createFn(ctx, group)
	}
	return nil
}

func (m *mockGroupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, model.ErrGroupNotFound
}

func (m *mockGroupRepository) List(ctx context.Context) ([]model.Group, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.Group{}, nil
}

// listCall records the limit/offset a listing method was invoked with.
type listCall struct {
	Limit  int
	Offset int
}

type mockPostRepository struct {
	createFn  func(ctx context.Context, post *model.Post) error
	getByIDFn func(ctx context.Context, postID int64) (*model.Post, error)
	updateFn  func(ctx context.Context, post *model.Post) error
	deleteFn  func(ctx context.Context, postID, authorID int64) error

	listAllFn        func(ctx context.Context, limit, offset int) ([]model.Post, error)
	countAllFn       func(ctx context.Context) (int, error)
	listByGroupFn    func(ctx context.Context, groupID int64, limit, offset int) ([]model.Post, error)
	countByGroupFn   func(ctx context.Context, groupID int64) (int, error)
	listByAuthorFn   func(ctx context.Context, authorID int64, limit, offset int) ([]model.Post, error)
	countByAuthorFn  func(ctx context.Context, authorID int64) (int, error)
	listByFollowedFn func(ctx context.Context, followerID int64, limit, offset int) ([]model.Post, error)
	countFollowedFn  func(ctx context.Context, followerID int64) (int, error)

	createCalls int
	updateCalls int
	listCalls   []listCall
}

func (m *mockPostRepository) Create(ctx context.Context, post *model.Post) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, postID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) Update(ctx context.Context, post *model.Post) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) Delete(ctx context.Context, postID, authorID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID, authorID)
	}
	return nil
}

func (m *mockPostRepository) ListAll(ctx context.Context, limit, offset int) ([]model.Post, error) {
	m.listCalls = append(m.listCalls, listCall{Limit: limit, Offset: offset})
	if m.listAllFn != nil {
		return m.listAllFn(ctx, limit, offset)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) CountAll(ctx context.Context) (int, error) {
	if m.countAllFn != nil {
		return m.countAllFn(ctx)
	}
	return 0, nil
}

func (m *mockPostRepository) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]model.Post, error) {
	m.listCalls = append(m.listCalls, listCall{Limit: limit, Offset: offset})
	if m.listByGroupFn != nil {
		return m.listByGroupFn(ctx, groupID, limit, offset)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	if m.countByGroupFn != nil {
		return m.countByGroupFn(ctx, groupID)
	}
	return 0, nil
}

func (m *mockPostRepository) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]model.Post, error) {
	m.listCalls = append(m.listCalls, listCall{Limit: limit, Offset: offset})
	if m.listByAuthorFn != nil {
		return m.listByAuthorFn(ctx, authorID, limit, offset)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	if m.countByAuthorFn != nil {
		return m.countByAuthorFn(ctx, authorID)
	}
	return 0, nil
}

func (m *mockPostRepository) ListByFollowed(ctx context.Context, followerID int64, limit, offset int) ([]model.Post, error) {
	m.listCalls = append(m.listCalls, listCall{Limit: limit, Offset: offset})
	if m.listByFollowedFn != nil {
		return m.listByFollowedFn(ctx, followerID, limit, offset)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) CountByFollowed(ctx context.Context, followerID int64) (int, error) {
	if m.countFollowedFn != nil {
		return m.countFollowedFn(ctx, followerID)
	}
	return 0, nil
}

type mockCommentRepository struct {
	createFn       func(ctx context.Context, comment *model.Comment) error
	listByPostIDFn func(ctx context.Context, postID int64) ([]model.Comment, error)

	createCalls int
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByPostID(ctx context.Context, postID int64) ([]model.Comment, error) {
	if m.listByPostIDFn != nil {
		return m.listByPostIDFn(ctx, postID)
	}
	return []model.Comment{}, nil
}

type followCall struct {
	FollowerID int64
	AuthorID   int64
}

type mockFollowRepository struct {
	createFn func(ctx context.Context, followerID, authorID int64) (bool, error)
	deleteFn func(ctx context.Context, followerID, authorID int64) (bool, error)
	existsFn func(ctx context.Context, followerID, authorID int64) (bool, error)

	createCalls []followCall
	deleteCalls []followCall
}

func (m *mockFollowRepository) Create(ctx context.Context, followerID, authorID int64) (bool, error) {
	m.createCalls = append(m.createCalls, followCall{followerID, authorID})
	if m.createFn != nil {
		return m.createFn(ctx, followerID, authorID)
	}
	return true, nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, authorID int64) (bool, error) {
	m.deleteCalls = append(m.deleteCalls, followCall{followerID, authorID})
	if m.deleteFn != nil {
		return m.deleteFn(ctx, followerID, authorID)
	}
	return true, nil
}

func (m *mockFollowRepository) Exists(ctx context.Context, followerID, authorID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, followerID, authorID)
	}
	return false, nil
}
