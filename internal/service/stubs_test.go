package service

import (
	"context"

	"quill/internal/models"
)

// Function-field stubs for the repository interfaces. Each test wires only
// the calls it expects; an unexpected call panics on the nil field, which is
// exactly what we want.

type stubPostRepo struct {
	create           func(ctx context.Context, post *models.Post) error
	getByID          func(ctx context.Context, id uint) (*models.Post, error)
	list             func(ctx context.Context, limit, offset int) ([]*models.Post, error)
	count            func(ctx context.Context) (int64, error)
	listByGroup      func(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error)
	countByGroup     func(ctx context.Context, groupID uint) (int64, error)
	listByAuthor     func(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error)
	countByAuthor    func(ctx context.Context, authorID uint) (int64, error)
	listByAuthorIDs  func(ctx context.Context, authorIDs []uint, limit, offset int) ([]*models.Post, error)
	countByAuthorIDs func(ctx context.Context, authorIDs []uint) (int64, error)
	update           func(ctx context.Context, post *models.Post) error
	delete           func(ctx context.Context, id uint) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.create(ctx, post)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByID(ctx, id)
}

func (s *stubPostRepo) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.list(ctx, limit, offset)
}

func (s *stubPostRepo) Count(ctx context.Context) (int64, error) {
	return s.count(ctx)
}

func (s *stubPostRepo) ListByGroupID(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByGroup(ctx, groupID, limit, offset)
}

func (s *stubPostRepo) CountByGroupID(ctx context.Context, groupID uint) (int64, error) {
	return s.countByGroup(ctx, groupID)
}

func (s *stubPostRepo) ListByAuthorID(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthor(ctx, authorID, limit, offset)
}

func (s *stubPostRepo) CountByAuthorID(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthor(ctx, authorID)
}

func (s *stubPostRepo) ListByAuthorIDs(ctx context.Context, authorIDs []uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorIDs(ctx, authorIDs, limit, offset)
}

func (s *stubPostRepo) CountByAuthorIDs(ctx context.Context, authorIDs []uint) (int64, error) {
	return s.countByAuthorIDs(ctx, authorIDs)
}

func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	return s.update(ctx, post)
}

func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

type stubUserRepo struct {
	create        func(ctx context.Context, user *models.User) error
	getByID       func(ctx context.Context, id uint) (*models.User, error)
	getByUsername func(ctx context.Context, username string) (*models.User, error)
	getByEmail    func(ctx context.Context, email string) (*models.User, error)
	delete        func(ctx context.Context, id uint) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.create(ctx, user)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsername(ctx, username)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}

func (s *stubUserRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

type stubGroupRepo struct {
	create    func(ctx context.Context, group *models.Group) error
	getBySlug func(ctx context.Context, slug string) (*models.Group, error)
	list      func(ctx context.Context) ([]models.Group, error)
	delete    func(ctx context.Context, id uint) error
}

func (s *stubGroupRepo) Create(ctx context.Context, group *models.Group) error {
	return s.create(ctx, group)
}

func (s *stubGroupRepo) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.getBySlug(ctx, slug)
}

func (s *stubGroupRepo) List(ctx context.Context) ([]models.Group, error) {
	return s.list(ctx)
}

func (s *stubGroupRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

type stubFollowRepo struct {
	create             func(ctx context.Context, follow *models.Follow) error
	deleteEdge         func(ctx context.Context, followerID, authorID uint) error
	isFollowing        func(ctx context.Context, followerID, authorID uint) (bool, error)
	followingAuthorIDs func(ctx context.Context, followerID uint) ([]uint, error)
}

func (s *stubFollowRepo) Create(ctx context.Context, follow *models.Follow) error {
	return s.create(ctx, follow)
}

func (s *stubFollowRepo) DeleteEdge(ctx context.Context, followerID, authorID uint) error {
	return s.deleteEdge(ctx, followerID, authorID)
}

func (s *stubFollowRepo) IsFollowing(ctx context.Context, followerID, authorID uint) (bool, error) {
	return s.isFollowing(ctx, followerID, authorID)
}

func (s *stubFollowRepo) FollowingAuthorIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followingAuthorIDs(ctx, followerID)
}

type stubCommentRepo struct {
	create      func(ctx context.Context, comment *models.Comment) error
	getByID     func(ctx context.Context, id uint) (*models.Comment, error)
	listByPost  func(ctx context.Context, postID uint) ([]*models.Comment, error)
	countByPost func(ctx context.Context, postID uint) (int64, error)
	delete      func(ctx context.Context, id uint) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.create(ctx, comment)
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByID(ctx, id)
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPost(ctx, postID)
}

func (s *stubCommentRepo) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPost(ctx, postID)
}

func (s *stubCommentRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}
