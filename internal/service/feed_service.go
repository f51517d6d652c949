// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/repository"
)

// FeedPage is one fixed-size window of a feed, plus the metadata the
// rendering layer needs for pagination controls.
type FeedPage struct {
	Posts []*models.Post  `json:"posts"`
	Meta  pagination.Meta `json:"meta"`
}

// FeedService composes the four feed kinds. All operations are read-only
// projections over the store; none of them mutates anything.
type FeedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	pageSize   int
}

// NewFeedService returns a FeedService with the process-wide page size.
func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	pageSize int,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		pageSize:   pageSize,
	}
}

// PageSize reports the configured posts-per-page constant.
func (s *FeedService) PageSize() int {
	return s.pageSize
}

// GlobalFeed returns page `page` of all posts, newest first.
func (s *FeedService) GlobalFeed(ctx context.Context, page int) (*FeedPage, error) {
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildPage(ctx, total, page, func(limit, offset int) ([]*models.Post, error) {
		return s.postRepo.List(ctx, limit, offset)
	})
}

// GroupFeed returns page `page` of the posts published into the group with
// the given slug. Unknown slugs fail with NotFound.
func (s *FeedService) GroupFeed(ctx context.Context, slug string, page int) (*models.Group, *FeedPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.postRepo.CountByGroupID(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}
	feed, err := s.buildPage(ctx, total, page, func(limit, offset int) ([]*models.Post, error) {
		return s.postRepo.ListByGroupID(ctx, group.ID, limit, offset)
	})
	if err != nil {
		return nil, nil, err
	}
	return group, feed, nil
}

// ProfileFeed returns page `page` of the named author's posts. Unknown
// usernames fail with NotFound.
func (s *FeedService) ProfileFeed(ctx context.Context, username string, page int) (*models.User, *FeedPage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.postRepo.CountByAuthorID(ctx, author.ID)
	if err != nil {
		return nil, nil, err
	}
	feed, err := s.buildPage(ctx, total, page, func(limit, offset int) ([]*models.Post, error) {
		return s.postRepo.ListByAuthorID(ctx, author.ID, limit, offset)
	})
	if err != nil {
		return nil, nil, err
	}
	return author, feed, nil
}

// FollowingFeed returns page `page` of posts authored by anyone the viewer
// follows. The viewer identity is established by the auth boundary; a viewer
// following nobody gets an empty feed, not an error.
func (s *FeedService) FollowingFeed(ctx context.Context, viewerID uint, page int) (*FeedPage, error) {
	authorIDs, err := s.followRepo.FollowingAuthorIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.CountByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	return s.buildPage(ctx, total, page, func(limit, offset int) ([]*models.Post, error) {
		return s.postRepo.ListByAuthorIDs(ctx, authorIDs, limit, offset)
	})
}

// buildPage turns a total count plus a windowed fetch into a FeedPage.
// Pages past the end come back empty rather than erroring.
func (s *FeedService) buildPage(
	_ context.Context,
	total int64,
	page int,
	fetch func(limit, offset int) ([]*models.Post, error),
) (*FeedPage, error) {
	offset, limit := pagination.Window(int(total), page, s.pageSize)

	var posts []*models.Post
	if limit > 0 {
		var err error
		posts, err = fetch(limit, offset)
		if err != nil {
			return nil, err
		}
	}

	return &FeedPage{
		Posts: posts,
		Meta:  pagination.NewMeta(total, page, s.pageSize),
	}, nil
}
