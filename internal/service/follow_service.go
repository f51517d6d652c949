package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// FollowService maintains the directed follow graph. It never touches the
// page cache: the following feed is composed fresh on every request.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the edge follower -> author if it is absent. Repeated calls
// are idempotent; following yourself is rejected.
func (s *FollowService) Follow(ctx context.Context, followerID uint, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author.ID == followerID {
		return models.NewValidationError("You cannot follow yourself")
	}

	following, err := s.followRepo.IsFollowing(ctx, followerID, author.ID)
	if err != nil {
		return err
	}
	if following {
		return nil
	}

	return s.followRepo.Create(ctx, &models.Follow{
		FollowerID: followerID,
		AuthorID:   author.ID,
	})
}

// Unfollow deletes the edge follower -> author; a no-op when none exists.
func (s *FollowService) Unfollow(ctx context.Context, followerID uint, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	return s.followRepo.DeleteEdge(ctx, followerID, author.ID)
}

// IsFollowing reports whether follower currently follows the named author.
func (s *FollowService) IsFollowing(ctx context.Context, followerID uint, authorUsername string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return false, err
	}
	return s.followRepo.IsFollowing(ctx, followerID, author.ID)
}
