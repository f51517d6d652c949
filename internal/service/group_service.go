package service

import (
	"context"
	"regexp"
	"strings"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/repository"
)

// slugPattern matches URL-safe group identifiers.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// GroupService provides group administration. Creating or deleting a group is
// an administrative write that can reshape the global feed, so both clear the
// page cache immediately instead of waiting out the TTL.
type GroupService struct {
	groupRepo repository.GroupRepository
	pageCache *cache.PageCache
}

// CreateGroupInput carries a new group's fields.
type CreateGroupInput struct {
	Title       string
	Slug        string
	Description string
}

// NewGroupService returns a new GroupService.
func NewGroupService(groupRepo repository.GroupRepository, pageCache *cache.PageCache) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		pageCache: pageCache,
	}
}

// CreateGroup validates and stores a new group.
func (s *GroupService) CreateGroup(ctx context.Context, in CreateGroupInput) (*models.Group, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > 200 {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if !slugPattern.MatchString(in.Slug) {
		return nil, models.NewValidationError("Slug must be a URL-safe identifier")
	}

	group := &models.Group{
		Title:       title,
		Slug:        in.Slug,
		Description: in.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	s.pageCache.Clear(ctx)
	return group, nil
}

// GetGroup returns the group with the given slug; NotFound otherwise.
func (s *GroupService) GetGroup(ctx context.Context, slug string) (*models.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

// ListGroups returns all groups ordered by title.
func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.groupRepo.List(ctx)
}

// DeleteGroup removes a group. Its posts keep existing with the group
// reference cleared.
func (s *GroupService) DeleteGroup(ctx context.Context, slug string) error {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.groupRepo.Delete(ctx, group.ID); err != nil {
		return err
	}

	s.pageCache.Clear(ctx)
	return nil
}
