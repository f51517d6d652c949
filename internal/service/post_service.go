package service

import (
	"context"
	"strings"

	"quill/internal/models"
	"quill/internal/repository"
)

// PostService provides post creation, editing and deletion.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

// CreatePostInput carries the fields a caller may set at creation time.
// Author and publication timestamp are fixed then and never change.
type CreatePostInput struct {
	AuthorID  uint
	Text      string
	GroupSlug string
	ImageURL  string
}

// UpdatePostInput carries the editable fields of an existing post.
type UpdatePostInput struct {
	UserID    uint
	PostID    uint
	Text      string
	GroupSlug string
	ImageURL  string
}

const maxPostLen = 50000

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
	}
}

// CreatePost validates and stores a new post. Validation failures come back
// as field-level feedback, never as hard failures.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxPostLen {
		return nil, models.NewValidationError("Text too long (max 50000 characters)")
	}

	post := &models.Post{
		Text:     in.Text,
		AuthorID: in.AuthorID,
		ImageURL: in.ImageURL,
	}

	if in.GroupSlug != "" {
		group, err := s.groupRepo.GetBySlug(ctx, in.GroupSlug)
		if err != nil {
			return nil, err
		}
		post.GroupID = &group.ID
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Reload so the response carries author/group and the computed counts.
	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns a single post with its computed comment count.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost edits a post's text, group or image. Only the author may edit;
// the author and publication timestamp are immutable.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("Only the author can edit this post")
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxPostLen {
		return nil, models.NewValidationError("Text too long (max 50000 characters)")
	}

	post.Text = in.Text
	post.ImageURL = in.ImageURL
	if in.GroupSlug == "" {
		post.GroupID = nil
	} else {
		group, err := s.groupRepo.GetBySlug(ctx, in.GroupSlug)
		if err != nil {
			return nil, err
		}
		post.GroupID = &group.ID
	}
	post.Group = nil

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// DeletePost removes a post. Only the author may delete; comments cascade
// away with it. The global feed page cache is intentionally NOT cleared here,
// so a cached page may keep showing the post until its TTL runs out.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return models.NewForbiddenError("Only the author can delete this post")
	}
	return s.postRepo.Delete(ctx, postID)
}
