package service

import (
	"context"
	"testing"
	"time"

	"quill/internal/cache"
	"quill/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupTestCache(t *testing.T) *cache.PageCache {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.NewPageCache(client, time.Hour)
}

func TestCreateGroup(t *testing.T) {
	var stored *models.Group
	groupRepo := &stubGroupRepo{
		create: func(ctx context.Context, group *models.Group) error {
			group.ID = 1
			stored = group
			return nil
		},
	}
	svc := NewGroupService(groupRepo, groupTestCache(t))

	group, err := svc.CreateGroup(context.Background(), CreateGroupInput{
		Title:       "Go Programming",
		Slug:        "go-programming",
		Description: "All things Go",
	})
	require.NoError(t, err)
	assert.Equal(t, stored, group)
}

func TestCreateGroup_SlugValidation(t *testing.T) {
	svc := NewGroupService(&stubGroupRepo{}, groupTestCache(t))

	for _, slug := range []string{"", "Has Spaces", "UPPER", "trailing-", "-leading", "bad!chars"} {
		_, err := svc.CreateGroup(context.Background(), CreateGroupInput{Title: "T", Slug: slug})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr, "slug %q", slug)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code, "slug %q", slug)
	}

	for _, slug := range []string{"go", "go-lang", "go_lang", "group-42"} {
		groupRepo := &stubGroupRepo{
			create: func(ctx context.Context, group *models.Group) error { return nil },
		}
		svc := NewGroupService(groupRepo, groupTestCache(t))
		_, err := svc.CreateGroup(context.Background(), CreateGroupInput{Title: "T", Slug: slug})
		assert.NoError(t, err, "slug %q", slug)
	}
}

// Administrative group writes clear cached feed pages immediately; they do
// not wait out the TTL the way post writes do.
func TestGroupWrites_ClearPageCache(t *testing.T) {
	pc := groupTestCache(t)
	ctx := context.Background()

	groupRepo := &stubGroupRepo{
		create: func(ctx context.Context, group *models.Group) error { return nil },
		getBySlug: func(ctx context.Context, slug string) (*models.Group, error) {
			return &models.Group{ID: 1, Slug: slug}, nil
		},
		delete: func(ctx context.Context, id uint) error { return nil },
	}
	svc := NewGroupService(groupRepo, pc)

	pc.Put(ctx, "/api/feed?page=1", []byte("stale"))
	_, err := svc.CreateGroup(ctx, CreateGroupInput{Title: "T", Slug: "go"})
	require.NoError(t, err)
	_, ok := pc.Get(ctx, "/api/feed?page=1")
	assert.False(t, ok)

	pc.Put(ctx, "/api/feed?page=1", []byte("stale"))
	require.NoError(t, svc.DeleteGroup(ctx, "go"))
	_, ok = pc.Get(ctx, "/api/feed?page=1")
	assert.False(t, ok)
}

func TestDeleteGroup_Unknown(t *testing.T) {
	groupRepo := &stubGroupRepo{
		getBySlug: func(ctx context.Context, slug string) (*models.Group, error) {
			return nil, models.NewNotFoundError("Group", slug)
		},
	}
	svc := NewGroupService(groupRepo, groupTestCache(t))

	err := svc.DeleteGroup(context.Background(), "missing")
	assert.True(t, models.IsNotFound(err))
}
