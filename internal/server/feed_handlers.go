package server

import (
	"encoding/json"

	"quill/internal/models"
	"quill/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
)

// GlobalFeed handles GET /api/feed?page=N
//
// This is the only cached view. The cache key is the resolved request URL,
// which encodes the page number, and the cached value is the fully rendered
// response body. A hit short-circuits the whole request; everything below the
// cache never runs.
func (s *Server) GlobalFeed(c *fiber.Ctx) error {
	ctx := c.Context()
	key := c.OriginalURL()

	if body, ok := s.pageCache.Get(ctx, key); ok {
		observability.AddTraceAttributesToContext(c.UserContext(),
			attribute.String("feed.page_cache", "hit"))
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}
	observability.AddTraceAttributesToContext(c.UserContext(),
		attribute.String("feed.page_cache", "miss"))

	feed, err := s.feedService.GlobalFeed(ctx, parsePage(c))
	if err != nil {
		return respondError(c, err)
	}

	body, err := json.Marshal(feed)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	s.pageCache.Put(ctx, key, body)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// GroupFeed handles GET /api/feed/groups/:slug?page=N (never cached)
func (s *Server) GroupFeed(c *fiber.Ctx) error {
	group, feed, err := s.feedService.GroupFeed(c.Context(), c.Params("slug"), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"group": group,
		"posts": feed.Posts,
		"meta":  feed.Meta,
	})
}

// ProfileFeed handles GET /api/feed/users/:username?page=N (never cached)
func (s *Server) ProfileFeed(c *fiber.Ctx) error {
	author, feed, err := s.feedService.ProfileFeed(c.Context(), c.Params("username"), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"author": author,
		"posts":  feed.Posts,
		"meta":   feed.Meta,
	})
}

// FollowingFeed handles GET /api/feed/following?page=N (auth required, never cached)
func (s *Server) FollowingFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.FollowingFeed(c.Context(), currentUserID(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feed)
}
