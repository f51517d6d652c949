package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowAuthor handles POST /api/users/:username/follow
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	if err := s.followService.Follow(c.Context(), currentUserID(c), c.Params("username")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UnfollowAuthor handles DELETE /api/users/:username/follow
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	if err := s.followService.Unfollow(c.Context(), currentUserID(c), c.Params("username")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FollowStatus handles GET /api/users/:username/follow
func (s *Server) FollowStatus(c *fiber.Ctx) error {
	following, err := s.followService.IsFollowing(c.Context(), currentUserID(c), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}
