package server

import (
	"github.com/gofiber/fiber/v2"

	"quill/internal/models"
	"quill/internal/observability"
)

// parsePage extracts the 1-based page query parameter; anything missing or
// malformed means page 1.
func parsePage(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

// respondError maps an application error to its HTTP status and writes the
// standard error body, recording the error on the active span.
func respondError(c *fiber.Ctx, err error) error {
	observability.RecordErrorInContext(c.UserContext(), err)
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// currentUserID returns the authenticated viewer's ID. It is only valid on
// routes behind AuthRequired, which guarantees the local is set.
func currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// AdminRequired allows the request through only for administrator accounts.
// It must run after AuthRequired.
func (s *Server) AdminRequired(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if !user.IsAdmin {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Administrator access required"))
	}
	return c.Next()
}
