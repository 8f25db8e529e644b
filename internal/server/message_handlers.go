package server

import (
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyMessages handles GET /api/messages
// @Summary List received contact messages
// @Description Return contact messages addressed to the authenticated user, newest first
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ContactMessage
// @Failure 401 {object} object{error=string}
// @Router /messages [get]
func (s *Server) GetMyMessages(c *fiber.Ctx) error {
	userID := currentUserID(c)

	messages, err := s.messageRepo.ListByOwner(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(messages)
}

// MarkMessageRead handles PATCH /api/messages/:id/read
// @Summary Mark a message read
// @Description Mark a received contact message as read
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /messages/{id}/read [patch]
func (s *Server) MarkMessageRead(c *fiber.Ctx) error {
	userID := currentUserID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.messageRepo.MarkRead(c.Context(), id, userID); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Message marked as read",
	})
}

// DeleteMessage handles DELETE /api/messages/:id
// @Summary Delete a message
// @Description Delete a received contact message
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /messages/{id} [delete]
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.messageRepo.Delete(c.Context(), id, userID); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Message deleted",
	})
}
