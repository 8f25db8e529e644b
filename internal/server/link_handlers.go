package server

import (
	"folio/internal/models"
	"folio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetMyLinks handles GET /api/links
// @Summary List own social links
// @Description Return the authenticated user's social links
// @Tags links
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.SocialLink
// @Failure 401 {object} object{error=string}
// @Router /links [get]
func (s *Server) GetMyLinks(c *fiber.Ctx) error {
	userID := currentUserID(c)

	links, err := s.linkRepo.ListByOwner(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(links)
}

// CreateLink handles POST /api/links
// @Summary Add a social link
// @Description Add a social profile link to the authenticated user's portfolio
// @Tags links
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{platform=string,url=string} true "Link fields"
// @Success 201 {object} models.SocialLink
// @Failure 400 {object} object{error=string}
// @Router /links [post]
func (s *Server) CreateLink(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Platform string `json:"platform"`
		URL      string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	platform := models.Platform(req.Platform)
	if !platform.IsValid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid platform"))
	}
	if err := validation.ValidateLinkURL(req.URL); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	link := &models.SocialLink{
		UserID:   userID,
		Platform: platform,
		URL:      req.URL,
	}

	if err := s.linkRepo.Create(c.Context(), link); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(link)
}

// DeleteLink handles DELETE /api/links/:id
// @Summary Remove a social link
// @Description Remove a social link owned by the authenticated user
// @Tags links
// @Security BearerAuth
// @Produce json
// @Param id path int true "Link ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /links/{id} [delete]
func (s *Server) DeleteLink(c *fiber.Ctx) error {
	userID := currentUserID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.linkRepo.Delete(c.Context(), id, userID); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Link deleted",
	})
}
