package server

import (
	"folio/internal/cache"
	"folio/internal/models"
	"folio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile/me
// @Summary Get own profile
// @Description Return the authenticated user's full profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} object{error=string}
// @Router /profile/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/profile/me
// @Summary Update own profile
// @Description Update display name, bio, avatar, cover image or username
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{username=string,display_name=string,bio=string,avatar_url=string,cover_image_url=string} true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /profile/me [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Username      *string `json:"username"`
		DisplayName   *string `json:"display_name"`
		Bio           *string `json:"bio"`
		AvatarURL     *string `json:"avatar_url"`
		CoverImageURL *string `json:"cover_image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	oldUsername := user.Username

	if req.Username != nil && *req.Username != user.Username {
		if err := validation.ValidateUsername(*req.Username); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		taken, err := s.userRepo.GetByUsername(c.Context(), *req.Username)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if taken != nil {
			return models.RespondWithError(c, fiber.StatusConflict,
				models.NewValidationError("Username already taken"))
		}
		user.Username = *req.Username
	}
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.CoverImageURL != nil {
		user.CoverImageURL = *req.CoverImageURL
	}

	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	// A renamed user leaves a stale cache entry under the old username.
	if oldUsername != user.Username {
		cache.InvalidateProfile(c.Context(), oldUsername)
	}

	return c.JSON(user)
}
