package server

import (
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyItems handles GET /api/items
// @Summary List own portfolio items
// @Description Return the authenticated user's portfolio items, newest first
// @Tags items
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PortfolioItem
// @Failure 401 {object} object{error=string}
// @Router /items [get]
func (s *Server) GetMyItems(c *fiber.Ctx) error {
	userID := currentUserID(c)

	items, err := s.itemRepo.ListByOwner(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(items)
}

// CreateItem handles POST /api/items
// @Summary Create a portfolio item
// @Description Add a new item to the authenticated user's portfolio
// @Tags items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{content_type=string,title=string,description=string,image_url=string,project_url=string,video_url=string,tags=string} true "Item fields"
// @Success 201 {object} models.PortfolioItem
// @Failure 400 {object} object{error=string}
// @Router /items [post]
func (s *Server) CreateItem(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		ContentType string `json:"content_type"`
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		ProjectURL  string `json:"project_url"`
		VideoURL    string `json:"video_url"`
		Tags        string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	contentType := models.ContentType(req.ContentType)
	if !contentType.IsValid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid content type"))
	}
	if req.Title == "" || req.Description == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and description are required"))
	}

	item := &models.PortfolioItem{
		UserID:      userID,
		ContentType: contentType,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ProjectURL:  req.ProjectURL,
		VideoURL:    req.VideoURL,
		Tags:        models.ParseTags(req.Tags),
	}

	if err := s.itemRepo.Create(c.Context(), item); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem handles PUT /api/items/:id
// @Summary Update a portfolio item
// @Description Update fields of an item owned by the authenticated user
// @Tags items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body object{content_type=string,title=string,description=string,image_url=string,project_url=string,video_url=string,tags=string} true "Item fields"
// @Success 200 {object} models.PortfolioItem
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /items/{id} [put]
func (s *Server) UpdateItem(c *fiber.Ctx) error {
	userID := currentUserID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	item, err := s.itemRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	// Foreign rows are indistinguishable from missing ones.
	if item.UserID != userID {
		notFound := models.NewNotFoundError("Portfolio item", id)
		return models.RespondWithError(c, fiber.StatusNotFound, notFound)
	}

	var req struct {
		ContentType *string `json:"content_type"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		ImageURL    *string `json:"image_url"`
		ProjectURL  *string `json:"project_url"`
		VideoURL    *string `json:"video_url"`
		Tags        *string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.ContentType != nil {
		contentType := models.ContentType(*req.ContentType)
		if !contentType.IsValid() {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid content type"))
		}
		item.ContentType = contentType
	}
	if req.Title != nil {
		if *req.Title == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Title is required"))
		}
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.ProjectURL != nil {
		item.ProjectURL = *req.ProjectURL
	}
	if req.VideoURL != nil {
		item.VideoURL = *req.VideoURL
	}
	if req.Tags != nil {
		item.Tags = models.ParseTags(*req.Tags)
	}

	if err := s.itemRepo.Update(c.Context(), item); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(item)
}

// DeleteItem handles DELETE /api/items/:id
// @Summary Delete a portfolio item
// @Description Remove an item owned by the authenticated user
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /items/{id} [delete]
func (s *Server) DeleteItem(c *fiber.Ctx) error {
	userID := currentUserID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.itemRepo.Delete(c.Context(), id, userID); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Item deleted",
	})
}
