package server

import (
	"log/slog"
	"time"

	"folio/internal/middleware"
	"folio/internal/models"
	"folio/internal/observability"
	"folio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// publicProfile is the visitor-facing projection of a user. Email and other
// account fields never leave the dashboard surface.
type publicProfile struct {
	Username      string    `json:"username"`
	DisplayName   string    `json:"display_name"`
	Bio           string    `json:"bio"`
	AvatarURL     string    `json:"avatar_url"`
	CoverImageURL string    `json:"cover_image_url"`
	CreatedAt     time.Time `json:"created_at"`
}

func toPublicProfile(user *models.User) publicProfile {
	return publicProfile{
		Username:      user.Username,
		DisplayName:   user.DisplayName,
		Bio:           user.Bio,
		AvatarURL:     user.AvatarURL,
		CoverImageURL: user.CoverImageURL,
		CreatedAt:     user.CreatedAt,
	}
}

// lookupPortfolioOwner resolves the :username route param to a user. On a
// miss it writes the 404 response itself and returns errResponseWritten, so
// no further fetches happen for unknown usernames.
func (s *Server) lookupPortfolioOwner(c *fiber.Ctx) (*models.User, error) {
	username := c.Params("username")

	user, err := s.userRepo.GetByUsername(c.Context(), username)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusInternalServerError, err)
		return nil, errResponseWritten
	}
	if user == nil {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewProfileNotFoundError())
		return nil, errResponseWritten
	}
	return user, nil
}

// GetPortfolio handles GET /api/portfolio/:username
// @Summary Public portfolio page
// @Description Return a user's public profile together with their items and social links
// @Tags portfolio
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} object{user=object,items=[]models.PortfolioItem,links=[]models.SocialLink}
// @Failure 404 {object} object{error=string}
// @Router /portfolio/{username} [get]
func (s *Server) GetPortfolio(c *fiber.Ctx) error {
	user, err := s.lookupPortfolioOwner(c)
	if err != nil {
		observability.PortfolioViews.WithLabelValues("not_found").Inc()
		return nil
	}
	observability.PortfolioViews.WithLabelValues("found").Inc()

	// Items and links degrade to empty sections; a broken sidebar should not
	// take down the whole page.
	items, err := s.itemRepo.ListByOwner(c.Context(), user.ID)
	if err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "portfolio items fetch failed",
			slog.String("username", user.Username),
			slog.String("error", err.Error()),
		)
		items = []models.PortfolioItem{}
	}

	links, err := s.linkRepo.ListByOwner(c.Context(), user.ID)
	if err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "portfolio links fetch failed",
			slog.String("username", user.Username),
			slog.String("error", err.Error()),
		)
		links = []models.SocialLink{}
	}

	return c.JSON(fiber.Map{
		"user":  toPublicProfile(user),
		"items": items,
		"links": links,
	})
}

// GetPortfolioItems handles GET /api/portfolio/:username/items
// @Summary Public portfolio items
// @Description Return a user's portfolio items, optionally filtered by content type
// @Tags portfolio
// @Produce json
// @Param username path string true "Username"
// @Param type query string false "Content type filter (image, project, blog, video or all)"
// @Success 200 {array} models.PortfolioItem
// @Failure 404 {object} object{error=string}
// @Router /portfolio/{username}/items [get]
func (s *Server) GetPortfolioItems(c *fiber.Ctx) error {
	user, err := s.lookupPortfolioOwner(c)
	if err != nil {
		return nil
	}

	items, err := s.itemRepo.ListByOwner(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	filtered := models.FilterItemsByType(items, models.ContentType(c.Query("type")))
	return c.JSON(filtered)
}

// GetPortfolioItem handles GET /api/portfolio/:username/items/:id
// @Summary Public portfolio item detail
// @Description Return a single portfolio item and count the view
// @Tags portfolio
// @Produce json
// @Param username path string true "Username"
// @Param id path int true "Item ID"
// @Success 200 {object} models.PortfolioItem
// @Failure 404 {object} object{error=string}
// @Router /portfolio/{username}/items/{id} [get]
func (s *Server) GetPortfolioItem(c *fiber.Ctx) error {
	user, err := s.lookupPortfolioOwner(c)
	if err != nil {
		return nil
	}

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	item, err := s.itemRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	if item.UserID != user.ID {
		notFound := models.NewNotFoundError("Portfolio item", id)
		return models.RespondWithError(c, fiber.StatusNotFound, notFound)
	}

	// Best-effort view counter; losing one count never fails the request.
	if incErr := s.itemRepo.IncrementViews(c.Context(), item.ID); incErr != nil {
		middleware.Logger.WarnContext(c.UserContext(), "view count increment failed",
			slog.Uint64("item_id", uint64(item.ID)),
			slog.String("error", incErr.Error()),
		)
	} else {
		item.ViewCount++
	}

	return c.JSON(item)
}

// SendContactMessage handles POST /api/portfolio/:username/contact
// @Summary Contact a portfolio owner
// @Description Accept a contact message from an (unauthenticated) visitor
// @Tags portfolio
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body object{sender_name=string,sender_email=string,message=string} true "Contact message"
// @Success 201 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /portfolio/{username}/contact [post]
func (s *Server) SendContactMessage(c *fiber.Ctx) error {
	user, err := s.lookupPortfolioOwner(c)
	if err != nil {
		return nil
	}

	var req struct {
		SenderName  string `json:"sender_name"`
		SenderEmail string `json:"sender_email"`
		Message     string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.SenderName == "" || req.SenderEmail == "" || req.Message == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, email, and message are required"))
	}
	if err := validation.ValidateEmail(req.SenderEmail); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	msg := &models.ContactMessage{
		UserID:      user.ID,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Message:     req.Message,
	}

	if err := s.messageRepo.Create(c.Context(), msg); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	observability.ContactMessagesReceived.Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message sent",
	})
}
