package handlers

import (
	"net/url"
	"strconv"

	"affirm/internal/composer"
	"affirm/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AffirmationHandler handles HTTP requests for generating and saving
// affirmations.
type AffirmationHandler struct {
	service  *services.AffirmationService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAffirmationHandler creates a new AffirmationHandler.
func NewAffirmationHandler(service *services.AffirmationService, validate *validator.Validate, logger *zap.Logger) *AffirmationHandler {
	return &AffirmationHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// RegisterRoutes registers the affirmation routes.
func (h *AffirmationHandler) RegisterRoutes(router fiber.Router) {
	affirmationRoutes := router.Group("/affirmations")
	affirmationRoutes.Post("/generate", h.HandleGenerate)
	affirmationRoutes.Post("/", h.HandleSave)
	affirmationRoutes.Get("/:owner", h.HandleList)
	affirmationRoutes.Get("/:owner/:id", h.HandleGet)
	affirmationRoutes.Delete("/:owner/:id", h.HandleDelete)
}

// GenerateRequest represents the form fields an affirmation is composed from.
type GenerateRequest struct {
	Desire   string `json:"desire" validate:"required"`
	Fear     string `json:"fear"`
	Blessing string `json:"blessing"`
	Outcome  string `json:"outcome" validate:"required"`
	Address  string `json:"address"`
}

// HandleGenerate composes a new affirmation without saving it.
func (h *AffirmationHandler) HandleGenerate(c *fiber.Ctx) error {
	var req GenerateRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	text, err := h.service.Generate(composer.Input{
		Desire:   req.Desire,
		Fear:     req.Fear,
		Blessing: req.Blessing,
		Outcome:  req.Outcome,
		Address:  req.Address,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Error generating affirmation")
	}
	return c.JSON(fiber.Map{"affirmation": text})
}

// SaveAffirmationRequest represents the request body for saving an affirmation.
type SaveAffirmationRequest struct {
	Username             string `json:"username" validate:"required"`
	Desire               string `json:"desire" validate:"required"`
	Fear                 string `json:"fear"`
	Blessing             string `json:"blessing"`
	Outcome              string `json:"outcome" validate:"required"`
	Address              string `json:"address"`
	GeneratedAffirmation string `json:"generated_affirmation" validate:"required"`
}

// HandleSave persists an affirmation.
func (h *AffirmationHandler) HandleSave(c *fiber.Ctx) error {
	var req SaveAffirmationRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	id, err := h.service.Save(c.UserContext(), services.SaveInput{
		Username:             req.Username,
		Desire:               req.Desire,
		Fear:                 req.Fear,
		Blessing:             req.Blessing,
		Outcome:              req.Outcome,
		Address:              req.Address,
		GeneratedAffirmation: req.GeneratedAffirmation,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Error saving affirmation")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Affirmation saved successfully",
		"id":      id,
	})
}

// HandleList returns all affirmations saved under an owner, newest first.
func (h *AffirmationHandler) HandleList(c *fiber.Ctx) error {
	affirmations, err := h.service.List(c.UserContext(), ownerParam(c))
	if err != nil {
		return respondError(c, h.logger, err, "Error fetching affirmations")
	}
	return c.JSON(fiber.Map{"affirmations": affirmations})
}

// HandleGet returns a single affirmation scoped to its owner.
func (h *AffirmationHandler) HandleGet(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return respondError(c, h.logger, services.ErrNotFound, "")
	}

	affirmation, err := h.service.Get(c.UserContext(), ownerParam(c), id)
	if err != nil {
		return respondError(c, h.logger, err, "Error fetching affirmation")
	}
	return c.JSON(fiber.Map{"affirmation": affirmation})
}

// HandleDelete removes a single affirmation scoped to its owner.
func (h *AffirmationHandler) HandleDelete(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return respondError(c, h.logger, services.ErrNotFound, "")
	}

	if err := h.service.Delete(c.UserContext(), ownerParam(c), id); err != nil {
		return respondError(c, h.logger, err, "Error deleting affirmation")
	}
	return c.JSON(fiber.Map{"message": "Affirmation deleted successfully"})
}

func ownerParam(c *fiber.Ctx) string {
	raw := c.Params("owner")
	if owner, err := url.PathUnescape(raw); err == nil {
		return owner
	}
	return raw
}

// idParam parses the :id segment. Ids that cannot have been assigned are
// reported as not found.
func idParam(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
