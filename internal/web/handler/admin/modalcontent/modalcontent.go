// Package modalcontent provides the admin panel for managing popup content.
package modalcontent

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/config"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/db/models"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/gateway"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/hooks"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/navigation"
)

const (
	// Path is the path to the modal content admin panel.
	Path = "/admin/modals"

	// ListTemplate is the modal content list template.
	ListTemplate = "admin/modalcontent/list"

	// FormTemplate is the modal content create/edit form template.
	FormTemplate = "admin/modalcontent/form"
)

// Service is the modal content admin handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	gw        gateway.Gateway
	validator *validator.Validate

	contents *hooks.Hook[[]models.ModalContent]
}

// Handler is the modal content admin handler.
var Handler = Service{}

// form is the modal content create/edit payload.
type form struct {
	Key        string `form:"key" validate:"required,min=2"`
	Title      string `form:"title" validate:"required,min=2"`
	Content    string `form:"content"`
	ImageURL   string `form:"image_url" validate:"omitempty,url"`
	ButtonText string `form:"button_text"`
	Active     bool   `form:"active"`
}

// Init initializes the modal content admin handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gw gateway.Gateway) error {
	if app == nil || cfg == nil || gw == nil {
		return errors.New(handler.ErrNilACGFatalLogMsg)
	}

	s.cfg = cfg
	s.gw = gw
	s.validator = validator.New()
	s.contents = hooks.New(gw.ListModalContent)

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Get("/new", s.New)
		router.Post("/new", s.Create)
		router.Get("/:id/edit", s.Edit)
		router.Post("/:id/edit", s.Update)
		router.Post("/:id/delete", s.Delete)
	})

	return nil
}

func (s *Service) nav(title string) *navigation.Context {
	return navigation.NewContext(title, "admin", "modals").
		AddBreadcrumb("Home", "/dashboard", false).
		AddBreadcrumb("Modal Content", Path, title == "Modal Content")
}

// List renders the modal content list, inactive rows included.
func (s *Service) List(c *fiber.Ctx) error {
	s.contents.Refetch()
	snapshot := s.contents.Snapshot()

	data := fiber.Map{
		"Navigation": s.nav("Modal Content"),
		"Title":      s.cfg.Title,
		"Contents":   snapshot.Data,
	}

	if snapshot.Err != nil {
		log.Error().Err(snapshot.Err).Msg("failed to load modal content")

		data["Error"] = "Failed to load modal content"
	}

	return c.Render(ListTemplate, data, handler.BaseLayout)
}

// New renders the empty modal content form.
func (s *Service) New(c *fiber.Ctx) error {
	return c.Render(FormTemplate, fiber.Map{
		"Navigation": s.nav("New Modal").AddBreadcrumb("New", Path+"/new", true),
		"Title":      s.cfg.Title,
		"Form":       &form{Active: true, ButtonText: models.DefaultButtonText},
	}, handler.BaseLayout)
}

// Create handles the modal content creation form submission.
func (s *Service) Create(c *fiber.Ctx) error {
	payload, err := s.parseForm(c)
	if err != nil {
		return s.renderForm(c, "New Modal", nil, payload, err.Error())
	}

	_, err = s.gw.CreateModalContent(gateway.ModalContentInput{
		Key:        payload.Key,
		Title:      payload.Title,
		Content:    payload.Content,
		ImageURL:   payload.ImageURL,
		ButtonText: payload.ButtonText,
		Active:     &payload.Active,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create modal content")
		return s.renderForm(c, "New Modal", nil, payload, "Failed to create modal content")
	}

	s.contents.Refetch()

	return c.Redirect(Path)
}

// Edit renders the modal content form prefilled from the current record.
func (s *Service) Edit(c *fiber.Ctx) error {
	content, err := s.findByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Modal content not found")
	}

	payload := &form{
		Key:        content.Key,
		Title:      content.Title,
		Content:    content.Content,
		ImageURL:   content.ImageURL,
		ButtonText: content.ButtonText,
		Active:     content.Active,
	}

	return s.renderForm(c, "Edit Modal", content, payload, "")
}

// Update handles the modal content edit form submission.
func (s *Service) Update(c *fiber.Ctx) error {
	content, err := s.findByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Modal content not found")
	}

	payload, err := s.parseForm(c)
	if err != nil {
		return s.renderForm(c, "Edit Modal", content, payload, err.Error())
	}

	_, err = s.gw.UpdateModalContent(content.ID, gateway.ModalContentPatch{
		Key:        &payload.Key,
		Title:      &payload.Title,
		Content:    &payload.Content,
		ImageURL:   &payload.ImageURL,
		ButtonText: &payload.ButtonText,
		Active:     &payload.Active,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update modal content")
		return s.renderForm(c, "Edit Modal", content, payload, "Failed to update modal content")
	}

	s.contents.Refetch()

	return c.Redirect(Path)
}

// Delete removes a modal content row after the confirmation form posts back.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.gw.DeleteModalContent(c.Params("id")); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Modal content not found")
		}

		log.Error().Err(err).Msg("failed to delete modal content")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete modal content")
	}

	s.contents.Refetch()

	return c.Redirect(Path)
}

func (s *Service) parseForm(c *fiber.Ctx) (*form, error) {
	payload := new(form)

	if err := c.BodyParser(payload); err != nil {
		return payload, errors.New("invalid form data")
	}

	if err := s.validator.Struct(payload); err != nil {
		return payload, errors.New("validation failed: " + err.Error())
	}

	return payload, nil
}

func (s *Service) renderForm(
	c *fiber.Ctx,
	title string,
	content *models.ModalContent,
	payload *form,
	errMsg string,
) error {
	data := fiber.Map{
		"Navigation": s.nav(title),
		"Title":      s.cfg.Title,
		"Form":       payload,
		"Content":    content,
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}

	return c.Render(FormTemplate, data, handler.BaseLayout)
}

func (s *Service) findByID(id string) (*models.ModalContent, error) {
	s.contents.Refetch()
	snapshot := s.contents.Snapshot()

	if snapshot.Err != nil {
		return nil, snapshot.Err
	}

	for i := range snapshot.Data {
		if snapshot.Data[i].ID == id {
			return &snapshot.Data[i], nil
		}
	}

	return nil, gateway.ErrNotFound
}
