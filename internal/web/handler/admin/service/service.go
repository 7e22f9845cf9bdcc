// Package service provides the admin panel for managing practice areas.
package service

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
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/admin/forms"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/navigation"
)

const (
	// Path is the path to the services admin panel.
	Path = "/admin/services"

	// ListTemplate is the service list template.
	ListTemplate = "admin/service/list"

	// FormTemplate is the service create/edit form template.
	FormTemplate = "admin/service/form"
)

// Service is the practice area admin handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	gw        gateway.Gateway
	validator *validator.Validate

	services *hooks.Hook[[]models.Service]
}

// Handler is the practice area admin handler.
var Handler = Service{}

// form is the service create/edit payload. Features arrive as a textarea
// value, one entry per line.
type form struct {
	Title       string `form:"title" validate:"required,min=2"`
	Description string `form:"description"`
	Icon        string `form:"icon"`
	Features    string `form:"features"`
}

// Init initializes the practice area admin handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gw gateway.Gateway) error {
	if app == nil || cfg == nil || gw == nil {
		return errors.New(handler.ErrNilACGFatalLogMsg)
	}

	s.cfg = cfg
	s.gw = gw
	s.validator = validator.New()
	s.services = hooks.New(gw.ListServices)

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
	return navigation.NewContext(title, "admin", "services").
		AddBreadcrumb("Home", "/dashboard", false).
		AddBreadcrumb("Services", Path, title == "Services")
}

// List renders the service list.
func (s *Service) List(c *fiber.Ctx) error {
	s.services.Refetch()
	snapshot := s.services.Snapshot()

	data := fiber.Map{
		"Navigation": s.nav("Services"),
		"Title":      s.cfg.Title,
		"Services":   snapshot.Data,
	}

	if snapshot.Err != nil {
		log.Error().Err(snapshot.Err).Msg("failed to load services")

		data["Error"] = "Failed to load services"
	}

	return c.Render(ListTemplate, data, handler.BaseLayout)
}

// New renders the empty service form.
func (s *Service) New(c *fiber.Ctx) error {
	return c.Render(FormTemplate, fiber.Map{
		"Navigation": s.nav("New Service").AddBreadcrumb("New", Path+"/new", true),
		"Title":      s.cfg.Title,
	}, handler.BaseLayout)
}

// Create handles the service creation form submission.
func (s *Service) Create(c *fiber.Ctx) error {
	payload, err := s.parseForm(c)
	if err != nil {
		return s.renderForm(c, "New Service", nil, payload, err.Error())
	}

	_, err = s.gw.CreateService(gateway.ServiceInput{
		Title:       payload.Title,
		Description: payload.Description,
		Icon:        payload.Icon,
		Features:    forms.SplitLines(payload.Features),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create service")
		return s.renderForm(c, "New Service", nil, payload, "Failed to create service")
	}

	s.services.Refetch()

	return c.Redirect(Path)
}

// Edit renders the service form prefilled from the current record.
func (s *Service) Edit(c *fiber.Ctx) error {
	service, err := s.findByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Service not found")
	}

	payload := &form{
		Title:       service.Title,
		Description: service.Description,
		Icon:        service.Icon,
		Features:    forms.JoinLines(service.Features),
	}

	return s.renderForm(c, "Edit Service", service, payload, "")
}

// Update handles the service edit form submission.
func (s *Service) Update(c *fiber.Ctx) error {
	service, err := s.findByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Service not found")
	}

	payload, err := s.parseForm(c)
	if err != nil {
		return s.renderForm(c, "Edit Service", service, payload, err.Error())
	}

	features := forms.SplitLines(payload.Features)

	_, err = s.gw.UpdateService(service.ID, gateway.ServicePatch{
		Title:       &payload.Title,
		Description: &payload.Description,
		Icon:        &payload.Icon,
		Features:    &features,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update service")
		return s.renderForm(c, "Edit Service", service, payload, "Failed to update service")
	}

	s.services.Refetch()

	return c.Redirect(Path)
}

// Delete removes a service after the confirmation form posts back.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.gw.DeleteService(c.Params("id")); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Service not found")
		}

		log.Error().Err(err).Msg("failed to delete service")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete service")
	}

	s.services.Refetch()

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
	service *models.Service,
	payload *form,
	errMsg string,
) error {
	data := fiber.Map{
		"Navigation": s.nav(title),
		"Title":      s.cfg.Title,
		"Form":       payload,
		"Record":     service,
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}

	return c.Render(FormTemplate, data, handler.BaseLayout)
}

func (s *Service) findByID(id string) (*models.Service, error) {
	s.services.Refetch()
	snapshot := s.services.Snapshot()

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
