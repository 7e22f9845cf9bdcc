// Package attorney provides the admin panel for managing attorney profiles.
package attorney

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
	// Path is the path to the attorney admin panel.
	Path = "/admin/attorneys"

	// ListTemplate is the attorney list template.
	ListTemplate = "admin/attorney/list"

	// FormTemplate is the attorney create/edit form template.
	FormTemplate = "admin/attorney/form"
)

// Service is the attorney admin handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	gw        gateway.Gateway
	validator *validator.Validate

	attorneys *hooks.Hook[[]models.Attorney]
}

// Handler is the attorney admin handler.
var Handler = Service{}

// form is the attorney create/edit payload. Display lists arrive as
// textarea values, one entry per line.
type form struct {
	Name       string `form:"name" validate:"required,min=2"`
	Title      string `form:"title"`
	Bio        string `form:"bio"`
	Email      string `form:"email" validate:"omitempty,email"`
	Phone      string `form:"phone"`
	ImageURL   string `form:"image_url" validate:"omitempty,url"`
	Expertise  string `form:"expertise"`
	Education  string `form:"education"`
	Experience string `form:"experience"`
	Slug       string `form:"slug" validate:"required,min=2"`
}

// Init initializes the attorney admin handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gw gateway.Gateway) error {
	if app == nil || cfg == nil || gw == nil {
		return errors.New(handler.ErrNilACGFatalLogMsg)
	}

	s.cfg = cfg
	s.gw = gw
	s.validator = validator.New()
	s.attorneys = hooks.New(gw.ListAttorneys)

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
	return navigation.NewContext(title, "admin", "attorneys").
		AddBreadcrumb("Home", "/dashboard", false).
		AddBreadcrumb("Attorneys", Path, title == "Attorneys")
}

// List renders the attorney list.
func (s *Service) List(c *fiber.Ctx) error {
	s.attorneys.Refetch()
	snapshot := s.attorneys.Snapshot()

	data := fiber.Map{
		"Navigation": s.nav("Attorneys"),
		"Title":      s.cfg.Title,
		"Attorneys":  snapshot.Data,
	}

	if snapshot.Err != nil {
		log.Error().Err(snapshot.Err).Msg("failed to load attorneys")

		data["Error"] = "Failed to load attorneys"
	}

	return c.Render(ListTemplate, data, handler.BaseLayout)
}

// New renders the empty attorney form.
func (s *Service) New(c *fiber.Ctx) error {
	return c.Render(FormTemplate, fiber.Map{
		"Navigation": s.nav("New Attorney").AddBreadcrumb("New", Path+"/new", true),
		"Title":      s.cfg.Title,
	}, handler.BaseLayout)
}

// Create handles the attorney creation form submission.
func (s *Service) Create(c *fiber.Ctx) error {
	payload, err := s.parseForm(c)
	if err != nil {
		return s.renderForm(c, "New Attorney", nil, payload, err.Error())
	}

	_, err = s.gw.CreateAttorney(gateway.AttorneyInput{
		Name:       payload.Name,
		Title:      payload.Title,
		Bio:        payload.Bio,
		Email:      payload.Email,
		Phone:      payload.Phone,
		ImageURL:   payload.ImageURL,
		Expertise:  forms.SplitLines(payload.Expertise),
		Education:  forms.SplitLines(payload.Education),
		Experience: forms.SplitLines(payload.Experience),
		Slug:       payload.Slug,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create attorney")
		return s.renderForm(c, "New Attorney", nil, payload, "Failed to create attorney")
	}

	s.attorneys.Refetch()

	return c.Redirect(Path)
}

// Edit renders the attorney form prefilled from the current record.
func (s *Service) Edit(c *fiber.Ctx) error {
	attorney, err := s.findByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Attorney not found")
	}

	payload := &form{
		Name:       attorney.Name,
		Title:      attorney.Title,
		Bio:        attorney.Bio,
		Email:      attorney.Email,
		Phone:      attorney.Phone,
		ImageURL:   attorney.ImageURL,
		Expertise:  forms.JoinLines(attorney.Expertise),
		Education:  forms.JoinLines(attorney.Education),
		Experience: forms.JoinLines(attorney.Experience),
		Slug:       attorney.Slug,
	}

	return s.renderForm(c, "Edit Attorney", attorney, payload, "")
}

// Update handles the attorney edit form submission.
func (s *Service) Update(c *fiber.Ctx) error {
	attorney, err := s.findByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Attorney not found")
	}

	payload, err := s.parseForm(c)
	if err != nil {
		return s.renderForm(c, "Edit Attorney", attorney, payload, err.Error())
	}

	expertise := forms.SplitLines(payload.Expertise)
	education := forms.SplitLines(payload.Education)
	experience := forms.SplitLines(payload.Experience)

	_, err = s.gw.UpdateAttorney(attorney.ID, gateway.AttorneyPatch{
		Name:       &payload.Name,
		Title:      &payload.Title,
		Bio:        &payload.Bio,
		Email:      &payload.Email,
		Phone:      &payload.Phone,
		ImageURL:   &payload.ImageURL,
		Expertise:  &expertise,
		Education:  &education,
		Experience: &experience,
		Slug:       &payload.Slug,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update attorney")
		return s.renderForm(c, "Edit Attorney", attorney, payload, "Failed to update attorney")
	}

	s.attorneys.Refetch()

	return c.Redirect(Path)
}

// Delete removes an attorney after the confirmation form posts back.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.gw.DeleteAttorney(c.Params("id")); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Attorney not found")
		}

		log.Error().Err(err).Msg("failed to delete attorney")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete attorney")
	}

	s.attorneys.Refetch()

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
	attorney *models.Attorney,
	payload *form,
	errMsg string,
) error {
	data := fiber.Map{
		"Navigation": s.nav(title),
		"Title":      s.cfg.Title,
		"Form":       payload,
		"Attorney":   attorney,
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}

	return c.Render(FormTemplate, data, handler.BaseLayout)
}

func (s *Service) findByID(id string) (*models.Attorney, error) {
	s.attorneys.Refetch()
	snapshot := s.attorneys.Snapshot()

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
