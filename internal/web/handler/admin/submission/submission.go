// Package submission provides the admin inbox for contact form submissions.
package submission

import (
	"errors"

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
	// Path is the path to the submissions admin panel.
	Path = "/admin/submissions"

	// ListTemplate is the submission inbox template.
	ListTemplate = "admin/submission/list"
)

// Service is the submission admin handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	gw  gateway.Gateway

	submissions *hooks.Hook[[]models.ContactSubmission]
}

// Handler is the submission admin handler.
var Handler = Service{}

// Init initializes the submission admin handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gw gateway.Gateway) error {
	if app == nil || cfg == nil || gw == nil {
		return errors.New(handler.ErrNilACGFatalLogMsg)
	}

	s.cfg = cfg
	s.gw = gw
	s.submissions = hooks.New(gw.ListContactSubmissions)

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Post("/:id/status", s.UpdateStatus)
		router.Post("/:id/delete", s.Delete)
	})

	return nil
}

func (s *Service) nav() *navigation.Context {
	return navigation.NewContext("Submissions", "admin", "submissions").
		AddBreadcrumb("Home", "/dashboard", false).
		AddBreadcrumb("Submissions", Path, true)
}

// List renders the submission inbox, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	s.submissions.Refetch()
	snapshot := s.submissions.Snapshot()

	data := fiber.Map{
		"Navigation":  s.nav(),
		"Title":       s.cfg.Title,
		"Submissions": snapshot.Data,
		"Statuses": []models.SubmissionStatus{
			models.SubmissionStatusNew,
			models.SubmissionStatusRead,
			models.SubmissionStatusResponded,
			models.SubmissionStatusArchived,
		},
	}

	if snapshot.Err != nil {
		log.Error().Err(snapshot.Err).Msg("failed to load submissions")

		data["Error"] = "Failed to load submissions"
	}

	return c.Render(ListTemplate, data, handler.BaseLayout)
}

// UpdateStatus moves a submission to a new triage status.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	status := models.SubmissionStatus(c.FormValue("status"))

	_, err := s.gw.UpdateContactSubmissionStatus(c.Params("id"), status)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).SendString("Invalid status")
		case errors.Is(err, gateway.ErrNotFound):
			return c.Status(fiber.StatusNotFound).SendString("Submission not found")
		default:
			log.Error().Err(err).Msg("failed to update submission status")
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to update submission")
		}
	}

	s.submissions.Refetch()

	return c.Redirect(Path)
}

// Delete removes a submission after the confirmation form posts back.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.gw.DeleteContactSubmission(c.Params("id")); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Submission not found")
		}

		log.Error().Err(err).Msg("failed to delete submission")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete submission")
	}

	s.submissions.Refetch()

	return c.Redirect(Path)
}
