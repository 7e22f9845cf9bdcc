// Package dashboard provides the admin dashboard with content statistics.
package dashboard

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
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"

	// RecentSubmissions caps the inbox preview on the dashboard.
	RecentSubmissions = 5
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	gw  gateway.Gateway

	attorneys   *hooks.Hook[[]models.Attorney]
	posts       *hooks.Hook[[]models.BlogPost]
	services    *hooks.Hook[[]models.Service]
	submissions *hooks.Hook[[]models.ContactSubmission]
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gw gateway.Gateway) error {
	if app == nil || cfg == nil || gw == nil {
		return errors.New(handler.ErrNilACGFatalLogMsg)
	}

	s.cfg = cfg
	s.gw = gw

	s.attorneys = hooks.New(gw.ListAttorneys)
	s.posts = hooks.New(gw.ListBlogPosts)
	s.services = hooks.New(gw.ListServices)
	s.submissions = hooks.New(gw.ListContactSubmissions)

	app.Get(Path, s.Get)

	return nil
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Dashboard", "dashboard", "dashboard").
		AddBreadcrumb("Home", Path, true)

	s.attorneys.Refetch()
	s.posts.Refetch()
	s.services.Refetch()
	s.submissions.Refetch()

	attorneys := s.attorneys.Snapshot()
	posts := s.posts.Snapshot()
	services := s.services.Snapshot()
	submissions := s.submissions.Snapshot()

	for _, snapErr := range []error{attorneys.Err, posts.Err, services.Err, submissions.Err} {
		if snapErr != nil && !errors.Is(snapErr, gateway.ErrNotConfigured) {
			log.Error().Err(snapErr).Msg("failed to load dashboard data")
		}
	}

	newSubmissions := 0
	for _, submission := range submissions.Data {
		if submission.Status == models.SubmissionStatusNew {
			newSubmissions++
		}
	}

	recent := submissions.Data
	if len(recent) > RecentSubmissions {
		recent = recent[:RecentSubmissions]
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation":        nav,
		"Title":             s.cfg.Title,
		"AttorneyCount":     len(attorneys.Data),
		"PostCount":         len(posts.Data),
		"ServiceCount":      len(services.Data),
		"SubmissionCount":   len(submissions.Data),
		"NewSubmissions":    newSubmissions,
		"RecentSubmissions": recent,
	}, handler.BaseLayout)
}
