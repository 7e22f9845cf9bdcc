// Package public provides the handlers for the visitor-facing website pages.
package public

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

// Template names for the public pages.
const (
	HomeTemplate      = "public/home"
	AboutTemplate     = "public/about"
	AttorneysTemplate = "public/attorneys"
	AttorneyTemplate  = "public/attorney"
	ServicesTemplate  = "public/services"
	BlogTemplate      = "public/blog"
	PostTemplate      = "public/post"
	ContactTemplate   = "public/contact"
)

// FeaturedServices caps the practice area teaser on the home page.
const FeaturedServices = 3

// Service is the public website handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	gw        gateway.Gateway
	validator *validator.Validate

	attorneys *hooks.Hook[[]models.Attorney]
	services  *hooks.Hook[[]models.Service]
	posts     *hooks.Hook[[]models.BlogPost]
}

// Handler is the public website handler.
var Handler = Service{}

// Init initializes the public website handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gw gateway.Gateway) error {
	if app == nil || cfg == nil || gw == nil {
		return errors.New(handler.ErrNilACGFatalLogMsg)
	}

	s.cfg = cfg
	s.gw = gw
	s.validator = validator.New()

	s.attorneys = hooks.New(gw.ListAttorneys)
	s.services = hooks.New(gw.ListServices)
	s.posts = hooks.New(gw.ListBlogPosts)

	// register routes
	app.Get("/", s.Home)
	app.Get("/about", s.About)
	app.Get("/attorneys", s.Attorneys)
	app.Get("/attorneys/:slug", s.Attorney)
	app.Get("/services", s.Services)
	app.Get("/blog", s.Blog)
	app.Get("/blog/:slug", s.Post)
	app.Get("/contact", s.Contact)
	app.Post("/contact", s.SubmitContact)
	app.Get("/modal/:key", s.Modal)

	return nil
}

func (s *Service) nav(title, page string) *navigation.Context {
	return navigation.NewContext(title, "public", page)
}

// Home renders the landing page with a practice area teaser.
func (s *Service) Home(c *fiber.Ctx) error {
	s.services.Refetch()
	services := s.services.Snapshot()

	featured := services.Data
	if len(featured) > FeaturedServices {
		featured = featured[:FeaturedServices]
	}

	return c.Render(HomeTemplate, fiber.Map{
		"Navigation": s.nav("Home", "home"),
		"Title":      s.cfg.Title,
		"Services":   featured,
	}, handler.PublicLayout)
}

// About renders the about page.
func (s *Service) About(c *fiber.Ctx) error {
	return c.Render(AboutTemplate, fiber.Map{
		"Navigation": s.nav("About", "about"),
		"Title":      s.cfg.Title,
	}, handler.PublicLayout)
}

// Attorneys renders the attorney directory.
func (s *Service) Attorneys(c *fiber.Ctx) error {
	s.attorneys.Refetch()
	snapshot := s.attorneys.Snapshot()

	if snapshot.Err != nil && !errors.Is(snapshot.Err, gateway.ErrNotConfigured) {
		log.Error().Err(snapshot.Err).Msg("failed to load attorneys")
	}

	return c.Render(AttorneysTemplate, fiber.Map{
		"Navigation": s.nav("Attorneys", "attorneys"),
		"Title":      s.cfg.Title,
		"Attorneys":  snapshot.Data,
	}, handler.PublicLayout)
}

// Attorney renders a single attorney profile looked up by slug.
func (s *Service) Attorney(c *fiber.Ctx) error {
	attorney, err := s.gw.GetAttorneyBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) || errors.Is(err, gateway.ErrNotConfigured) {
			return c.Status(fiber.StatusNotFound).Render(AttorneyTemplate, fiber.Map{
				"Navigation": s.nav("Attorney", "attorneys"),
				"Title":      s.cfg.Title,
			}, handler.PublicLayout)
		}

		log.Error().Err(err).Msg("failed to load attorney")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load attorney")
	}

	return c.Render(AttorneyTemplate, fiber.Map{
		"Navigation": s.nav(attorney.Name, "attorneys"),
		"Title":      s.cfg.Title,
		"Attorney":   attorney,
	}, handler.PublicLayout)
}

// Services renders the practice area overview.
func (s *Service) Services(c *fiber.Ctx) error {
	s.services.Refetch()
	snapshot := s.services.Snapshot()

	if snapshot.Err != nil && !errors.Is(snapshot.Err, gateway.ErrNotConfigured) {
		log.Error().Err(snapshot.Err).Msg("failed to load services")
	}

	return c.Render(ServicesTemplate, fiber.Map{
		"Navigation": s.nav("Services", "services"),
		"Title":      s.cfg.Title,
		"Services":   snapshot.Data,
	}, handler.PublicLayout)
}

// Blog renders the published article feed.
func (s *Service) Blog(c *fiber.Ctx) error {
	s.posts.Refetch()
	snapshot := s.posts.Snapshot()

	if snapshot.Err != nil && !errors.Is(snapshot.Err, gateway.ErrNotConfigured) {
		log.Error().Err(snapshot.Err).Msg("failed to load blog posts")
	}

	return c.Render(BlogTemplate, fiber.Map{
		"Navigation": s.nav("Blog", "blog"),
		"Title":      s.cfg.Title,
		"Posts":      snapshot.Data,
	}, handler.PublicLayout)
}

// Post renders a single published article with its content rendered from
// markdown and sanitized.
func (s *Service) Post(c *fiber.Ctx) error {
	post, err := s.gw.GetBlogPostBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) || errors.Is(err, gateway.ErrNotConfigured) {
			return c.Status(fiber.StatusNotFound).Render(PostTemplate, fiber.Map{
				"Navigation": s.nav("Blog", "blog"),
				"Title":      s.cfg.Title,
			}, handler.PublicLayout)
		}

		log.Error().Err(err).Msg("failed to load blog post")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load blog post")
	}

	content, err := RenderMarkdown(post.Content)
	if err != nil {
		log.Error().Err(err).Str("slug", post.Slug).Msg("failed to render post content")
	}

	return c.Render(PostTemplate, fiber.Map{
		"Navigation": s.nav(post.Title, "blog"),
		"Title":      s.cfg.Title,
		"Post":       post,
		"Content":    content,
	}, handler.PublicLayout)
}

// Modal serves admin-managed popup content as JSON for the public pages.
func (s *Service) Modal(c *fiber.Ctx) error {
	content, err := s.gw.GetModalContent(c.Params("key"))
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) || errors.Is(err, gateway.ErrNotConfigured) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "modal content not found",
			})
		}

		log.Error().Err(err).Msg("failed to load modal content")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load modal content",
		})
	}

	body, err := RenderMarkdown(content.Content)
	if err != nil {
		log.Error().Err(err).Str("key", content.Key).Msg("failed to render modal content")
	}

	return c.JSON(fiber.Map{
		"key":         content.Key,
		"title":       content.Title,
		"content":     body,
		"image_url":   content.ImageURL,
		"button_text": content.ButtonText,
	})
}
