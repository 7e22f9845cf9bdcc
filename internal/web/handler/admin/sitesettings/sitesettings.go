// Package sitesettings provides the admin panel for the site settings singleton.
package sitesettings

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/config"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/gateway"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/navigation"
)

const (
	// Path is the path to the site settings admin panel.
	Path = "/admin/settings"

	// TemplateName is the site settings form template.
	TemplateName = "admin/sitesettings/form"
)

// Service is the site settings admin handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	gw        gateway.Gateway
	validator *validator.Validate
}

// Handler is the site settings admin handler.
var Handler = Service{}

// form is the site settings payload. Social links are fixed, well-known
// platforms rather than a free-form map.
type form struct {
	SiteName        string `form:"site_name" validate:"required,min=2"`
	SiteDescription string `form:"site_description"`
	ContactEmail    string `form:"contact_email" validate:"required,email"`
	ContactPhone    string `form:"contact_phone"`
	Address         string `form:"address"`
	BusinessHours   string `form:"business_hours"`
	LinkedIn        string `form:"linkedin" validate:"omitempty,url"`
	Twitter         string `form:"twitter" validate:"omitempty,url"`
	Facebook        string `form:"facebook" validate:"omitempty,url"`
}

// Init initializes the site settings admin handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gw gateway.Gateway) error {
	if app == nil || cfg == nil || gw == nil {
		return errors.New(handler.ErrNilACGFatalLogMsg)
	}

	s.cfg = cfg
	s.gw = gw
	s.validator = validator.New()

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

func (s *Service) nav() *navigation.Context {
	return navigation.NewContext("Site Settings", "admin", "settings").
		AddBreadcrumb("Home", "/dashboard", false).
		AddBreadcrumb("Site Settings", Path, true)
}

// Get renders the settings form from the singleton row.
func (s *Service) Get(c *fiber.Ctx) error {
	payload := &form{}

	settings, err := s.gw.GetSiteSettings()

	switch {
	case err == nil:
		payload.SiteName = settings.SiteName
		payload.SiteDescription = settings.SiteDescription
		payload.ContactEmail = settings.ContactEmail
		payload.ContactPhone = settings.ContactPhone
		payload.Address = settings.Address
		payload.BusinessHours = settings.BusinessHours
		payload.LinkedIn = settings.SocialLinks["linkedin"]
		payload.Twitter = settings.SocialLinks["twitter"]
		payload.Facebook = settings.SocialLinks["facebook"]
	case errors.Is(err, gateway.ErrNotFound), errors.Is(err, gateway.ErrNotConfigured):
		// Render an empty form; saving will fail until the row exists.
	default:
		log.Error().Err(err).Msg("failed to load site settings")
		return s.render(c, payload, "Failed to load site settings", "")
	}

	return s.render(c, payload, "", "")
}

// Post handles the settings form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	payload := new(form)

	if err := c.BodyParser(payload); err != nil {
		return s.render(c, payload, "Invalid form data", "")
	}

	if err := s.validator.Struct(payload); err != nil {
		return s.render(c, payload, "Validation failed: "+err.Error(), "")
	}

	socialLinks := map[string]string{}
	if payload.LinkedIn != "" {
		socialLinks["linkedin"] = payload.LinkedIn
	}

	if payload.Twitter != "" {
		socialLinks["twitter"] = payload.Twitter
	}

	if payload.Facebook != "" {
		socialLinks["facebook"] = payload.Facebook
	}

	_, err := s.gw.UpdateSiteSettings(gateway.SiteSettingsPatch{
		SiteName:        &payload.SiteName,
		SiteDescription: &payload.SiteDescription,
		ContactEmail:    &payload.ContactEmail,
		ContactPhone:    &payload.ContactPhone,
		Address:         &payload.Address,
		BusinessHours:   &payload.BusinessHours,
		SocialLinks:     &socialLinks,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save site settings")
		return s.render(c, payload, "Failed to save site settings", "")
	}

	log.Info().Msg("site settings saved")

	return s.render(c, payload, "", "Settings saved successfully")
}

func (s *Service) render(c *fiber.Ctx, payload *form, errMsg, successMsg string) error {
	data := fiber.Map{
		"Navigation": s.nav(),
		"Title":      s.cfg.Title,
		"Form":       payload,
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}

	if successMsg != "" {
		data["Success"] = successMsg
	}

	return c.Render(TemplateName, data, handler.BaseLayout)
}
