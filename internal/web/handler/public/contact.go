package public

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/gateway"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler"
)

// contactForm is the consultation request payload. The subject values match
// the options offered by the contact page select.
type contactForm struct {
	Name    string `form:"name" validate:"required,min=2"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone" validate:"required,min=10"`
	Subject string `form:"subject" validate:"required,oneof=corporate-law ma ip employment litigation real-estate consultation other"`
	Message string `form:"message" validate:"required,min=10"`
}

// subjects drives the select on the contact page.
var subjects = []struct {
	Value string
	Label string
}{
	{"corporate-law", "Corporate Law"},
	{"ma", "Mergers & Acquisitions"},
	{"ip", "Intellectual Property"},
	{"employment", "Employment Law"},
	{"litigation", "Commercial Litigation"},
	{"real-estate", "Real Estate Law"},
	{"consultation", "General Consultation"},
	{"other", "Other"},
}

// Contact renders the contact page with an empty form.
func (s *Service) Contact(c *fiber.Ctx) error {
	return s.renderContact(c, &contactForm{}, "", "")
}

// SubmitContact validates and persists a consultation request. On success
// the confirmation names the address the request was routed to; on failure
// the form values are preserved for retry.
func (s *Service) SubmitContact(c *fiber.Ctx) error {
	payload := new(contactForm)

	if err := c.BodyParser(payload); err != nil {
		return s.renderContact(c, payload, "Invalid form data", "")
	}

	if err := s.validator.Struct(payload); err != nil {
		return s.renderContact(c, payload, "Please correct the highlighted fields and try again.", "")
	}

	_, destination, err := s.gw.SendConsultationEmail(gateway.ConsultationForm{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		if !errors.Is(err, gateway.ErrNotConfigured) {
			log.Error().Err(err).Msg("failed to record consultation request")
		}

		return s.renderContact(c, payload,
			"We could not send your request right now. Please try again in a moment.", "")
	}

	log.Info().Str("subject", payload.Subject).Msg("consultation request submitted")

	return s.renderContact(c, &contactForm{}, "",
		"Thank you. Your consultation request was sent to "+destination+
			" and we will get back to you within 24 hours.")
}

func (s *Service) renderContact(c *fiber.Ctx, payload *contactForm, errMsg, successMsg string) error {
	data := fiber.Map{
		"Navigation": s.nav("Contact", "contact"),
		"Title":      s.cfg.Title,
		"Form":       payload,
		"Subjects":   subjects,
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}

	if successMsg != "" {
		data["Success"] = successMsg
	}

	return c.Render(ContactTemplate, data, handler.PublicLayout)
}
