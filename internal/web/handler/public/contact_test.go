package public

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/config"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/db/models"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/gateway"
)

// noOpViews is a minimal Fiber Views engine used for tests. It writes the
// Error or Success field from the provided fiber.Map (if any) so tests can
// assert messages rendered by handlers.
type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		if v, exists := m["Error"]; exists && v != nil {
			_, _ = io.WriteString(w, v.(string))
			return nil
		}

		if v, exists := m["Success"]; exists && v != nil {
			_, _ = io.WriteString(w, v.(string))
			return nil
		}
	}
	// write template name to have some content
	_, _ = io.WriteString(w, name)

	return nil
}

// stubGateway overrides the consultation and modal operations of the mock
// fallback and counts the calls that reach the backend.
type stubGateway struct {
	*gateway.Mock
	consultations int
	modal         *models.ModalContent
}

func (s *stubGateway) SendConsultationEmail(
	form gateway.ConsultationForm,
) (*models.ContactSubmission, string, error) {
	s.consultations++

	return &models.ContactSubmission{
		ID:      "sub-1",
		Name:    form.Name,
		Email:   form.Email,
		Status:  models.SubmissionStatusNew,
		Message: form.Message,
	}, "intake@sterlingprice.example.com", nil
}

func (s *stubGateway) GetModalContent(key string) (*models.ModalContent, error) {
	if s.modal != nil && s.modal.Key == key {
		return s.modal, nil
	}

	return nil, gateway.ErrNotFound
}

func newTestApp(t *testing.T) (*fiber.App, *stubGateway) {
	t.Helper()

	app := fiber.New(fiber.Config{Views: noOpViews{}})
	cfg := &config.Config{
		Title: "Sterling & Price",
		Webserver: config.Webserver{
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}
	stub := &stubGateway{Mock: gateway.NewMock()}

	var s Service
	require.NoError(t, s.Init(app, cfg, stub))

	return app, stub
}

func performPost(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestContactFormValidation(t *testing.T) {
	v := validator.New()

	// Every field invalid at once.
	bad := contactForm{
		Name:    "J",
		Email:   "not-an-email",
		Phone:   "12345",
		Subject: "tax-evasion",
		Message: "too short",
	}

	err := v.Struct(bad)
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	failed := make(map[string]bool)
	for _, fieldErr := range validationErrs {
		failed[fieldErr.Field()] = true
	}

	assert.True(t, failed["Name"])
	assert.True(t, failed["Email"])
	assert.True(t, failed["Phone"])
	assert.True(t, failed["Subject"])
	assert.True(t, failed["Message"])

	// And a clean payload passes.
	good := contactForm{
		Name:    "Avery Quinn",
		Email:   "avery@example.com",
		Phone:   "555-010-0330",
		Subject: "corporate-law",
		Message: "We need help with an acquisition.",
	}
	require.NoError(t, v.Struct(good))
}

func TestSubmitContact_InvalidFormSkipsGateway(t *testing.T) {
	app, stub := newTestApp(t)

	form := url.Values{
		"name":    {"J"},
		"email":   {"broken"},
		"phone":   {"123"},
		"subject": {""},
		"message": {"hi"},
	}
	resp := performPost(t, app, "/contact", form)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "correct the highlighted fields")
	assert.Zero(t, stub.consultations, "invalid submission must not reach the gateway")
}

func TestSubmitContact_Success(t *testing.T) {
	app, stub := newTestApp(t)

	form := url.Values{
		"name":    {"Avery Quinn"},
		"email":   {"avery@example.com"},
		"phone":   {"555-010-0330"},
		"subject": {"consultation"},
		"message": {"We would like an initial consultation."},
	}
	resp := performPost(t, app, "/contact", form)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "intake@sterlingprice.example.com")
	assert.Equal(t, 1, stub.consultations)
}

func TestSubmitContact_BackendUnavailablePreservesRetryMessage(t *testing.T) {
	app := fiber.New(fiber.Config{Views: noOpViews{}})
	cfg := &config.Config{Title: "Sterling & Price"}

	// Plain mock: SendConsultationEmail fails with ErrNotConfigured.
	var s Service
	require.NoError(t, s.Init(app, cfg, gateway.NewMock()))

	form := url.Values{
		"name":    {"Avery Quinn"},
		"email":   {"avery@example.com"},
		"phone":   {"555-010-0330"},
		"subject": {"other"},
		"message": {"We would like an initial consultation."},
	}
	resp := performPost(t, app, "/contact", form)

	defer func() {
		_ = resp.Body.Close()
	}()

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "try again")
}

func TestModalEndpoint(t *testing.T) {
	app, stub := newTestApp(t)
	stub.modal = &models.ModalContent{
		ID:         "m1",
		Key:        "free-consultation",
		Title:      "Free Consultation",
		Content:    "Book a **free** case review.",
		ButtonText: models.DefaultButtonText,
		Active:     true,
	}

	req := httptest.NewRequest(http.MethodGet, "/modal/free-consultation", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "free-consultation", payload["key"])
	assert.Equal(t, "Free Consultation", payload["title"])
	assert.Contains(t, payload["content"], "<strong>free</strong>")

	// Unknown key is a 404.
	req = httptest.NewRequest(http.MethodGet, "/modal/unknown", nil)
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp2.Body.Close()
	}()

	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}
