// Package gateway is the boundary module exposing CRUD and auth operations
// against the backing store. Two implementations exist: Store, backed by the
// configured database, and Mock, selected at startup when no backend
// connection is configured. Every operation returns its failure as an error
// value; expected failures never panic.
package gateway

import (
	"errors"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/db/models"
)

var (
	// ErrNotConfigured is returned by every write and sign-in on the mock
	// fallback when no backend connection parameters are configured.
	ErrNotConfigured = errors.New("backend not configured: set backend.url and backend.api_key")
	// ErrNotFound is returned when a single-row lookup matches zero rows.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidStatus is returned for an unknown contact submission status.
	ErrInvalidStatus = errors.New("invalid submission status")
	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountDisabled is returned when the account exists but is inactive.
	ErrAccountDisabled = errors.New("account is disabled")
)

// AttorneyInput carries the fields accepted when creating an attorney.
type AttorneyInput struct {
	Name       string
	Title      string
	Bio        string
	Email      string
	Phone      string
	ImageURL   string
	Expertise  []string
	Education  []string
	Experience []string
	Slug       string
}

// AttorneyPatch carries a partial update; nil fields are left untouched.
type AttorneyPatch struct {
	Name       *string
	Title      *string
	Bio        *string
	Email      *string
	Phone      *string
	ImageURL   *string
	Expertise  *[]string
	Education  *[]string
	Experience *[]string
	Slug       *string
}

// BlogPostInput carries the fields accepted when creating a blog post.
type BlogPostInput struct {
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	ImageURL  string
	Author    string
	Category  string
	Tags      []string
	Published bool
	ReadTime  int
}

// BlogPostPatch carries a partial update; nil fields are left untouched.
// Setting Published also sets or clears the publish timestamp.
type BlogPostPatch struct {
	Title     *string
	Slug      *string
	Excerpt   *string
	Content   *string
	ImageURL  *string
	Author    *string
	Category  *string
	Tags      *[]string
	Published *bool
	ReadTime  *int
}

// ServiceInput carries the fields accepted when creating a service.
type ServiceInput struct {
	Title       string
	Description string
	Icon        string
	Features    []string
}

// ServicePatch carries a partial update; nil fields are left untouched.
type ServicePatch struct {
	Title       *string
	Description *string
	Icon        *string
	Features    *[]string
}

// ModalContentInput carries the fields accepted when creating modal content.
// ButtonText defaults to "Learn More" and Active to true when unset.
type ModalContentInput struct {
	Key        string
	Title      string
	Content    string
	ImageURL   string
	ButtonText string
	Active     *bool
}

// ModalContentPatch carries a partial update; nil fields are left untouched.
type ModalContentPatch struct {
	Key        *string
	Title      *string
	Content    *string
	ImageURL   *string
	ButtonText *string
	Active     *bool
}

// SiteSettingsPatch carries a partial update of the settings singleton.
type SiteSettingsPatch struct {
	SiteName        *string
	SiteDescription *string
	ContactEmail    *string
	ContactPhone    *string
	Address         *string
	BusinessHours   *string
	SocialLinks     *map[string]string
}

// ConsultationForm is a submission of the public contact form.
type ConsultationForm struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Unsubscribe cancels a single auth-state subscription. Calling it more than
// once is harmless.
type Unsubscribe func()

// Gateway exposes the typed CRUD and auth operations the rest of the
// application consumes. Implementations never panic on expected failures.
type Gateway interface {
	// Attorneys, ordered ascending by creation time.
	ListAttorneys() ([]models.Attorney, error)
	GetAttorneyBySlug(slug string) (*models.Attorney, error)
	CreateAttorney(in AttorneyInput) (*models.Attorney, error)
	UpdateAttorney(id string, patch AttorneyPatch) (*models.Attorney, error)
	DeleteAttorney(id string) error

	// Blog posts. Lists and slug lookups only see published posts,
	// ordered descending by publish time.
	ListBlogPosts() ([]models.BlogPost, error)
	GetBlogPostBySlug(slug string) (*models.BlogPost, error)
	CreateBlogPost(in BlogPostInput) (*models.BlogPost, error)
	UpdateBlogPost(id string, patch BlogPostPatch) (*models.BlogPost, error)
	DeleteBlogPost(id string) error

	// Services, ordered ascending by creation time.
	ListServices() ([]models.Service, error)
	CreateService(in ServiceInput) (*models.Service, error)
	UpdateService(id string, patch ServicePatch) (*models.Service, error)
	DeleteService(id string) error

	// Contact submissions, ordered descending by creation time. The list
	// is unfiltered and admin-only; the public form only creates.
	ListContactSubmissions() ([]models.ContactSubmission, error)
	CreateContactSubmission(form ConsultationForm) (*models.ContactSubmission, error)
	UpdateContactSubmissionStatus(id string, status models.SubmissionStatus) (*models.ContactSubmission, error)
	DeleteContactSubmission(id string) error

	// Modal content. The keyed lookup only sees active rows.
	ListModalContent() ([]models.ModalContent, error)
	GetModalContent(key string) (*models.ModalContent, error)
	CreateModalContent(in ModalContentInput) (*models.ModalContent, error)
	UpdateModalContent(id string, patch ModalContentPatch) (*models.ModalContent, error)
	DeleteModalContent(id string) error

	// Site settings singleton. Updates always target "the" row.
	GetSiteSettings() (*models.SiteSettings, error)
	UpdateSiteSettings(patch SiteSettingsPatch) (*models.SiteSettings, error)

	// SendConsultationEmail resolves the notification destination from the
	// settings singleton, persists the submission and returns both. No
	// mail transport is involved; the address is for confirmation text.
	SendConsultationEmail(form ConsultationForm) (*models.ContactSubmission, string, error)

	// Auth. OnAuthStateChange notifies synchronously on every session
	// user change; each subscription is individually cancelable.
	SignIn(email, password string) (*models.User, error)
	SignOut() error
	CurrentUser() (*models.User, error)
	OnAuthStateChange(fn func(*models.User)) Unsubscribe
}
