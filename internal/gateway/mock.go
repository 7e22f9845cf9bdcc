package gateway

import (
	"github.com/rs/zerolog/log"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/db/models"
)

// Mock is the fallback Gateway used when no backend is configured. List
// operations return empty slices so public pages render blank instead of
// erroring; single-row reads, writes and sign-in all fail with
// ErrNotConfigured so the admin surface points at the missing configuration.
type Mock struct{}

// NewMock creates the unconfigured-backend Gateway and logs a warning so the
// fallback never goes unnoticed.
func NewMock() *Mock {
	log.Warn().Msg("backend not configured, using mock gateway with empty data")

	return &Mock{}
}

func (m *Mock) ListAttorneys() ([]models.Attorney, error) {
	return []models.Attorney{}, nil
}

func (m *Mock) GetAttorneyBySlug(_ string) (*models.Attorney, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) CreateAttorney(_ AttorneyInput) (*models.Attorney, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) UpdateAttorney(_ string, _ AttorneyPatch) (*models.Attorney, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) DeleteAttorney(_ string) error {
	return ErrNotConfigured
}

func (m *Mock) ListBlogPosts() ([]models.BlogPost, error) {
	return []models.BlogPost{}, nil
}

func (m *Mock) GetBlogPostBySlug(_ string) (*models.BlogPost, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) CreateBlogPost(_ BlogPostInput) (*models.BlogPost, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) UpdateBlogPost(_ string, _ BlogPostPatch) (*models.BlogPost, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) DeleteBlogPost(_ string) error {
	return ErrNotConfigured
}

func (m *Mock) ListServices() ([]models.Service, error) {
	return []models.Service{}, nil
}

func (m *Mock) CreateService(_ ServiceInput) (*models.Service, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) UpdateService(_ string, _ ServicePatch) (*models.Service, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) DeleteService(_ string) error {
	return ErrNotConfigured
}

func (m *Mock) ListContactSubmissions() ([]models.ContactSubmission, error) {
	return []models.ContactSubmission{}, nil
}

func (m *Mock) CreateContactSubmission(_ ConsultationForm) (*models.ContactSubmission, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) UpdateContactSubmissionStatus(
	_ string,
	_ models.SubmissionStatus,
) (*models.ContactSubmission, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) DeleteContactSubmission(_ string) error {
	return ErrNotConfigured
}

func (m *Mock) ListModalContent() ([]models.ModalContent, error) {
	return []models.ModalContent{}, nil
}

func (m *Mock) GetModalContent(_ string) (*models.ModalContent, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) CreateModalContent(_ ModalContentInput) (*models.ModalContent, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) UpdateModalContent(_ string, _ ModalContentPatch) (*models.ModalContent, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) DeleteModalContent(_ string) error {
	return ErrNotConfigured
}

func (m *Mock) GetSiteSettings() (*models.SiteSettings, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) UpdateSiteSettings(_ SiteSettingsPatch) (*models.SiteSettings, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) SendConsultationEmail(_ ConsultationForm) (*models.ContactSubmission, string, error) {
	return nil, fallbackContactEmail, ErrNotConfigured
}

func (m *Mock) SignIn(_, _ string) (*models.User, error) {
	return nil, ErrNotConfigured
}

func (m *Mock) SignOut() error {
	return nil
}

func (m *Mock) CurrentUser() (*models.User, error) {
	return nil, nil
}

func (m *Mock) OnAuthStateChange(_ func(*models.User)) Unsubscribe {
	return func() {}
}
