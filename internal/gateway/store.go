package gateway

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/db/models"
)

const (
	whereID   = "id = ?"
	whereSlug = "slug = ?"

	// fallbackContactEmail is used for consultation confirmations when the
	// settings singleton is missing or carries no contact address.
	fallbackContactEmail = "info@example-law.com"
)

// Store is the database backed Gateway implementation.
type Store struct {
	db   *gorm.DB
	auth *AuthState
}

// NewStore creates a Store on top of an open database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:   db,
		auth: NewAuthState(),
	}
}

// Auth exposes the session state for consumers that need direct access.
func (s *Store) Auth() *AuthState {
	return s.auth
}

// ListAttorneys returns all attorneys ordered ascending by creation time.
func (s *Store) ListAttorneys() ([]models.Attorney, error) {
	var attorneys []models.Attorney
	if err := s.db.Order("created_at ASC").Find(&attorneys).Error; err != nil {
		return nil, err
	}

	return attorneys, nil
}

// GetAttorneyBySlug returns the attorney with the given slug.
func (s *Store) GetAttorneyBySlug(slug string) (*models.Attorney, error) {
	var attorney models.Attorney

	err := s.db.Where(whereSlug, slug).First(&attorney).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &attorney, nil
}

// CreateAttorney inserts a new attorney; id and timestamps are assigned
// server-side.
func (s *Store) CreateAttorney(in AttorneyInput) (*models.Attorney, error) {
	attorney := models.Attorney{
		Name:       in.Name,
		Title:      in.Title,
		Bio:        in.Bio,
		Email:      in.Email,
		Phone:      in.Phone,
		ImageURL:   in.ImageURL,
		Expertise:  models.StringList(in.Expertise),
		Education:  models.StringList(in.Education),
		Experience: models.StringList(in.Experience),
		Slug:       in.Slug,
	}

	if err := s.db.Create(&attorney).Error; err != nil {
		return nil, err
	}

	return &attorney, nil
}

// UpdateAttorney applies a partial update; nil patch fields stay untouched.
func (s *Store) UpdateAttorney(id string, patch AttorneyPatch) (*models.Attorney, error) {
	updates := map[string]any{}
	setString(updates, "name", patch.Name)
	setString(updates, "title", patch.Title)
	setString(updates, "bio", patch.Bio)
	setString(updates, "email", patch.Email)
	setString(updates, "phone", patch.Phone)
	setString(updates, "image_url", patch.ImageURL)
	setString(updates, "slug", patch.Slug)
	setList(updates, "expertise", patch.Expertise)
	setList(updates, "education", patch.Education)
	setList(updates, "experience", patch.Experience)

	var attorney models.Attorney

	return &attorney, s.applyUpdate(&attorney, id, updates)
}

// DeleteAttorney removes an attorney. The delete is hard.
func (s *Store) DeleteAttorney(id string) error {
	return s.deleteByID(&models.Attorney{}, id)
}

// ListBlogPosts returns published posts ordered descending by publish time.
func (s *Store) ListBlogPosts() ([]models.BlogPost, error) {
	var posts []models.BlogPost

	err := s.db.Where("published = ?", true).
		Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

// GetBlogPostBySlug returns the published post with the given slug.
func (s *Store) GetBlogPostBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost

	err := s.db.Where("slug = ? AND published = ?", slug, true).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &post, nil
}

// CreateBlogPost inserts a new post. The publish timestamp is set exactly
// when the post is created published; reading time falls back to the default.
func (s *Store) CreateBlogPost(in BlogPostInput) (*models.BlogPost, error) {
	post := models.BlogPost{
		Title:     in.Title,
		Slug:      in.Slug,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		ImageURL:  in.ImageURL,
		Author:    in.Author,
		Category:  in.Category,
		Tags:      models.StringList(in.Tags),
		Published: in.Published,
		ReadTime:  in.ReadTime,
	}

	if post.ReadTime <= 0 {
		post.ReadTime = models.DefaultReadTime
	}

	if in.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	return &post, nil
}

// UpdateBlogPost applies a partial update. A change of the published flag
// sets or clears published_at in the same write.
func (s *Store) UpdateBlogPost(id string, patch BlogPostPatch) (*models.BlogPost, error) {
	updates := map[string]any{}
	setString(updates, "title", patch.Title)
	setString(updates, "slug", patch.Slug)
	setString(updates, "excerpt", patch.Excerpt)
	setString(updates, "content", patch.Content)
	setString(updates, "image_url", patch.ImageURL)
	setString(updates, "author", patch.Author)
	setString(updates, "category", patch.Category)
	setList(updates, "tags", patch.Tags)
	setInt(updates, "read_time", patch.ReadTime)

	if patch.Published != nil {
		updates["published"] = *patch.Published

		if *patch.Published {
			updates["published_at"] = time.Now()
		} else {
			updates["published_at"] = nil
		}
	}

	var post models.BlogPost

	return &post, s.applyUpdate(&post, id, updates)
}

// DeleteBlogPost removes a post. The delete is hard.
func (s *Store) DeleteBlogPost(id string) error {
	return s.deleteByID(&models.BlogPost{}, id)
}

// ListServices returns all services ordered ascending by creation time.
func (s *Store) ListServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Order("created_at ASC").Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

// CreateService inserts a new service.
func (s *Store) CreateService(in ServiceInput) (*models.Service, error) {
	service := models.Service{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Features:    models.StringList(in.Features),
	}

	if err := s.db.Create(&service).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

// UpdateService applies a partial update; nil patch fields stay untouched.
func (s *Store) UpdateService(id string, patch ServicePatch) (*models.Service, error) {
	updates := map[string]any{}
	setString(updates, "title", patch.Title)
	setString(updates, "description", patch.Description)
	setString(updates, "icon", patch.Icon)
	setList(updates, "features", patch.Features)

	var service models.Service

	return &service, s.applyUpdate(&service, id, updates)
}

// DeleteService removes a service. The delete is hard.
func (s *Store) DeleteService(id string) error {
	return s.deleteByID(&models.Service{}, id)
}

// ListContactSubmissions returns all submissions, newest first.
func (s *Store) ListContactSubmissions() ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	if err := s.db.Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}

	return submissions, nil
}

// CreateContactSubmission persists a public form submission with the
// initial "new" status.
func (s *Store) CreateContactSubmission(form ConsultationForm) (*models.ContactSubmission, error) {
	submission := models.ContactSubmission{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	}

	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}

	return &submission, nil
}

// UpdateContactSubmissionStatus moves a submission to a new triage status.
// The status is the only mutable field of a submission.
func (s *Store) UpdateContactSubmissionStatus(
	id string,
	status models.SubmissionStatus,
) (*models.ContactSubmission, error) {
	if !models.ValidSubmissionStatus(status) {
		return nil, ErrInvalidStatus
	}

	var submission models.ContactSubmission

	return &submission, s.applyUpdate(&submission, id, map[string]any{"status": status})
}

// DeleteContactSubmission removes a submission. The delete is hard.
func (s *Store) DeleteContactSubmission(id string) error {
	return s.deleteByID(&models.ContactSubmission{}, id)
}

// ListModalContent returns all modal content rows, newest first. Used by the
// admin panel; the public lookup goes through GetModalContent.
func (s *Store) ListModalContent() ([]models.ModalContent, error) {
	var contents []models.ModalContent
	if err := s.db.Order("created_at DESC").Find(&contents).Error; err != nil {
		return nil, err
	}

	return contents, nil
}

// GetModalContent returns the active content registered under key.
// Inactive rows are invisible here even when the key matches.
func (s *Store) GetModalContent(key string) (*models.ModalContent, error) {
	var content models.ModalContent

	err := s.db.Where("`key` = ? AND active = ?", key, true).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &content, nil
}

// CreateModalContent inserts a new modal content row with the documented
// defaults for button text and the active flag.
func (s *Store) CreateModalContent(in ModalContentInput) (*models.ModalContent, error) {
	content := models.ModalContent{
		Key:        in.Key,
		Title:      in.Title,
		Content:    in.Content,
		ImageURL:   in.ImageURL,
		ButtonText: in.ButtonText,
		Active:     true,
	}

	if content.ButtonText == "" {
		content.ButtonText = models.DefaultButtonText
	}

	if in.Active != nil {
		content.Active = *in.Active
	}

	if err := s.db.Create(&content).Error; err != nil {
		return nil, err
	}

	return &content, nil
}

// UpdateModalContent applies a partial update; nil patch fields stay untouched.
func (s *Store) UpdateModalContent(id string, patch ModalContentPatch) (*models.ModalContent, error) {
	updates := map[string]any{}
	setString(updates, "key", patch.Key)
	setString(updates, "title", patch.Title)
	setString(updates, "content", patch.Content)
	setString(updates, "image_url", patch.ImageURL)
	setString(updates, "button_text", patch.ButtonText)

	if patch.Active != nil {
		updates["active"] = *patch.Active
	}

	var content models.ModalContent

	return &content, s.applyUpdate(&content, id, updates)
}

// DeleteModalContent removes a modal content row. The delete is hard.
func (s *Store) DeleteModalContent(id string) error {
	return s.deleteByID(&models.ModalContent{}, id)
}

// GetSiteSettings returns the settings singleton.
func (s *Store) GetSiteSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings

	err := s.db.First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &settings, nil
}

// UpdateSiteSettings applies a partial update to the singleton row. The row
// is resolved here, never by a caller-supplied id.
func (s *Store) UpdateSiteSettings(patch SiteSettingsPatch) (*models.SiteSettings, error) {
	settings, err := s.GetSiteSettings()
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	setString(updates, "site_name", patch.SiteName)
	setString(updates, "site_description", patch.SiteDescription)
	setString(updates, "contact_email", patch.ContactEmail)
	setString(updates, "contact_phone", patch.ContactPhone)
	setString(updates, "address", patch.Address)
	setString(updates, "business_hours", patch.BusinessHours)

	if patch.SocialLinks != nil {
		updates["social_links"] = models.JSONMap(*patch.SocialLinks)
	}

	var updated models.SiteSettings

	return &updated, s.applyUpdate(&updated, settings.ID, updates)
}

// SendConsultationEmail resolves the notification destination from the
// settings singleton, persists the submission, and returns both. Actual mail
// delivery is an external collaborator; the address only feeds the
// user-facing confirmation.
func (s *Store) SendConsultationEmail(form ConsultationForm) (*models.ContactSubmission, string, error) {
	destination := fallbackContactEmail

	if settings, err := s.GetSiteSettings(); err == nil && settings.ContactEmail != "" {
		destination = settings.ContactEmail
	}

	submission, err := s.CreateContactSubmission(form)
	if err != nil {
		return nil, destination, err
	}

	log.Info().
		Str("destination", destination).
		Str("subject", form.Subject).
		Str("submission_id", submission.ID).
		Msg("consultation request recorded")

	return submission, destination, nil
}

// SignIn authenticates an admin account and makes it the session user.
func (s *Store) SignIn(email, password string) (*models.User, error) {
	var user models.User

	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, err
	}

	if !user.Active {
		return nil, ErrAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	s.auth.Set(&user)

	return &user, nil
}

// SignOut clears the session user and notifies subscribers.
func (s *Store) SignOut() error {
	s.auth.Set(nil)
	return nil
}

// CurrentUser returns the session user, or nil when signed out.
func (s *Store) CurrentUser() (*models.User, error) {
	return s.auth.Current(), nil
}

// OnAuthStateChange registers a session listener; see AuthState.OnChange.
func (s *Store) OnAuthStateChange(fn func(*models.User)) Unsubscribe {
	return s.auth.OnChange(fn)
}

// applyUpdate writes a column map to the row with the given id and reloads
// it into dest. An empty map degrades to a plain reload so a no-op patch
// still returns the current record.
func (s *Store) applyUpdate(dest any, id string, updates map[string]any) error {
	err := s.db.Where(whereID, id).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}

		return err
	}

	if len(updates) == 0 {
		return nil
	}

	if err := s.db.Model(dest).Where(whereID, id).Updates(updates).Error; err != nil {
		return err
	}

	return s.db.Where(whereID, id).First(dest).Error
}

// deleteByID hard-deletes the row with the given id.
func (s *Store) deleteByID(model any, id string) error {
	result := s.db.Where(whereID, id).Delete(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func setString(updates map[string]any, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}

func setInt(updates map[string]any, column string, v *int) {
	if v != nil {
		updates[column] = *v
	}
}

func setList(updates map[string]any, column string, v *[]string) {
	if v != nil {
		updates[column] = models.StringList(*v)
	}
}
