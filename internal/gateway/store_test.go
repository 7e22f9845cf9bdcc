package gateway

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/db/models"
)

// setupTestStore creates a Store on an in-memory SQLite database.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(
		&models.Attorney{},
		&models.BlogPost{},
		&models.Service{},
		&models.ContactSubmission{},
		&models.ModalContent{},
		&models.SiteSettings{},
		&models.User{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return NewStore(db)
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func TestAttorneyLifecycle(t *testing.T) {
	store := setupTestStore(t)

	created, err := store.CreateAttorney(AttorneyInput{
		Name:      "Jane Morrison",
		Title:     "Senior Partner",
		Bio:       "Twenty years of corporate practice.",
		Email:     "jane@example-law.com",
		Expertise: []string{"Mergers", "Acquisitions"},
		Slug:      "jane-morrison",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Jane Morrison", created.Name)
	assert.Equal(t, models.StringList{"Mergers", "Acquisitions"}, created.Expertise)

	// Lookup by slug returns the same record.
	fetched, err := store.GetAttorneyBySlug("jane-morrison")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	// A partial update leaves unspecified fields untouched.
	updated, err := store.UpdateAttorney(created.ID, AttorneyPatch{
		Title: strPtr("Managing Partner"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Managing Partner", updated.Title)
	assert.Equal(t, "Jane Morrison", updated.Name)
	assert.Equal(t, "Twenty years of corporate practice.", updated.Bio)
	assert.Equal(t, models.StringList{"Mergers", "Acquisitions"}, updated.Expertise)

	err = store.DeleteAttorney(created.ID)
	require.NoError(t, err)

	_, err = store.GetAttorneyBySlug("jane-morrison")
	require.ErrorIs(t, err, ErrNotFound)

	err = store.DeleteAttorney(created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListAttorneysOrder(t *testing.T) {
	store := setupTestStore(t)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	seeds := []models.Attorney{
		{Name: "Newest", Slug: "newest", CreatedAt: base.Add(2 * time.Hour)},
		{Name: "Oldest", Slug: "oldest", CreatedAt: base},
		{Name: "Middle", Slug: "middle", CreatedAt: base.Add(time.Hour)},
	}
	for i := range seeds {
		require.NoError(t, store.db.Create(&seeds[i]).Error)
	}

	attorneys, err := store.ListAttorneys()
	require.NoError(t, err)
	require.Len(t, attorneys, 3)

	// Oldest first.
	assert.Equal(t, "Oldest", attorneys[0].Name)
	assert.Equal(t, "Middle", attorneys[1].Name)
	assert.Equal(t, "Newest", attorneys[2].Name)
}

func TestGetAttorneyBySlugNotFound(t *testing.T) {
	store := setupTestStore(t)

	attorney, err := store.GetAttorneyBySlug("nobody")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, attorney)
}

func TestCreateBlogPostPublishState(t *testing.T) {
	store := setupTestStore(t)

	testCases := []struct {
		name            string
		input           BlogPostInput
		wantPublishedAt bool
		wantReadTime    int
	}{
		{
			name: "draft has no publish timestamp",
			input: BlogPostInput{
				Title: "Draft", Slug: "draft", ReadTime: 8,
			},
			wantPublishedAt: false,
			wantReadTime:    8,
		},
		{
			name: "published gets a timestamp",
			input: BlogPostInput{
				Title: "Live", Slug: "live", Published: true, ReadTime: 3,
			},
			wantPublishedAt: true,
			wantReadTime:    3,
		},
		{
			name: "missing read time falls back to default",
			input: BlogPostInput{
				Title: "Untimed", Slug: "untimed",
			},
			wantPublishedAt: false,
			wantReadTime:    models.DefaultReadTime,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			post, err := store.CreateBlogPost(tc.input)
			require.NoError(t, err)

			assert.Equal(t, tc.wantReadTime, post.ReadTime)

			if tc.wantPublishedAt {
				require.NotNil(t, post.PublishedAt)
				assert.WithinDuration(t, time.Now(), *post.PublishedAt, time.Minute)
			} else {
				assert.Nil(t, post.PublishedAt)
			}
		})
	}
}

func TestListBlogPostsPublishedOnly(t *testing.T) {
	store := setupTestStore(t)

	older := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)

	seeds := []models.BlogPost{
		{Title: "Old Post", Slug: "old-post", Published: true, PublishedAt: &older},
		{Title: "New Post", Slug: "new-post", Published: true, PublishedAt: &newer},
		{Title: "Draft", Slug: "hidden-draft", Published: false},
	}
	for i := range seeds {
		require.NoError(t, store.db.Create(&seeds[i]).Error)
	}

	posts, err := store.ListBlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, 2)

	// Newest publish date first, drafts excluded.
	assert.Equal(t, "New Post", posts[0].Title)
	assert.Equal(t, "Old Post", posts[1].Title)

	_, err = store.GetBlogPostBySlug("hidden-draft")
	require.ErrorIs(t, err, ErrNotFound)

	post, err := store.GetBlogPostBySlug("new-post")
	require.NoError(t, err)
	assert.Equal(t, "New Post", post.Title)
}

func TestUpdateBlogPostPublishTransitions(t *testing.T) {
	store := setupTestStore(t)

	post, err := store.CreateBlogPost(BlogPostInput{Title: "Switching", Slug: "switching"})
	require.NoError(t, err)
	require.Nil(t, post.PublishedAt)

	// Publishing sets the timestamp.
	published, err := store.UpdateBlogPost(post.ID, BlogPostPatch{Published: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, published.Published)
	require.NotNil(t, published.PublishedAt)

	// Unpublishing clears it again.
	draft, err := store.UpdateBlogPost(post.ID, BlogPostPatch{Published: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, draft.Published)
	assert.Nil(t, draft.PublishedAt)

	// Content edits leave the publish state alone.
	edited, err := store.UpdateBlogPost(post.ID, BlogPostPatch{Excerpt: strPtr("teaser")})
	require.NoError(t, err)
	assert.Equal(t, "teaser", edited.Excerpt)
	assert.False(t, edited.Published)
	assert.Nil(t, edited.PublishedAt)
}

func TestServiceLifecycle(t *testing.T) {
	store := setupTestStore(t)

	created, err := store.CreateService(ServiceInput{
		Title:       "Corporate Law",
		Description: "Entity formation and governance.",
		Icon:        "briefcase",
		Features:    []string{"Formation", "Compliance"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StringList{"Formation", "Compliance"}, created.Features)

	updated, err := store.UpdateService(created.ID, ServicePatch{
		Features: &[]string{"Formation", "Compliance", "Disputes"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Corporate Law", updated.Title)
	assert.Len(t, updated.Features, 3)

	services, err := store.ListServices()
	require.NoError(t, err)
	assert.Len(t, services, 1)

	require.NoError(t, store.DeleteService(created.ID))
	require.ErrorIs(t, store.DeleteService(created.ID), ErrNotFound)
}

func TestContactSubmissionStatus(t *testing.T) {
	store := setupTestStore(t)

	submission, err := store.CreateContactSubmission(ConsultationForm{
		Name:    "Sam Carter",
		Email:   "sam@example.com",
		Phone:   "555-0100-220",
		Subject: "consultation",
		Message: "Requesting an initial consultation.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusNew, submission.Status)

	testCases := []struct {
		name          string
		status        models.SubmissionStatus
		expectedError error
	}{
		{name: "mark read", status: models.SubmissionStatusRead},
		{name: "mark responded", status: models.SubmissionStatusResponded},
		{name: "mark archived", status: models.SubmissionStatusArchived},
		{name: "unknown status rejected", status: "spam", expectedError: ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := store.UpdateContactSubmissionStatus(submission.ID, tc.status)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.status, updated.Status)
			}
		})
	}

	_, err = store.UpdateContactSubmissionStatus("missing-id", models.SubmissionStatusRead)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListContactSubmissionsOrder(t *testing.T) {
	store := setupTestStore(t)

	base := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	seeds := []models.ContactSubmission{
		{Name: "First", Email: "a@example.com", CreatedAt: base},
		{Name: "Second", Email: "b@example.com", CreatedAt: base.Add(time.Hour)},
	}
	for i := range seeds {
		require.NoError(t, store.db.Create(&seeds[i]).Error)
	}

	submissions, err := store.ListContactSubmissions()
	require.NoError(t, err)
	require.Len(t, submissions, 2)

	// Newest first for the admin inbox.
	assert.Equal(t, "Second", submissions[0].Name)
	assert.Equal(t, "First", submissions[1].Name)
}

func TestModalContentDefaults(t *testing.T) {
	store := setupTestStore(t)

	content, err := store.CreateModalContent(ModalContentInput{
		Key:   "free-consultation",
		Title: "Free Consultation",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultButtonText, content.ButtonText)
	assert.True(t, content.Active)

	inactive, err := store.CreateModalContent(ModalContentInput{
		Key:        "retired-offer",
		Title:      "Retired Offer",
		ButtonText: "Read On",
		Active:     boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Read On", inactive.ButtonText)
	assert.False(t, inactive.Active)
}

func TestGetModalContentActiveGate(t *testing.T) {
	store := setupTestStore(t)

	created, err := store.CreateModalContent(ModalContentInput{
		Key:   "case-review",
		Title: "Case Review",
	})
	require.NoError(t, err)

	fetched, err := store.GetModalContent("case-review")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	// Deactivating hides the key from public lookup.
	_, err = store.UpdateModalContent(created.ID, ModalContentPatch{Active: boolPtr(false)})
	require.NoError(t, err)

	_, err = store.GetModalContent("case-review")
	require.ErrorIs(t, err, ErrNotFound)

	// The admin list still sees the row.
	all, err := store.ListModalContent()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Reactivating restores the lookup.
	_, err = store.UpdateModalContent(created.ID, ModalContentPatch{Active: boolPtr(true)})
	require.NoError(t, err)

	fetched, err = store.GetModalContent("case-review")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestSiteSettings(t *testing.T) {
	store := setupTestStore(t)

	// No singleton yet.
	_, err := store.GetSiteSettings()
	require.ErrorIs(t, err, ErrNotFound)

	_, err = store.UpdateSiteSettings(SiteSettingsPatch{SiteName: strPtr("Sterling & Price")})
	require.ErrorIs(t, err, ErrNotFound)

	seed := models.SiteSettings{
		SiteName:     "Sterling & Price",
		ContactEmail: "contact@sterlingprice.example.com",
	}
	require.NoError(t, store.db.Create(&seed).Error)

	settings, err := store.GetSiteSettings()
	require.NoError(t, err)
	assert.Equal(t, "Sterling & Price", settings.SiteName)

	updated, err := store.UpdateSiteSettings(SiteSettingsPatch{
		ContactPhone: strPtr("555-0100"),
		SocialLinks:  &map[string]string{"linkedin": "https://linkedin.com/company/sterling"},
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", updated.ContactPhone)
	assert.Equal(t, "Sterling & Price", updated.SiteName)
	assert.Equal(t, "https://linkedin.com/company/sterling", updated.SocialLinks["linkedin"])
}

func TestSendConsultationEmail(t *testing.T) {
	form := ConsultationForm{
		Name:    "Avery Quinn",
		Email:   "avery@example.com",
		Phone:   "555-0100-330",
		Subject: "corporate-law",
		Message: "We need help with an acquisition.",
	}

	t.Run("falls back when settings are missing", func(t *testing.T) {
		store := setupTestStore(t)

		submission, destination, err := store.SendConsultationEmail(form)
		require.NoError(t, err)
		assert.Equal(t, fallbackContactEmail, destination)
		assert.NotEmpty(t, submission.ID)

		// The submission is persisted for admin triage.
		all, err := store.ListContactSubmissions()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("uses the configured contact address", func(t *testing.T) {
		store := setupTestStore(t)

		seed := models.SiteSettings{ContactEmail: "intake@sterlingprice.example.com"}
		require.NoError(t, store.db.Create(&seed).Error)

		_, destination, err := store.SendConsultationEmail(form)
		require.NoError(t, err)
		assert.Equal(t, "intake@sterlingprice.example.com", destination)
	})
}

func TestSignIn(t *testing.T) {
	store := setupTestStore(t)

	seeds := []models.User{
		{Email: "admin@sterlingprice.example.com", Password: models.HashPassword("correct-horse"), Name: "Admin", Active: true},
		{Email: "former@sterlingprice.example.com", Password: models.HashPassword("old-pass"), Name: "Former", Active: false},
	}
	for i := range seeds {
		require.NoError(t, store.db.Create(&seeds[i]).Error)
	}

	testCases := []struct {
		name          string
		email         string
		password      string
		expectedError error
	}{
		{
			name:          "unknown email",
			email:         "nobody@sterlingprice.example.com",
			password:      "whatever",
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "wrong password",
			email:         "admin@sterlingprice.example.com",
			password:      "incorrect",
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "disabled account",
			email:         "former@sterlingprice.example.com",
			password:      "old-pass",
			expectedError: ErrAccountDisabled,
		},
		{
			name:     "successful sign in",
			email:    "admin@sterlingprice.example.com",
			password: "correct-horse",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := store.SignIn(tc.email, tc.password)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tc.email, user.Email)

				current, err := store.CurrentUser()
				require.NoError(t, err)
				require.NotNil(t, current)
				assert.Equal(t, user.ID, current.ID)
			}
		})
	}

	require.NoError(t, store.SignOut())

	current, err := store.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestUpdateMissingRecord(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.UpdateAttorney("missing", AttorneyPatch{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = store.UpdateBlogPost("missing", BlogPostPatch{Title: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = store.UpdateService("missing", ServicePatch{Title: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = store.UpdateModalContent("missing", ModalContentPatch{Title: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSequentialUpdatesLastWriteWins(t *testing.T) {
	store := setupTestStore(t)

	attorney, err := store.CreateAttorney(AttorneyInput{Name: "Casey Reed", Slug: "casey-reed"})
	require.NoError(t, err)

	_, err = store.UpdateAttorney(attorney.ID, AttorneyPatch{Title: strPtr("Associate")})
	require.NoError(t, err)

	final, err := store.UpdateAttorney(attorney.ID, AttorneyPatch{Title: strPtr("Partner")})
	require.NoError(t, err)
	assert.Equal(t, "Partner", final.Title)

	fetched, err := store.GetAttorneyBySlug("casey-reed")
	require.NoError(t, err)
	assert.Equal(t, "Partner", fetched.Title)
}
