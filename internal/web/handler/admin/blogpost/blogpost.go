// Package blogpost provides the admin panel for managing blog articles.
//
// The list mirrors the public feed: it is filtered to published posts. A
// post edited to published=false drops out of the panel until it is
// published again through the database.
package blogpost

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
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/admin/forms"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/navigation"
)

const (
	// Path is the path to the blog admin panel.
	Path = "/admin/blog"

	// ListTemplate is the blog post list template.
	ListTemplate = "admin/blogpost/list"

	// FormTemplate is the blog post create/edit form template.
	FormTemplate = "admin/blogpost/form"
)

// Service is the blog admin handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	gw        gateway.Gateway
	validator *validator.Validate

	posts *hooks.Hook[[]models.BlogPost]
}

// Handler is the blog admin handler.
var Handler = Service{}

// form is the blog post create/edit payload. Tags arrive comma separated.
type form struct {
	Title     string `form:"title" validate:"required,min=2"`
	Slug      string `form:"slug" validate:"required,min=2"`
	Excerpt   string `form:"excerpt"`
	Content   string `form:"content"`
	ImageURL  string `form:"image_url" validate:"omitempty,url"`
	Author    string `form:"author"`
	Category  string `form:"category"`
	Tags      string `form:"tags"`
	Published bool   `form:"published"`
	ReadTime  int    `form:"read_time" validate:"omitempty,min=1"`
}

// Init initializes the blog admin handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gw gateway.Gateway) error {
	if app == nil || cfg == nil || gw == nil {
		return errors.New(handler.ErrNilACGFatalLogMsg)
	}

	s.cfg = cfg
	s.gw = gw
	s.validator = validator.New()
	s.posts = hooks.New(gw.ListBlogPosts)

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Get("/new", s.New)
		router.Post("/new", s.Create)
		router.Get("/:id/edit", s.Edit)
		router.Post("/:id/edit", s.Update)
		router.Post("/:id/delete", s.Delete)
	})

	return nil
}

func (s *Service) nav(title string) *navigation.Context {
	return navigation.NewContext(title, "admin", "blog").
		AddBreadcrumb("Home", "/dashboard", false).
		AddBreadcrumb("Blog Posts", Path, title == "Blog Posts")
}

// List renders the blog post list.
func (s *Service) List(c *fiber.Ctx) error {
	s.posts.Refetch()
	snapshot := s.posts.Snapshot()

	data := fiber.Map{
		"Navigation": s.nav("Blog Posts"),
		"Title":      s.cfg.Title,
		"Posts":      snapshot.Data,
	}

	if snapshot.Err != nil {
		log.Error().Err(snapshot.Err).Msg("failed to load blog posts")

		data["Error"] = "Failed to load blog posts"
	}

	return c.Render(ListTemplate, data, handler.BaseLayout)
}

// New renders the empty blog post form.
func (s *Service) New(c *fiber.Ctx) error {
	return c.Render(FormTemplate, fiber.Map{
		"Navigation": s.nav("New Post").AddBreadcrumb("New", Path+"/new", true),
		"Title":      s.cfg.Title,
	}, handler.BaseLayout)
}

// Create handles the blog post creation form submission.
func (s *Service) Create(c *fiber.Ctx) error {
	payload, err := s.parseForm(c)
	if err != nil {
		return s.renderForm(c, "New Post", nil, payload, err.Error())
	}

	_, err = s.gw.CreateBlogPost(gateway.BlogPostInput{
		Title:     payload.Title,
		Slug:      payload.Slug,
		Excerpt:   payload.Excerpt,
		Content:   payload.Content,
		ImageURL:  payload.ImageURL,
		Author:    payload.Author,
		Category:  payload.Category,
		Tags:      forms.SplitComma(payload.Tags),
		Published: payload.Published,
		ReadTime:  payload.ReadTime,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create blog post")
		return s.renderForm(c, "New Post", nil, payload, "Failed to create blog post")
	}

	s.posts.Refetch()

	return c.Redirect(Path)
}

// Edit renders the blog post form prefilled from the current record.
func (s *Service) Edit(c *fiber.Ctx) error {
	post, err := s.findByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Blog post not found")
	}

	payload := &form{
		Title:     post.Title,
		Slug:      post.Slug,
		Excerpt:   post.Excerpt,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		Author:    post.Author,
		Category:  post.Category,
		Tags:      forms.JoinComma(post.Tags),
		Published: post.Published,
		ReadTime:  post.ReadTime,
	}

	return s.renderForm(c, "Edit Post", post, payload, "")
}

// Update handles the blog post edit form submission.
func (s *Service) Update(c *fiber.Ctx) error {
	post, err := s.findByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Blog post not found")
	}

	payload, err := s.parseForm(c)
	if err != nil {
		return s.renderForm(c, "Edit Post", post, payload, err.Error())
	}

	tags := forms.SplitComma(payload.Tags)
	patch := gateway.BlogPostPatch{
		Title:     &payload.Title,
		Slug:      &payload.Slug,
		Excerpt:   &payload.Excerpt,
		Content:   &payload.Content,
		ImageURL:  &payload.ImageURL,
		Author:    &payload.Author,
		Category:  &payload.Category,
		Tags:      &tags,
		Published: &payload.Published,
	}

	if payload.ReadTime > 0 {
		patch.ReadTime = &payload.ReadTime
	}

	if _, err = s.gw.UpdateBlogPost(post.ID, patch); err != nil {
		log.Error().Err(err).Msg("failed to update blog post")
		return s.renderForm(c, "Edit Post", post, payload, "Failed to update blog post")
	}

	s.posts.Refetch()

	return c.Redirect(Path)
}

// Delete removes a blog post after the confirmation form posts back.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.gw.DeleteBlogPost(c.Params("id")); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Blog post not found")
		}

		log.Error().Err(err).Msg("failed to delete blog post")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete blog post")
	}

	s.posts.Refetch()

	return c.Redirect(Path)
}

func (s *Service) parseForm(c *fiber.Ctx) (*form, error) {
	payload := new(form)

	if err := c.BodyParser(payload); err != nil {
		return payload, errors.New("invalid form data")
	}

	if err := s.validator.Struct(payload); err != nil {
		return payload, errors.New("validation failed: " + err.Error())
	}

	return payload, nil
}

func (s *Service) renderForm(
	c *fiber.Ctx,
	title string,
	post *models.BlogPost,
	payload *form,
	errMsg string,
) error {
	data := fiber.Map{
		"Navigation": s.nav(title),
		"Title":      s.cfg.Title,
		"Form":       payload,
		"Post":       post,
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}

	return c.Render(FormTemplate, data, handler.BaseLayout)
}

func (s *Service) findByID(id string) (*models.BlogPost, error) {
	s.posts.Refetch()
	snapshot := s.posts.Snapshot()

	if snapshot.Err != nil {
		return nil, snapshot.Err
	}

	for i := range snapshot.Data {
		if snapshot.Data[i].ID == id {
			return &snapshot.Data[i], nil
		}
	}

	return nil, gateway.ErrNotFound
}
