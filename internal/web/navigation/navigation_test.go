package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Attorneys", "admin", "attorneys")

	assert.Equal(t, "Attorneys", ctx.PageTitle)
	assert.Equal(t, "admin", ctx.ActiveSection)
	assert.Equal(t, "attorneys", ctx.ActivePage)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
}

func TestContext_AddBreadcrumb(t *testing.T) {
	ctx := NewContext("Attorneys", "admin", "attorneys")

	ctx.AddBreadcrumb("Home", "/dashboard", false)
	assert.Len(t, ctx.Breadcrumbs, 1)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "/dashboard", ctx.Breadcrumbs[0].URL)
	assert.False(t, ctx.Breadcrumbs[0].Active)

	ctx.AddBreadcrumb("Attorneys", "/admin/attorneys", true)
	assert.Len(t, ctx.Breadcrumbs, 2)
	assert.True(t, ctx.Breadcrumbs[1].Active)
}

func TestContext_AddBreadcrumb_Chaining(t *testing.T) {
	ctx := NewContext("Blog Posts", "admin", "blog").
		AddBreadcrumb("Home", "/dashboard", false).
		AddBreadcrumb("Blog Posts", "/admin/blog", false).
		AddBreadcrumb("Edit", "/admin/blog/edit", true)

	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "Blog Posts", ctx.Breadcrumbs[1].Title)
	assert.Equal(t, "Edit", ctx.Breadcrumbs[2].Title)
	assert.True(t, ctx.Breadcrumbs[2].Active)
}

func TestContext_IsActive(t *testing.T) {
	ctx := NewContext("Submissions", "admin", "submissions")

	assert.True(t, ctx.IsActive("admin", "submissions"))
	assert.False(t, ctx.IsActive("public", "submissions"))
	assert.False(t, ctx.IsActive("admin", "settings"))
	assert.False(t, ctx.IsActive("public", "contact"))
}

func TestContext_IsSectionActive(t *testing.T) {
	ctx := NewContext("Submissions", "admin", "submissions")

	assert.True(t, ctx.IsSectionActive("admin"))
	assert.False(t, ctx.IsSectionActive("public"))
}
