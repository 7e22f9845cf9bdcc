package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/login"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/session"
)

// Middleware is a Fiber middleware that guards the admin surface. The public
// website stays reachable without a session; only the dashboard and the
// admin panels require a signed-in user.
func Middleware(c *fiber.Ctx) error {
	isLoginPage := IsLoginPage(c)

	// get session cookie
	loginCookie := c.Cookies("session")

	sessData := new(session.Data)
	sessDataValid := false

	if loginCookie != "" {
		if err := sessData.Read(loginCookie); err == nil && sessData.User.ID != "" {
			sessDataValid = true
			// Expose the current user to templates
			c.Locals("CurrentUser", sessData.User)
		}
	}

	// A signed-in user has no business on the login page.
	if sessDataValid && isLoginPage {
		return c.Redirect("/dashboard")
	}

	if IsProtectedPage(c) && !sessDataValid {
		return c.Redirect(login.Path)
	}

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, login.Path)
}

// IsProtectedPage checks if the current request targets the admin surface.
func IsProtectedPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, "/dashboard") || strings.HasPrefix(originalURL, "/admin")
}
