// Package auth provides authentication middleware for the web application.
//
// The middleware validates the session cookie and exposes the current user
// to handlers and templates through fiber.Locals. Only the dashboard and the
// admin panels require a session; the public website pages pass through
// untouched, so a missing or invalid cookie never blocks a visitor.
//
// Usage:
//
//	app.Use(authmiddleware.Middleware)
//
// The middleware expects sessions to be managed by the session package
// and redirects unauthenticated admin requests to the login handler path.
package auth
