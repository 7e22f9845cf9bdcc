// Package main provides the entry point for the law firm site application.
// It initializes and runs a web server using the Fiber framework that serves
// the public marketing pages (home, about, services, attorneys, blog, contact)
// and an authenticated admin area with CRUD management of attorneys, services,
// blog posts, contact submissions, modal content and site settings. The
// application uses gorm for data persistence and falls back to a mock gateway
// returning empty results when no backend connection is configured.
package main
