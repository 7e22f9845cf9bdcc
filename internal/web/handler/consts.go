package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// PublicLayout is the layout for the public website pages.
	PublicLayout = "layouts/public"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root path within a route group.
	RouterRootPath = "/"

	// ErrNilACGFatalLogMsg is used if app or cfg or gateway var pointer is nil.
	ErrNilACGFatalLogMsg = "app, cfg or gateway is nil"
)
