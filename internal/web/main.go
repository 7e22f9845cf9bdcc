package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/config"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/gateway"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/admin/attorney"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/admin/blogpost"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/admin/modalcontent"
	adminservice "github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/admin/service"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/admin/sitesettings"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/admin/submission"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/dashboard"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/login"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/logout"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/handler/public"
	authmiddleware "github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/middleware/auth"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	gw           gateway.Gateway
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration and gateway.
func New(cfg *config.Config, gw gateway.Gateway) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if gw == nil {
		panic("gateway cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("shortdate", func(v any) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format("Jan 2, 2006")
		case *time.Time:
			if t == nil {
				return ""
			}

			return t.Format("Jan 2, 2006")
		default:
			return ""
		}
	})
	templateEngine.AddFunc("shortid", func(id string) string {
		if len(id) > 8 { //nolint:mnd
			return id[:8]
		}

		return id
	})

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "GoLawFirm-Admin",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	// prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// session auth middleware guarding the admin surface
	app.Use(authmiddleware.Middleware)

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		gw:  gw,
	}

	service.alive.Store(true)

	// init handlers (they register their own routes)
	initHandlers(app, cfg, gw)

	return service
}

func initHandlers(app *fiber.App, cfg *config.Config, gw gateway.Gateway) {
	type initFunc func(*fiber.App, *config.Config, gateway.Gateway) error

	handlers := map[string]initFunc{
		"login":        login.Handler.Init,
		"dashboard":    dashboard.Handler.Init,
		"attorneys":    attorney.Handler.Init,
		"services":     adminservice.Handler.Init,
		"blog":         blogpost.Handler.Init,
		"modals":       modalcontent.Handler.Init,
		"submissions":  submission.Handler.Init,
		"sitesettings": sitesettings.Handler.Init,
		"public":       public.Handler.Init,
	}

	for name, initHandler := range handlers {
		if err := initHandler(app, cfg, gw); err != nil {
			log.Fatal().Err(err).Msg(fmt.Sprintf("failed to init %s handler", name))
		}
	}

	logout.Handler.Init(app, cfg, gw)
}
