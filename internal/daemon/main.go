package daemon

import (
	"fmt"

	sessionmysql "github.com/gofiber/storage/mysql/v2"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/config"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/db/dsn"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/db/models"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/gateway"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration. When the
// backend section is configured the daemon opens the database and serves real
// data; otherwise it falls back to the mock gateway so the public site still
// renders.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	var gw gateway.Gateway

	if cfg.Backend.Configured() {
		gw = newStoreGateway(cfg)
	} else {
		gw = gateway.NewMock()

		// Session storage without a database lives in memory.
		session.InitDefault()
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, gw),
	}
}

func newStoreGateway(cfg *config.Config) *gateway.Store {
	dbDriver := gormmysql.Open(dsn.Create(cfg)) // open db with gorm mysql driver

	db, err := gorm.Open(dbDriver, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.Attorney{},
		&models.BlogPost{},
		&models.Service{},
		&models.ContactSubmission{},
		&models.ModalContent{},
		&models.SiteSettings{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	// Initialize fiber session store
	sessionStorage := sessionmysql.New(sessionmysql.Config{
		ConnectionURI: dsn.Create(cfg),
		Table:         "sessions",
	})

	session.Init(sessionStorage)

	return gateway.NewStore(db)
}
