package daemon

import (
	"gorm.io/gorm"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/config"
	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/db/models"
)

func seed(cfg *config.Config, db *gorm.DB) {
	// Seed initial data if user table is empty

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		// Create default admin user
		db.Create(
			&models.User{
				Email:    "admin@example.com",
				Password: models.HashPassword("changeme"),
				Name:     "Administrator",
				Active:   true,
			},
		)
	}

	// The settings singleton must exist for the admin panel to update it.
	db.Model(&models.SiteSettings{}).Count(&count)
	if count == 0 {
		db.Create(
			&models.SiteSettings{
				SiteName: cfg.Title,
			},
		)
	}
}
