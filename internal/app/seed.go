package app

import (
	"errors"
	"strings"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// seedAdminUser makes sure the moderator's user row exists so admin sessions
// resolve on a fresh database. Admin login itself checks the configured
// credential pair, not this row.
func seedAdminUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Username == "" || cfg.Admin.PasswordHash == "" {
		logger.Warn("admin credentials not configured, admin login disabled")
		return nil
	}

	adminEmail := strings.ToLower(cfg.Admin.Username) + "@admin.local"

	var existing models.User
	err := db.Where("email = ?", adminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.User{
		Email: adminEmail,
		Name:  "Administrator",
		Role:  models.UserRoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("admin user seeded", "email", adminEmail)
	return nil
}
