// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"go-tour-booking/auth"   // Password hashing
	"go-tour-booking/config" // Project config
	"go-tour-booking/models" // Entities to migrate

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres" // Postgres driver for GORM
	"gorm.io/driver/sqlite"   // SQLite driver for GORM
	"gorm.io/gorm"            // GORM ORM
	gormlogger "gorm.io/gorm/logger"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when a user with the same email already exists.
	ErrEmailTaken = errors.New("email already registered")
)

// Open connects to the configured database, runs migrations, bootstraps the
// admin account and seeds the tour catalogue.
func Open(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := Connect(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if cfg.CreateAdmin {
		created, err := createDefaultAdmin(db, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("create default admin: %w", err)
		}
		if created {
			log.Info().Str("email", cfg.AdminEmail).Msg("default admin created")
		}
	}

	if cfg.SeedTours {
		n, err := SeedTours(db)
		if err != nil {
			return nil, fmt.Errorf("seed tours: %w", err)
		}
		if n > 0 {
			log.Info().Int("tours", n).Msg("tour catalogue seeded")
		}
	}
	return db, nil
}

// Connect opens the database with the given driver and migrates the schema.
func Connect(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	sqlLog := gormlogger.New(stdlog.New(os.Stderr, "\r\n", stdlog.LstdFlags), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true, // Missing rows are reported as ErrNotFound
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true, // Map unique violations to gorm.ErrDuplicatedKey
		Logger:         sqlLog,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	// Auto-migrate the models (create tables if needed)
	if err := db.AutoMigrate(&models.User{}, &models.Tour{}, &models.Purchase{}, &models.Session{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// createDefaultAdmin creates an admin user with the configured credentials
// unless an admin already exists. It reports whether a user was created.
func createDefaultAdmin(db *gorm.DB, email, password string) (bool, error) {
	// Check if any admin user exists
	var count int64
	if err := db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	admin := models.User{
		FirstName: "Admin",
		Email:     email,
		Password:  hash,
		IsAdmin:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return false, err
	}
	return true, nil
}
