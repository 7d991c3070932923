package database

import (
	"fmt"
	"github-summarizer-api/internal/database/migrations"
	"github-summarizer-api/internal/logger"
	"github-summarizer-api/internal/models"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func InitDB(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Route GORM output through the structured logger
	gormLogger := gormlogger.New(
		logger.Logger,
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting underlying *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := db.AutoMigrate(&models.MigrationRecord{}); err != nil {
		return nil, fmt.Errorf("error creating migrations table: %v", err)
	}

	if err := RunMigrations(db, migrations.GetMigrations()); err != nil {
		return nil, fmt.Errorf("error migrating database: %v", err)
	}

	return db, nil
}

// RunMigrations applies every migration that has no MigrationRecord yet,
// each in its own transaction.
func RunMigrations(db *gorm.DB, migrationsList []migrations.Migration) error {
	for _, migration := range migrationsList {
		var record models.MigrationRecord
		result := db.Where("name = ?", migration.Name).First(&record)

		if result.Error == gorm.ErrRecordNotFound {
			logger.Logger.WithField("migration", migration.Name).Info("Running migration")

			err := db.Transaction(func(tx *gorm.DB) error {
				if err := migration.Run(tx); err != nil {
					return err
				}

				return tx.Create(&models.MigrationRecord{Name: migration.Name}).Error
			})

			if err != nil {
				return fmt.Errorf("migration '%s' failed: %v", migration.Name, err)
			}
		} else if result.Error != nil {
			return fmt.Errorf("failed to check migration status: %v", result.Error)
		}
	}

	return nil
}
