package repository

import (
	"gorm.io/gorm"

	"github.com/uptraa/platform/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		&models.Company{},
		&models.User{},
		&models.Skill{},
		&models.UserSkill{},
	}
}

// Migrate creates or updates the schema. It is idempotent.
func Migrate(db *gorm.DB) error {
	for _, ext := range []func(*gorm.DB) error{enableUUIDExtension, enablePostGIS} {
		if err := ext(db); err != nil {
			return err
		}
	}

	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}

	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addLocationColumn,
		addCompanyForeignKey,
	}

	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}

	return nil
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

func enablePostGIS(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS postgis`).Error
}

// addLocationColumn stores (longitude, latitude) in WGS84.
func addLocationColumn(db *gorm.DB) error {
	if err := db.Exec(`ALTER TABLE users ADD COLUMN IF NOT EXISTS location GEOMETRY(POINT, 4326)`).Error; err != nil {
		return err
	}
	return db.Exec(`CREATE INDEX IF NOT EXISTS idx_users_location ON users USING GIST (location)`).Error
}

func addCompanyForeignKey(db *gorm.DB) error {
	return db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = 'fk_users_company_id'
			) THEN
				ALTER TABLE users
				ADD CONSTRAINT fk_users_company_id
				FOREIGN KEY (company_id) REFERENCES companies(id)
				ON DELETE SET NULL;
			END IF;
		END $$;
	`).Error
}
