package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/models"
)

// AutoMigrate runs database schema migrations for all models. The two
// income ledgers share the IncomeEntry shape but live in separate tables,
// so they are migrated per table, each with a composite unique index on
// (year, month_index) to keep one row per calendar month.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.RentalProperty{},
		&models.UploadedFile{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, kind := range []models.IncomeKind{
		models.KindUSAFRetirement,
		models.KindVADisability,
	} {
		table := kind.TableName()
		if err := db.Table(table).AutoMigrate(&models.IncomeEntry{}); err != nil {
			return fmt.Errorf("auto migrate %s: %w", table, err)
		}
		idx := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_year_month ON %s(year, month_index)",
			table, table,
		)
		if err := db.Exec(idx).Error; err != nil {
			return fmt.Errorf("create unique index on %s: %w", table, err)
		}
	}

	return nil
}
