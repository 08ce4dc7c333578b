package postgres

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xy-planning-network/enums"
	"gorm.io/gorm"
)

// Seed ensures the lookup table named table exists and carries one row per
// member declared by src. Rows already present keep their data, so Seed is
// safe to run on every boot.
func Seed(db *gorm.DB, table string, src enums.Map) error {
	reg, err := enums.NewRegistry(src)
	if err != nil {
		return err
	}

	if err := ensureLookupTable(db, table); err != nil {
		return err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("%w: %s", enums.ErrUnexpected, tx.Error)
	}

	now := time.Now()
	stmt := fmt.Sprintf(`
		INSERT INTO %s (id, external_id, created_at, updated_at, name, title, position, is_default)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`, table)
	for _, v := range reg.Values() {
		err := tx.Exec(stmt, v.ID(), uuid.New(), now, now, v.Name(), v.Title(), v.Position(), v.IsDefault()).Error
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: seeding %s with %q: %s", enums.ErrUnexpected, table, v.Name(), err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: %s", enums.ErrUnexpected, err)
	}

	slog.Info("seeded enum lookup table", "table", table, "members", reg.Len())

	return nil
}

func ensureLookupTable(db *gorm.DB, table string) error {
	err := db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id INT PRIMARY KEY,
			external_id UUID NOT NULL,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ,
			deleted_at TIMESTAMPTZ,
			name TEXT NOT NULL,
			title TEXT NOT NULL,
			position INT NOT NULL,
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			CONSTRAINT %s_name UNIQUE (name)
		)
	`, table, table)).Error
	if err != nil {
		return fmt.Errorf("%w: creating %s: %s", enums.ErrUnexpected, table, err)
	}

	return nil
}
