package database

import (
	"embed"

	"studiodesk/internal/repository"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the schema up to date. Postgres runs the embedded goose
// migrations, which include the booking no-overlap exclusion constraint.
// The sqlite development path uses AutoMigrate; there the overlap invariant
// is held only by the application-level conflict check.
func Migrate(db *gorm.DB, dsn string) error {
	if !IsPostgres(dsn) {
		return repository.AutoMigrate(db)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(sqlDB, "migrations")
}
