package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/database/entities"
)

// CatalogModels lists the tables provisioned for the catalog database.
func CatalogModels() []any {
	return []any{&entities.Product{}, &entities.User{}}
}

// AutoMigrate applies the catalog schema and its indexes.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(CatalogModels()...); err != nil {
		return err
	}
	log.Info().Int("tables", len(CatalogModels())).Msg("catalog schema migrated")
	return nil
}
