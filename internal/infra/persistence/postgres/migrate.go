package postgres

import (
	"context"

	"stampshop/internal/errors"
	"stampshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the order tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate order tables")
	}

	return nil
}
