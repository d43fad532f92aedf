package migrate

import (
	"demo-api/internal/model"

	"gorm.io/gorm"
)

// AutoMigrateAll creates the schema for every entity. The join table is
// registered first so posts_tags carries its own created_at column.
func AutoMigrateAll(db *gorm.DB) error {
	if err := db.SetupJoinTable(&model.Post{}, "Tags", &model.PostTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.User{},
		&model.Tag{},
		&model.Post{},
		&model.PostTag{},
	)
}

// DropAll drops every table, association rows first.
func DropAll(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&model.PostTag{},
		&model.Post{},
		&model.Tag{},
		&model.User{},
	)
}
