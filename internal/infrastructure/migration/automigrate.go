package migration

import (
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persisted model for schema-from-struct
// migration in development and tests.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SessionModel{},
		&models.ProjectModel{},
		&models.PageModel{},
		&models.EquationModel{},
		&models.SnippetModel{},
		&models.CanvasModel{},
		&models.RecipeModel{},
		&models.TranslationModel{},
		&models.FileModel{},
		&models.TodoModel{},
		&models.EventModel{},
		&models.AccessRequestModel{},
	}
}
