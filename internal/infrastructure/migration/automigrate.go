package migration

import (
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SystemSettingModel{},
	}
}
