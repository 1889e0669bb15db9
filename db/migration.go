package db

import (
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB() error {
	return Migrate(DB)
}

func Migrate(tx *gorm.DB) error {
	log.Info("Запуск миграций")
	if err := tx.AutoMigrate(&dbmodels.JobPosting{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры JobPosting")
	}
	if err := tx.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
