package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "work-tools-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Space{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Space")
	}
	if err := DB.AutoMigrate(&dbmodels.SpaceUser{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SpaceUser")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkItem{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры WorkItem")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkItemComment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры WorkItemComment")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkItemAttachment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры WorkItemAttachment")
	}
	if err := DB.AutoMigrate(&dbmodels.PushData{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PushData")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
