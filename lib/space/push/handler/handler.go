package pushhandler

import (
	"time"
	"work-tools-backend/config"
	"work-tools-backend/db"
	"work-tools-backend/lib/smtp"
	spaceusersstore "work-tools-backend/lib/space/users/store"
	pushdatastore "work-tools-backend/lib/space/push/data-store"
	connectionhub "work-tools-backend/lib/ws/hub/connection-hub"
	"work-tools-backend/models"
	dbmodels "work-tools-backend/models/db"
	wsmodels "work-tools-backend/models/ws"

	log "github.com/sirupsen/logrus"
)

// Диспетчер уведомлений. Вызывается после успешных операций ядра,
// любые сбои доставки логируются и не влияют на результат операции.
type Provider interface {
	SendNotification(userID string, data models.NotificationData)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		spaceUserStore: spaceusersstore.NewInstance(db.DB),
		pushDataStore:  pushdatastore.NewInstance(db.DB),
	}
}

type impl struct {
	spaceUserStore spaceusersstore.Provider
	pushDataStore  pushdatastore.Provider
}

func (i impl) getLogger(userID, code string) *log.Entry {
	logger := log.
		WithField("user_id", userID).
		WithField("event_code", code)
	return logger
}

func (i impl) SendNotification(userID string, data models.NotificationData) {
	logger := i.getLogger(userID, string(data.Code))
	user, err := i.spaceUserStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователя")
		return
	}
	if user == nil {
		logger.Error("пользователь не найден")
		return
	}
	if !user.PushEnabled {
		return
	}

	if connectionhub.Instance != nil && connectionhub.Instance.IsConnected(userID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     nowString(),
			Code:     string(data.Code),
			Msg:      data.Msg,
		})
	} else {
		// пользователь не подключен - событие будет доставлено при следующем подключении
		rec := dbmodels.PushData{
			UserID: userID,
			Code:   data.Code,
			Msg:    data.Msg,
			Title:  data.Title,
		}
		if err = i.pushDataStore.Create(rec); err != nil {
			logger.WithError(err).Error("ошибка сохранения отложенного события")
		}
	}

	if user.Email != "" && smtp.Instance != nil {
		// письмо дублирует событие независимо от ws-доставки
		err = smtp.Instance.SendEMail(config.Conf.Smtp.EmailSender, user.Email, data.Msg, data.Title)
		if err != nil {
			logger.WithError(err).Error("ошибка отправки уведомления на почту")
		}
	}
}

func nowString() string {
	return time.Now().Format("02.01.2006 15:04:05")
}
