package dbmodels

import "work-tools-backend/models"

// PushData - события, не доставленные пользователю по ws,
// хранятся до следующего подключения
type PushData struct {
	BaseModel
	UserID string                      `gorm:"type:varchar(36);index:idx_user"`
	Code   models.SpacePushSettingCode `gorm:"type:varchar(255);index:idx_setting_code"`
	Msg    string
	Title  string
}
