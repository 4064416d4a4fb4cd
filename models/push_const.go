package models

import "fmt"

type SpacePushSettingCode string

type PushTpl struct {
	Name  string
	Title string
	Msg   string
}

var PushCodeMap = map[SpacePushSettingCode]PushTpl{
	PushWorkItemAssigned:  {Name: "Назначение исполнителем поручения", Title: "Новое поручение", Msg: "Вам назначено поручение «%v». Срок исполнения: %v."},
	PushWorkItemNewStatus: {Name: "Изменение статуса поручения", Title: "Изменён статус поручения", Msg: "Статус поручения «%v» изменён на «%v»."},
	PushWorkItemComment:   {Name: "Комментарий к поручению", Title: "Новый комментарий", Msg: "Пользователь %v оставил комментарий к поручению «%v»."},
	PushWorkItemDeleted:   {Name: "Отмена поручения", Title: "Поручение отменено", Msg: "Поручение «%v» было удалено постановщиком."},
}

const (
	PushWorkItemAssigned  SpacePushSettingCode = "PushWorkItemAssigned"
	PushWorkItemNewStatus SpacePushSettingCode = "PushWorkItemNewStatus"
	PushWorkItemComment   SpacePushSettingCode = "PushWorkItemComment"
	PushWorkItemDeleted   SpacePushSettingCode = "PushWorkItemDeleted"
)

type NotificationData struct {
	Code  SpacePushSettingCode
	Msg   string
	Title string
}

func GetPushWorkItemAssigned(title, dueDate string) NotificationData {
	code := PushWorkItemAssigned
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, title, dueDate),
	}
}

func GetPushWorkItemNewStatus(title string, status WorkItemStatus) NotificationData {
	code := PushWorkItemNewStatus
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, title, status.ToHuman()),
	}
}

func GetPushWorkItemComment(userName, title string) NotificationData {
	code := PushWorkItemComment
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, userName, title),
	}
}

func GetPushWorkItemDeleted(title string) NotificationData {
	code := PushWorkItemDeleted
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, title),
	}
}
