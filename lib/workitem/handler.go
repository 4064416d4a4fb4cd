package workitemhandler

import (
	"fmt"
	"strings"
	"work-tools-backend/db"
	pushhandler "work-tools-backend/lib/space/push/handler"
	spaceusersstore "work-tools-backend/lib/space/users/store"
	initchecker "work-tools-backend/lib/utils/init-checker"
	workitemattachmentstore "work-tools-backend/lib/workitem/attachment-store"
	workitemcommentstore "work-tools-backend/lib/workitem/comment-store"
	workitemstore "work-tools-backend/lib/workitem/store"
	"work-tools-backend/models"
	workitemapimodels "work-tools-backend/models/api/workitem"
	dbmodels "work-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(spaceID, actorID string, data workitemapimodels.WorkItemData) (id string, hMsg string, err error)
	GetByID(spaceID, id string) (item workitemapimodels.WorkItemView, err error)
	Update(spaceID, id, actorID string, data workitemapimodels.WorkItemData) (hMsg string, err error)
	Delete(spaceID, id, actorID string) error
	List(spaceID string, filter workitemapimodels.WorkItemFilter) (list []workitemapimodels.WorkItemView, err error)
	StatusChange(spaceID, id, actorID string, status models.WorkItemStatus) (item workitemapimodels.WorkItemView, err error)
	AddComment(spaceID, id, actorID, content string) (list []workitemapimodels.CommentView, hMsg string, err error)
	ListComments(spaceID, id string) (list []workitemapimodels.CommentView, err error)
	ListAttachments(spaceID, id string) (list []workitemapimodels.AttachmentView, err error)
	GetAttachment(spaceID, id, attachmentID string) (rec *dbmodels.WorkItemAttachment, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"push", pushhandler.Instance,
	)
	Instance = impl{
		store:           workitemstore.NewInstance(db.DB),
		commentStore:    workitemcommentstore.NewInstance(db.DB),
		attachmentStore: workitemattachmentstore.NewInstance(db.DB),
		spaceUsersStore: spaceusersstore.NewInstance(db.DB),
		push:            pushhandler.Instance,
	}
}

type impl struct {
	store           workitemstore.Provider
	commentStore    workitemcommentstore.Provider
	attachmentStore workitemattachmentstore.Provider
	spaceUsersStore spaceusersstore.Provider
	push            pushhandler.Provider
}

func (i impl) getLogger(spaceID, workItemID, userID string) *log.Entry {
	logger := log.WithField("space_id", spaceID)
	if workItemID != "" {
		logger = logger.WithField("work_item_id", workItemID)
	}
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

func (i impl) checkAssignee(spaceID, assigneeID string) (hMsg string, err error) {
	if assigneeID == "" {
		return "", nil
	}
	user, err := i.spaceUsersStore.GetByID(assigneeID)
	if err != nil {
		return "", err
	}
	if user == nil || user.SpaceID != spaceID {
		return fmt.Sprintf("Сотрудник %v не найден в справочнике сотрудников", assigneeID), nil
	}
	return "", nil
}

func (i impl) Create(spaceID, actorID string, data workitemapimodels.WorkItemData) (id string, hMsg string, err error) {
	logger := i.getLogger(spaceID, "", actorID)
	hMsg, err = i.checkAssignee(spaceID, data.AssigneeID)
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}
	recID := ""
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		rec := dbmodels.WorkItem{
			BaseSpaceModel: dbmodels.BaseSpaceModel{
				SpaceID: spaceID,
			},
			Title:       data.Title,
			Description: data.Description,
			Priority:    data.Priority,
			Category:    data.Category,
			Status:      models.WorkItemStatusPending,
			StartDate:   data.GetStartDate(),
			DueDate:     data.GetDueDate(),
			AssignerID:  actorID,
		}
		if data.AssigneeID != "" {
			rec.AssigneeID = &data.AssigneeID
		}
		store := workitemstore.NewInstance(tx)
		recID, err = store.Create(rec)
		if err != nil {
			return err
		}
		attachmentStore := workitemattachmentstore.NewInstance(tx)
		for _, attachment := range data.Attachments {
			attachmentRec := dbmodels.WorkItemAttachment{
				BaseSpaceModel: dbmodels.BaseSpaceModel{
					SpaceID: spaceID,
				},
				WorkItemID:   recID,
				OriginalName: attachment.OriginalName,
				StoredName:   attachment.StoredName,
				Size:         attachment.Size,
				ContentType:  attachment.ContentType,
			}
			_, err = attachmentStore.Create(attachmentRec)
			if err != nil {
				return errors.Wrapf(err, "ошибка сохранения вложения: %v", attachment.OriginalName)
			}
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	logger.
		WithField("rec_id", recID).
		Info("Создано поручение")
	if data.AssigneeID != "" {
		go i.push.SendNotification(data.AssigneeID, models.GetPushWorkItemAssigned(data.Title, data.DueDate))
	}
	return recID, "", nil
}

func (i impl) GetByID(spaceID, id string) (item workitemapimodels.WorkItemView, err error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return workitemapimodels.WorkItemView{}, err
	}
	if rec == nil {
		return workitemapimodels.WorkItemView{}, ErrNotFound
	}
	return workitemapimodels.WorkItemConvert(*rec), nil
}

func (i impl) Update(spaceID, id, actorID string, data workitemapimodels.WorkItemData) (hMsg string, err error) {
	logger := i.getLogger(spaceID, id, actorID)
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", ErrNotFound
	}
	if !isParticipant(*rec, actorID) {
		return "", ErrForbidden
	}
	if rec.Status.IsTerminal() {
		return fmt.Sprintf("Поручение в статусе «%v» нельзя изменить", rec.Status.ToHuman()), nil
	}
	hMsg, err = i.checkAssignee(spaceID, data.AssigneeID)
	if err != nil || hMsg != "" {
		return hMsg, err
	}

	updMap := map[string]interface{}{
		"Title":       data.Title,
		"Description": data.Description,
		"Priority":    data.Priority,
		"Category":    data.Category,
		"StartDate":   data.GetStartDate(),
		"DueDate":     data.GetDueDate(),
	}
	if data.AssigneeID != "" {
		updMap["AssigneeID"] = data.AssigneeID
	} else {
		updMap["AssigneeID"] = nil
	}
	err = i.store.Update(spaceID, id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления поручения")
	}
	logger.Info("обновлено поручение")
	return "", nil
}

func (i impl) Delete(spaceID, id, actorID string) error {
	logger := i.getLogger(spaceID, id, actorID)
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	// удалять поручение может только постановщик, статус не важен
	if rec.AssignerID != actorID {
		return ErrForbidden
	}
	err = i.store.Delete(spaceID, id)
	if err != nil {
		return err
	}
	logger.Info("удалено поручение")
	if rec.AssigneeID != nil && *rec.AssigneeID != actorID {
		go i.push.SendNotification(*rec.AssigneeID, models.GetPushWorkItemDeleted(rec.Title))
	}
	return nil
}

func (i impl) List(spaceID string, filter workitemapimodels.WorkItemFilter) (list []workitemapimodels.WorkItemView, err error) {
	recList, err := i.store.List(spaceID)
	if err != nil {
		return nil, err
	}
	recList = Filter(recList, filter)
	dateFrom, err := filter.GetDateFrom()
	if err != nil {
		return nil, err
	}
	dateTo, err := filter.GetDateTo()
	if err != nil {
		return nil, err
	}
	recList = FilterByDateRange(recList, dateFrom, dateTo)
	recList = Sort(recList, filter.Sort)

	result := make([]workitemapimodels.WorkItemView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, workitemapimodels.WorkItemConvert(rec))
	}
	return result, nil
}

func (i impl) StatusChange(spaceID, id, actorID string, status models.WorkItemStatus) (item workitemapimodels.WorkItemView, err error) {
	logger := i.getLogger(spaceID, id, actorID).
		WithField("status", status)
	if err = status.Validate(); err != nil {
		return workitemapimodels.WorkItemView{}, err
	}
	actor, err := i.spaceUsersStore.GetByID(actorID)
	if err != nil {
		return workitemapimodels.WorkItemView{}, err
	}
	if actor == nil || actor.SpaceID != spaceID {
		return workitemapimodels.WorkItemView{}, ErrNotFound
	}
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return workitemapimodels.WorkItemView{}, err
	}
	if rec == nil {
		return workitemapimodels.WorkItemView{}, ErrNotFound
	}
	if err = checkTransition(*rec, actorID, status); err != nil {
		return workitemapimodels.WorkItemView{}, err
	}

	// перед записью статус проверяется повторно: из двух одновременных
	// переходов выигрывает ровно один, второй получает ErrConflict
	updated, err := i.store.UpdateStatus(spaceID, id, rec.Status, status)
	if err != nil {
		return workitemapimodels.WorkItemView{}, errors.Wrap(err, "ошибка обновления статуса поручения")
	}
	if !updated {
		return workitemapimodels.WorkItemView{}, ErrConflict
	}

	updRec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return workitemapimodels.WorkItemView{}, err
	}
	if updRec == nil {
		return workitemapimodels.WorkItemView{}, ErrNotFound
	}
	logger.Info("обновлен статус поручения")
	go func(rec dbmodels.WorkItem) {
		notification := models.GetPushWorkItemNewStatus(rec.Title, rec.Status)
		i.sendNotification(rec, actorID, notification)
	}(*updRec)
	return workitemapimodels.WorkItemConvert(*updRec), nil
}

func (i impl) AddComment(spaceID, id, actorID, content string) (list []workitemapimodels.CommentView, hMsg string, err error) {
	logger := i.getLogger(spaceID, id, actorID)
	if strings.TrimSpace(content) == "" {
		return nil, "Комментарий не может быть пустым", nil
	}
	author, err := i.spaceUsersStore.GetByID(actorID)
	if err != nil {
		return nil, "", err
	}
	if author == nil || author.SpaceID != spaceID {
		return nil, "", ErrNotFound
	}
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", ErrNotFound
	}

	commentRec := dbmodels.WorkItemComment{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		WorkItemID: id,
		AuthorID:   actorID,
		Content:    content,
	}
	_, err = i.commentStore.Create(commentRec)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка добавления комментария")
	}
	logger.Info("добавлен комментарий к поручению")
	go func(rec dbmodels.WorkItem, authorName string) {
		notification := models.GetPushWorkItemComment(authorName, rec.Title)
		i.sendNotification(rec, actorID, notification)
	}(*rec, author.GetFullName())
	list, err = i.ListComments(spaceID, id)
	return list, "", err
}

func (i impl) ListComments(spaceID, id string) (list []workitemapimodels.CommentView, err error) {
	recList, err := i.commentStore.List(spaceID, id)
	if err != nil {
		return nil, err
	}
	result := make([]workitemapimodels.CommentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, workitemapimodels.CommentConvert(rec))
	}
	return result, nil
}

func (i impl) ListAttachments(spaceID, id string) (list []workitemapimodels.AttachmentView, err error) {
	recList, err := i.attachmentStore.List(spaceID, id)
	if err != nil {
		return nil, err
	}
	result := make([]workitemapimodels.AttachmentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, workitemapimodels.AttachmentConvert(rec))
	}
	return result, nil
}

func (i impl) GetAttachment(spaceID, id, attachmentID string) (*dbmodels.WorkItemAttachment, error) {
	rec, err := i.attachmentStore.GetByID(spaceID, attachmentID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.WorkItemID != id {
		return nil, ErrNotFound
	}
	return rec, nil
}

func isParticipant(rec dbmodels.WorkItem, userID string) bool {
	if rec.AssignerID == userID {
		return true
	}
	return rec.AssigneeID != nil && *rec.AssigneeID == userID
}

// отправка постановщику и исполнителю, кроме инициатора события
func (i impl) sendNotification(rec dbmodels.WorkItem, excludeUserID string, data models.NotificationData) {
	if rec.AssignerID != excludeUserID {
		i.push.SendNotification(rec.AssignerID, data)
	}
	if rec.AssigneeID != nil && *rec.AssigneeID != excludeUserID {
		i.push.SendNotification(*rec.AssigneeID, data)
	}
}
