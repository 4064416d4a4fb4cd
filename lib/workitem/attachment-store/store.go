package workitemattachmentstore

import (
	dbmodels "work-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.WorkItemAttachment) (id string, err error)
	GetByID(spaceID, id string) (rec *dbmodels.WorkItemAttachment, err error)
	List(spaceID, workItemID string) (list []dbmodels.WorkItemAttachment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkItemAttachment) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.WorkItemAttachment, error) {
	rec := dbmodels.WorkItemAttachment{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(spaceID, workItemID string) (list []dbmodels.WorkItemAttachment, err error) {
	list = []dbmodels.WorkItemAttachment{}
	tx := i.db.
		Where("space_id = ?", spaceID).
		Where("work_item_id = ?", workItemID).
		Order("created_at ASC")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
