package workitemcommentstore

import (
	dbmodels "work-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.WorkItemComment) (id string, err error)
	List(spaceID, workItemID string) (list []dbmodels.WorkItemComment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkItemComment) (id string, err error) {
	err = i.db.
		Omit("AuthorUser").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(spaceID, workItemID string) (list []dbmodels.WorkItemComment, err error) {
	list = []dbmodels.WorkItemComment{}
	tx := i.db.
		Where("space_id = ?", spaceID).
		Where("work_item_id = ?", workItemID).
		Order("created_at ASC").
		Preload("AuthorUser")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
