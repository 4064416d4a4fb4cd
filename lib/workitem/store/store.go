package workitemstore

import (
	"work-tools-backend/models"
	dbmodels "work-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.WorkItem) (id string, err error)
	GetByID(spaceID, id string) (rec *dbmodels.WorkItem, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	UpdateStatus(spaceID, id string, from, to models.WorkItemStatus) (updated bool, err error)
	Delete(spaceID, id string) error
	List(spaceID string) (list []dbmodels.WorkItem, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkItem) (id string, err error) {
	err = i.db.
		Omit("AssignerUser").
		Omit("AssigneeUser").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.WorkItem, error) {
	rec := dbmodels.WorkItem{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("AssignerUser").
		Preload("AssigneeUser").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.AuthorUser").
		Preload("Attachments").
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

func (i impl) Update(spaceID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.WorkItem{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// UpdateStatus - оптимистичная смена статуса: запись обновляется только если
// её текущий статус совпадает с ожидаемым. updated=false - статус уже изменён
// параллельным запросом.
func (i impl) UpdateStatus(spaceID, id string, from, to models.WorkItemStatus) (updated bool, err error) {
	tx := i.db.
		Model(&dbmodels.WorkItem{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Where("status = ?", from).
		Updates(map[string]interface{}{
			"status": to,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) Delete(spaceID, id string) error {
	rec := dbmodels.WorkItem{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			SpaceID:   spaceID,
		},
	}
	err := i.db.
		Select("Comments", "Attachments").
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(spaceID string) (list []dbmodels.WorkItem, err error) {
	list = []dbmodels.WorkItem{}
	tx := i.db.
		Where("space_id = ?", spaceID).
		Order("created_at ASC").
		Preload("AssignerUser").
		Preload("AssigneeUser")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
