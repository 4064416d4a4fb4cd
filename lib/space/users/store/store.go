package spaceusersstore

import (
	dbmodels "work-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByID(userID string) (rec *dbmodels.SpaceUser, err error)
	GetList(spaceID string) (userList []dbmodels.SpaceUser, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(userID string) (rec *dbmodels.SpaceUser, err error) {
	err = i.db.Model(dbmodels.SpaceUser{}).
		Where("id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetList(spaceID string) (userList []dbmodels.SpaceUser, err error) {
	err = i.db.Model(dbmodels.SpaceUser{}).
		Where("space_id = ?", spaceID).
		Order("last_name ASC").
		Find(&userList).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userList, nil
}
