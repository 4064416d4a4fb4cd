package dbmodels

import (
	"fmt"
	"work-tools-backend/models"
)

type SpaceUser struct {
	BaseModel
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255)"`
	IsActive    bool
	PhoneNumber string `gorm:"type:varchar(15)"`
	SpaceID     string
	Role        models.UserRole `gorm:"type:varchar(50)"`
	PushEnabled bool
}

func (r SpaceUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
