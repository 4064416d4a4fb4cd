package dbmodels

import (
	"time"
	"work-tools-backend/models"
)

type WorkItem struct {
	BaseSpaceModel
	Title        string `gorm:"type:varchar(255)"`
	Description  string
	Priority     models.WorkItemPriority `gorm:"type:varchar(20)"`
	Category     models.WorkItemCategory `gorm:"type:varchar(20)"`
	Status       models.WorkItemStatus   `gorm:"type:varchar(20);index"`
	StartDate    *time.Time
	DueDate      *time.Time
	AssignerID   string     `gorm:"type:varchar(36);index"` // постановщик, задается при создании и не меняется
	AssignerUser *SpaceUser `gorm:"foreignKey:AssignerID"`
	AssigneeID   *string    `gorm:"type:varchar(36);index"` // исполнитель, может отсутствовать
	AssigneeUser *SpaceUser `gorm:"foreignKey:AssigneeID"`
	Comments     []WorkItemComment    `gorm:"foreignKey:WorkItemID;constraint:OnDelete:CASCADE"`
	Attachments  []WorkItemAttachment `gorm:"foreignKey:WorkItemID;constraint:OnDelete:CASCADE"`
}

type WorkItemComment struct {
	BaseSpaceModel
	WorkItemID string     `gorm:"type:varchar(36);index"`
	AuthorID   string     `gorm:"type:varchar(36)"`
	AuthorUser *SpaceUser `gorm:"foreignKey:AuthorID"`
	Content    string
}

type WorkItemAttachment struct {
	BaseSpaceModel
	WorkItemID   string `gorm:"type:varchar(36);index"`
	OriginalName string `gorm:"type:varchar(255)"`
	StoredName   string `gorm:"type:varchar(255)"`
	Size         int64
	ContentType  string `gorm:"type:varchar(100)"`
}
