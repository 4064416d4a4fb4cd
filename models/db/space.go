package dbmodels

type Space struct {
	BaseModel
	OrganizationName string `gorm:"type:varchar(255)"` // Юридическое название компании
	IsActive         bool
}
