package model

// AboutUs is the single content row behind the public "about us" page.
type AboutUs struct {
	BaseModel
	Title        string `gorm:"type:varchar(255)" json:"title" validate:"required"`
	Body         string `gorm:"type:text" json:"body" validate:"required"`
	Image        string `gorm:"type:varchar(500)" json:"image"`
	Address      string `gorm:"type:varchar(500)" json:"address"`
	Phone        string `gorm:"type:varchar(20)" json:"phone"`
	OpeningHours string `gorm:"type:varchar(255)" json:"opening_hours"`
}

func (AboutUs) TableName() string {
	return "about_us"
}
