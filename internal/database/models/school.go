package models

// School is a tenant: a school or service office whose activities and
// resources share one calendar time zone.
type School struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	TimeZone string `json:"time_zone" gorm:"size:64;not null" validate:"required"`
}

// TableName returns the table name for School
func (School) TableName() string {
	return "schools"
}
