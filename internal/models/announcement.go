package models

import (
	"gorm.io/datatypes"
)

type Announcement struct {
	ID             uint   `gorm:"primaryKey"`
	Title          string `gorm:"not null"`
	Content        string `gorm:"type:text"`
	Priority       string
	Status         string `gorm:"type:varchar(20);not null;default:'draft'"`
	TargetAudience string
	CreatedAt      datatypes.Date
	PublishedAt    datatypes.Date
}
