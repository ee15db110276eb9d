package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Template is a user-authored document template. Templates live only in this
// service's database and are never pushed to the property-management API.
type Template struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID   string         `json:"-" gorm:"size:64;not null;index"`
	Title     string         `json:"title" gorm:"size:255;not null"`
	Subtitle  string         `json:"subtitle" gorm:"size:255"`
	Content   string         `json:"content" gorm:"type:text"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
