package models

import (
	"time"

	"gorm.io/datatypes"
)

type WorkExperience struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Company  string `gorm:"column:company;type:text" json:"company"`
	Position string `gorm:"column:position;type:text" json:"position"`

	Description string `gorm:"column:description;type:text" json:"description"`

	StartDate time.Time  `gorm:"column:start_date;type:timestamptz" json:"start_date"`
	EndDate   *time.Time `gorm:"column:end_date;type:timestamptz" json:"end_date,omitempty"`
	Current   bool       `gorm:"column:current" json:"current"`

	// JSONB list of bullet points shown under the entry
	Highlights datatypes.JSON `gorm:"column:highlights;type:jsonb" json:"highlights,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (WorkExperience) TableName() string { return "work_experiences" }
