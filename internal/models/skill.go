package models

import "time"

type Skill struct {
	ID   string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name string `gorm:"column:name;type:text;uniqueIndex" json:"name"`

	// 1 (beginner) .. 5 (expert); bounds enforced by the service layer
	Proficiency int    `gorm:"column:proficiency;type:integer" json:"proficiency"`
	Category    string `gorm:"column:category;type:text" json:"category"`

	Projects []Project `gorm:"many2many:project_skills;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Skill) TableName() string { return "skills" }
