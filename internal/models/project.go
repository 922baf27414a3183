package models

import (
	"time"

	"github.com/lib/pq"
)

type Project struct {
	ID    string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title string `gorm:"column:title;type:text" json:"title"`

	// Markdown; rendered to HTML on demand
	Description string `gorm:"column:description;type:text" json:"description"`

	RepoURL string `gorm:"column:repo_url;type:text" json:"repo_url,omitempty"`
	DemoURL string `gorm:"column:demo_url;type:text" json:"demo_url,omitempty"`

	Tags pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"`

	Skills []Skill `gorm:"many2many:project_skills;constraint:OnDelete:CASCADE" json:"skills"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Project) TableName() string { return "projects" }
