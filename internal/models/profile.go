package models

import "time"

// Profile is the single candidate record the whole service revolves around.
// The application maintains at most one row; writes upsert it.
type Profile struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FullName string `gorm:"column:full_name;type:text" json:"full_name"`
	Email    string `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	Headline string `gorm:"column:headline;type:text" json:"headline"`

	Education string `gorm:"column:education;type:text" json:"education"`

	GithubURL    string `gorm:"column:github_url;type:text" json:"github_url"`
	LinkedinURL  string `gorm:"column:linkedin_url;type:text" json:"linkedin_url"`
	PortfolioURL string `gorm:"column:portfolio_url;type:text" json:"portfolio_url"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
