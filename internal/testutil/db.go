package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// schema mirrors the postgres layout with portable column types so the
// repositories can be exercised against in-memory sqlite.
const schema = `
CREATE TABLE profiles (
	id            TEXT PRIMARY KEY,
	full_name     TEXT,
	email         TEXT,
	headline      TEXT,
	education     TEXT,
	github_url    TEXT,
	linkedin_url  TEXT,
	portfolio_url TEXT,
	created_at    DATETIME,
	updated_at    DATETIME
);
CREATE UNIQUE INDEX idx_profiles_email ON profiles(email);

CREATE TABLE skills (
	id          TEXT PRIMARY KEY,
	name        TEXT,
	proficiency INTEGER,
	category    TEXT,
	created_at  DATETIME,
	updated_at  DATETIME
);
CREATE UNIQUE INDEX idx_skills_name ON skills(name);

CREATE TABLE projects (
	id          TEXT PRIMARY KEY,
	title       TEXT,
	description TEXT,
	repo_url    TEXT,
	demo_url    TEXT,
	tags        TEXT,
	created_at  DATETIME,
	updated_at  DATETIME
);

CREATE TABLE work_experiences (
	id          TEXT PRIMARY KEY,
	company     TEXT,
	position    TEXT,
	description TEXT,
	start_date  DATETIME,
	end_date    DATETIME,
	current     BOOLEAN,
	highlights  TEXT,
	created_at  DATETIME,
	updated_at  DATETIME
);

CREATE TABLE project_skills (
	project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	skill_id   TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
	PRIMARY KEY (project_id, skill_id)
);
`

// NewTestDB opens an isolated in-memory database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// single connection keeps the in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := db.Exec(schema).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}

	t.Cleanup(func() { MustClose(t, db) })
	return db
}

func MustClose(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close test db: %v", err)
	}
}
