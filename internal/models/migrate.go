package models

// AllModels is the migration list, in FK dependency order.
func AllModels() []any {
	return []any{
		&Profile{},
		&Skill{},
		&Project{},
		&WorkExperience{},
	}
}
