package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Project indexes for filtering and sorting
		{"projects", "idx_projects_client_id", "client_id"},
		{"projects", "idx_projects_status", "status"},
		{"projects", "idx_projects_category", "category"},
		{"projects", "idx_projects_created_at", "created_at"},

		// Proposal indexes for per-project and per-freelancer listings
		{"proposals", "idx_proposals_project_id", "project_id"},
		{"proposals", "idx_proposals_freelancer_id", "freelancer_id"},
		{"proposals", "idx_proposals_status", "status"},
		{"proposals", "idx_proposals_created_at", "created_at"},

		// Freelancer search indexes
		{"users", "idx_users_user_type", "user_type"},
		{"users", "idx_users_location", "location"},

		// Element table join indexes
		{"user_skills", "idx_user_skills_user_id", "user_id"},
		{"user_skills", "idx_user_skills_skill", "skill"},
		{"project_skills", "idx_project_skills_project_id", "project_id"},
		{"project_skills", "idx_project_skills_skill", "skill"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			fmt.Printf("Index %s already exists, skipping\n", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
