package mysql

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		role VARCHAR(32) NOT NULL,
		department VARCHAR(255) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS proposals (
		id CHAR(36) PRIMARY KEY,
		title VARCHAR(512) NOT NULL,
		researcher_id BIGINT NOT NULL,
		status VARCHAR(32) NOT NULL,
		budget JSON NOT NULL,
		total_budget DECIMAL(20,2) NOT NULL DEFAULT 0,
		equipment_percentage DECIMAL(5,2) NOT NULL DEFAULT 0,
		submitted_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		proposal_id CHAR(36) NULL,
		title VARCHAR(512) NOT NULL,
		status VARCHAR(32) NOT NULL,
		budget DECIMAL(20,2) NOT NULL DEFAULT 0,
		supervisor_id BIGINT NULL,
		start_date DATE NULL,
		end_date DATE NULL
	)`,
	`CREATE TABLE IF NOT EXISTS evaluations (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		project_id BIGINT NOT NULL,
		evaluator_id BIGINT NULL,
		score INT NOT NULL,
		recommendation VARCHAR(64) NOT NULL DEFAULT '',
		evaluated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS report_templates (
		id CHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		data_source VARCHAR(32) NOT NULL,
		spec JSON NOT NULL,
		created_at DATETIME NOT NULL
	)`,
}

// Migrate creates the portal tables when they are missing.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.mysql.Migrate"

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
