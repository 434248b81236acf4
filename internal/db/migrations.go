package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS contact_submissions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		service TEXT NOT NULL,
		message TEXT NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS file_uploads (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		service_type TEXT NOT NULL,
		file_name TEXT NOT NULL,
		file_size TEXT NOT NULL,
		file_type TEXT NOT NULL,
		notes TEXT,
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		customer_name TEXT NOT NULL,
		customer_role TEXT NOT NULL,
		company_name TEXT,
		rating VARCHAR(1) NOT NULL,
		testimonial_text TEXT NOT NULL,
		service_used TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contact_submissions_submitted_at ON contact_submissions (submitted_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_file_uploads_uploaded_at ON file_uploads (uploaded_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_testimonials_created_at ON testimonials (created_at DESC);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
