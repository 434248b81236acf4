package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/printhub-api/internal/model"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) InsertContact(ctx context.Context, sub *model.ContactSubmission) error {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO contact_submissions (id, name, phone, email, service, message, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sub.ID, sub.Name, sub.Phone, sub.Email, sub.Service, sub.Message, sub.SubmittedAt).Error
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) InsertFileUpload(ctx context.Context, upload *model.FileUpload) error {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO file_uploads (
			id, customer_name, customer_email, customer_phone, service_type,
			file_name, file_size, file_type, notes, uploaded_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, upload.ID, upload.CustomerName, upload.CustomerEmail, upload.CustomerPhone, upload.ServiceType,
		upload.FileName, upload.FileSize, upload.FileType, upload.Notes, upload.UploadedAt).Error
	if err != nil {
		return fmt.Errorf("insert file upload: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) ListContacts(ctx context.Context) ([]model.ContactSubmission, error) {
	var rows []struct {
		ID          uuid.UUID
		Name        string
		Phone       string
		Email       string
		Service     string
		Message     string
		SubmittedAt time.Time
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, email, service, message, submitted_at
		FROM contact_submissions
		ORDER BY submitted_at DESC, id
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}

	submissions := make([]model.ContactSubmission, 0, len(rows))
	for _, row := range rows {
		submissions = append(submissions, model.ContactSubmission{
			ID:          row.ID,
			Name:        row.Name,
			Phone:       row.Phone,
			Email:       row.Email,
			Service:     row.Service,
			Message:     row.Message,
			SubmittedAt: row.SubmittedAt,
		})
	}
	return submissions, nil
}

func (r *SubmissionRepository) ListFileUploads(ctx context.Context) ([]model.FileUpload, error) {
	var rows []struct {
		ID            uuid.UUID
		CustomerName  string
		CustomerEmail string
		CustomerPhone string
		ServiceType   string
		FileName      string
		FileSize      string
		FileType      string
		Notes         *string
		UploadedAt    time.Time
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id, customer_name, customer_email, customer_phone, service_type,
			file_name, file_size, file_type, notes, uploaded_at
		FROM file_uploads
		ORDER BY uploaded_at DESC, id
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list file uploads: %w", err)
	}

	uploads := make([]model.FileUpload, 0, len(rows))
	for _, row := range rows {
		notes := ""
		if row.Notes != nil {
			notes = *row.Notes
		}
		uploads = append(uploads, model.FileUpload{
			ID:            row.ID,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			CustomerPhone: row.CustomerPhone,
			ServiceType:   row.ServiceType,
			FileName:      row.FileName,
			FileSize:      row.FileSize,
			FileType:      row.FileType,
			Notes:         notes,
			UploadedAt:    row.UploadedAt,
		})
	}
	return uploads, nil
}
