package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is an accepted contact-form inquiry. Records are append
// only: the service never updates or deletes them.
type ContactSubmission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Service     string    `json:"service"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// FileUpload records metadata about a customer design file. The file bytes
// themselves are never received or stored; the caller extracts name, size and
// MIME type before submitting.
type FileUpload struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	ServiceType   string    `json:"serviceType"`
	FileName      string    `json:"fileName"`
	FileSize      string    `json:"fileSize"`
	FileType      string    `json:"fileType"`
	Notes         string    `json:"notes,omitempty"`
	UploadedAt    time.Time `json:"uploadedAt"`
}
