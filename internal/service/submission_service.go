package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/printhub-api/internal/model"
)

// SubmissionStore persists submission records. Inserts are single-row and
// independent; the store owns isolation between concurrent submitters.
type SubmissionStore interface {
	InsertContact(ctx context.Context, sub *model.ContactSubmission) error
	InsertFileUpload(ctx context.Context, upload *model.FileUpload) error
	ListContacts(ctx context.Context) ([]model.ContactSubmission, error)
	ListFileUploads(ctx context.Context) ([]model.FileUpload, error)
}

type TestimonialStore interface {
	InsertTestimonial(ctx context.Context, t *model.Testimonial) error
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
}

type ExcelGenerator interface {
	Generate(export model.SubmissionExport) ([]byte, error)
}

// SubmissionService runs the validate, persist, acknowledge pipeline. It holds
// no state between calls; a record exists only after the store confirms the
// insert.
type SubmissionService struct {
	store        SubmissionStore
	testimonials TestimonialStore
	excel        ExcelGenerator
}

func NewSubmissionService(store SubmissionStore, testimonials TestimonialStore, excel ExcelGenerator) *SubmissionService {
	return &SubmissionService{
		store:        store,
		testimonials: testimonials,
		excel:        excel,
	}
}

type ContactInput struct {
	Name    string `json:"name" validate:"min=2"`
	Phone   string `json:"phone" validate:"min=10"`
	Email   string `json:"email" validate:"required,email"`
	Service string `json:"service" validate:"required"`
	Message string `json:"message" validate:"min=10"`
}

var contactMessages = map[string]string{
	"name":    "Name must be at least 2 characters",
	"phone":   "Please enter a valid phone number",
	"email":   "Please enter a valid email",
	"service": "Please select a service",
	"message": "Message must be at least 10 characters",
}

func (s *SubmissionService) CreateContact(ctx context.Context, input ContactInput) (*model.ContactSubmission, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Service = strings.TrimSpace(input.Service)
	input.Message = strings.TrimSpace(input.Message)

	if vErr := validateInput(input, contactMessages); vErr != nil {
		return nil, vErr
	}

	sub := &model.ContactSubmission{
		ID:          uuid.New(),
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Service:     input.Service,
		Message:     input.Message,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.store.InsertContact(ctx, sub); err != nil {
		return nil, fmt.Errorf("store contact submission: %w", err)
	}
	return sub, nil
}

type FileUploadInput struct {
	CustomerName  string `json:"customerName" validate:"min=2"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone" validate:"min=10"`
	ServiceType   string `json:"serviceType" validate:"required"`
	FileName      string `json:"fileName" validate:"required"`
	FileSize      string `json:"fileSize" validate:"required"`
	FileType      string `json:"fileType" validate:"required"`
	Notes         string `json:"notes"`
}

var fileUploadMessages = map[string]string{
	"customerName":  "Customer name must be at least 2 characters",
	"customerEmail": "Please enter a valid email",
	"customerPhone": "Please enter a valid phone number",
	"serviceType":   "Please select a service type",
	"fileName":      "File name is required",
	"fileSize":      "File size is required",
	"fileType":      "File type is required",
}

// CreateFileUpload records file metadata only. The binary payload never
// reaches this service.
func (s *SubmissionService) CreateFileUpload(ctx context.Context, input FileUploadInput) (*model.FileUpload, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerEmail = strings.TrimSpace(input.CustomerEmail)
	input.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	input.ServiceType = strings.TrimSpace(input.ServiceType)
	input.FileName = strings.TrimSpace(input.FileName)
	input.FileSize = strings.TrimSpace(input.FileSize)
	input.FileType = strings.TrimSpace(input.FileType)
	input.Notes = strings.TrimSpace(input.Notes)

	if vErr := validateInput(input, fileUploadMessages); vErr != nil {
		return nil, vErr
	}

	upload := &model.FileUpload{
		ID:            uuid.New(),
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		ServiceType:   input.ServiceType,
		FileName:      input.FileName,
		FileSize:      input.FileSize,
		FileType:      input.FileType,
		Notes:         input.Notes,
		UploadedAt:    time.Now().UTC(),
	}
	if err := s.store.InsertFileUpload(ctx, upload); err != nil {
		return nil, fmt.Errorf("store file upload: %w", err)
	}
	return upload, nil
}

type TestimonialInput struct {
	CustomerName    string `json:"customerName" validate:"min=2"`
	CustomerRole    string `json:"customerRole" validate:"min=2"`
	CompanyName     string `json:"companyName"`
	Rating          string `json:"rating" validate:"oneof=1 2 3 4 5"`
	TestimonialText string `json:"testimonialText" validate:"min=10"`
	ServiceUsed     string `json:"serviceUsed" validate:"min=2"`
}

var testimonialMessages = map[string]string{
	"customerName":    "Customer name must be at least 2 characters",
	"customerRole":    "Role must be at least 2 characters",
	"rating":          "Rating must be between 1 and 5",
	"testimonialText": "Testimonial must be at least 10 characters",
	"serviceUsed":     "Service must be specified",
}

func (s *SubmissionService) CreateTestimonial(ctx context.Context, input TestimonialInput) (*model.Testimonial, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerRole = strings.TrimSpace(input.CustomerRole)
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.Rating = strings.TrimSpace(input.Rating)
	input.TestimonialText = strings.TrimSpace(input.TestimonialText)
	input.ServiceUsed = strings.TrimSpace(input.ServiceUsed)

	if vErr := validateInput(input, testimonialMessages); vErr != nil {
		return nil, vErr
	}

	testimonial := &model.Testimonial{
		ID:              uuid.New(),
		CustomerName:    input.CustomerName,
		CustomerRole:    input.CustomerRole,
		CompanyName:     input.CompanyName,
		Rating:          input.Rating,
		TestimonialText: input.TestimonialText,
		ServiceUsed:     input.ServiceUsed,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.testimonials.InsertTestimonial(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("store testimonial: %w", err)
	}
	return testimonial, nil
}

func (s *SubmissionService) ListContacts(ctx context.Context) ([]model.ContactSubmission, error) {
	return s.store.ListContacts(ctx)
}

func (s *SubmissionService) ListFileUploads(ctx context.Context) ([]model.FileUpload, error) {
	return s.store.ListFileUploads(ctx)
}

func (s *SubmissionService) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return s.testimonials.ListTestimonials(ctx)
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportSubmissions builds the admin spreadsheet with both collections.
func (s *SubmissionService) ExportSubmissions(ctx context.Context) (*ExportResult, error) {
	contacts, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, err
	}
	uploads, err := s.store.ListFileUploads(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	content, err := s.excel.Generate(model.SubmissionExport{
		Contacts:    contacts,
		FileUploads: uploads,
		GeneratedAt: now,
	})
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: fmt.Sprintf("submissions-%s.xlsx", now.Format("20060102-150405")),
		Content:  content,
	}, nil
}
