package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/printhub-api/internal/model"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) InsertTestimonial(ctx context.Context, t *model.Testimonial) error {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO testimonials (
			id, customer_name, customer_role, company_name, rating,
			testimonial_text, service_used, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.CustomerName, t.CustomerRole, t.CompanyName, t.Rating,
		t.TestimonialText, t.ServiceUsed, t.CreatedAt).Error
	if err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	var rows []struct {
		ID              uuid.UUID
		CustomerName    string
		CustomerRole    string
		CompanyName     *string
		Rating          string
		TestimonialText string
		ServiceUsed     string
		CreatedAt       time.Time
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id, customer_name, customer_role, company_name, rating,
			testimonial_text, service_used, created_at
		FROM testimonials
		ORDER BY created_at DESC, id
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	testimonials := make([]model.Testimonial, 0, len(rows))
	for _, row := range rows {
		company := ""
		if row.CompanyName != nil {
			company = *row.CompanyName
		}
		testimonials = append(testimonials, model.Testimonial{
			ID:              row.ID,
			CustomerName:    row.CustomerName,
			CustomerRole:    row.CustomerRole,
			CompanyName:     company,
			Rating:          row.Rating,
			TestimonialText: row.TestimonialText,
			ServiceUsed:     row.ServiceUsed,
			CreatedAt:       row.CreatedAt,
		})
	}
	return testimonials, nil
}
