package model

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a customer review displayed on the marketing site. Rating is
// kept as a one-character string enum ("1".."5").
type Testimonial struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerRole    string    `json:"customerRole"`
	CompanyName     string    `json:"companyName,omitempty"`
	Rating          string    `json:"rating"`
	TestimonialText string    `json:"testimonialText"`
	ServiceUsed     string    `json:"serviceUsed"`
	CreatedAt       time.Time `json:"createdAt"`
}
