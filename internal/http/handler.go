package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/printhub-api/internal/service"
)

type Handler struct {
	submissions *service.SubmissionService
	quotes      *service.QuoteService
	log         zerolog.Logger
}

func NewHandler(submissions *service.SubmissionService, quotes *service.QuoteService, log zerolog.Logger) *Handler {
	return &Handler{submissions: submissions, quotes: quotes, log: log}
}

func (h *Handler) createContact(c *gin.Context) {
	var input service.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": "invalid request body"})
		return
	}

	sub, err := h.submissions.CreateContact(c.Request.Context(), input)
	if err != nil {
		h.handleSubmitError(c, err, "contact form")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Contact form submitted successfully",
		"id":      sub.ID,
	})
}

func (h *Handler) createFileUpload(c *gin.Context) {
	var input service.FileUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": "invalid request body"})
		return
	}

	upload, err := h.submissions.CreateFileUpload(c.Request.Context(), input)
	if err != nil {
		h.handleSubmitError(c, err, "file upload")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "File details submitted successfully",
		"id":      upload.ID,
	})
}

func (h *Handler) createTestimonial(c *gin.Context) {
	var input service.TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": "invalid request body"})
		return
	}

	testimonial, err := h.submissions.CreateTestimonial(c.Request.Context(), input)
	if err != nil {
		h.handleSubmitError(c, err, "testimonial")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Testimonial submitted successfully",
		"id":      testimonial.ID,
	})
}

func (h *Handler) listTestimonials(c *gin.Context) {
	testimonials, err := h.submissions.ListTestimonials(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list testimonials failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": testimonials})
}

func (h *Handler) estimateQuote(c *gin.Context) {
	var input service.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	estimate, err := h.quotes.Estimate(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("quote estimate failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, estimate)
}

func (h *Handler) quoteDocument(c *gin.Context) {
	var input service.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.quotes.GenerateDocument(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("quote document failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) adminListContacts(c *gin.Context) {
	contacts, err := h.submissions.ListContacts(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list contact submissions failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": contacts})
}

func (h *Handler) adminListFileUploads(c *gin.Context) {
	uploads, err := h.submissions.ListFileUploads(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list file uploads failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": uploads})
}

func (h *Handler) adminExportSubmissions(c *gin.Context) {
	result, err := h.submissions.ExportSubmissions(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("export submissions failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

// handleSubmitError maps submission pipeline failures onto the public error
// envelopes. Validation problems surface with full per-field detail; storage
// failures are logged and returned as a generic server error.
func (h *Handler) handleSubmitError(c *gin.Context, err error, kind string) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": vErr.Details(),
		})
		return
	}

	h.log.Error().Err(err).Str("kind", kind).Msg("submission failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"message": "Failed to process your request. Please try again.",
	})
}
