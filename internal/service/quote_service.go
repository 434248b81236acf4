package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/nurpe/printhub-api/internal/model"
	"github.com/nurpe/printhub-api/internal/pricing"
)

type PDFGenerator interface {
	Generate(doc model.QuoteDocument) ([]byte, error)
}

// QuoteService wraps the pricing engine for the HTTP boundary: it parses
// user-supplied tags into the closed enums before estimating, so the engine's
// closed-set contract is never violated from the network.
type QuoteService struct {
	pdf      PDFGenerator
	currency string
}

func NewQuoteService(pdf PDFGenerator, currency string) *QuoteService {
	return &QuoteService{pdf: pdf, currency: currency}
}

type QuoteInput struct {
	ServiceType string `json:"serviceType"`
	Quantity    int    `json:"quantity"`
	Quality     string `json:"quality"`
	PrintSide   string `json:"printSide"`
}

type QuoteEstimate struct {
	ServiceType       string  `json:"serviceType"`
	ServiceLabel      string  `json:"serviceLabel"`
	Quantity          int     `json:"quantity"`
	Quality           string  `json:"quality"`
	PrintSide         string  `json:"printSide"`
	Currency          string  `json:"currency"`
	EstimatedPrice    int     `json:"estimatedPrice"`
	BasePrice         float64 `json:"basePrice"`
	UnitCost          float64 `json:"unitCost"`
	QualityMultiplier float64 `json:"qualityMultiplier"`
	SideMultiplier    float64 `json:"sideMultiplier"`
}

// Estimate prices a quote request. Quality and print side fall back to the
// form defaults (standard, single) when absent; the service type has no
// sensible default and must parse.
func (s *QuoteService) Estimate(input QuoteInput) (*QuoteEstimate, error) {
	serviceType, err := pricing.ParseServiceType(input.ServiceType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	quality := pricing.QualityStandard
	if strings.TrimSpace(input.Quality) != "" {
		quality, err = pricing.ParseQuality(input.Quality)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	side := pricing.SideSingle
	if strings.TrimSpace(input.PrintSide) != "" {
		side, err = pricing.ParseSide(input.PrintSide)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	quantity := input.Quantity
	if quantity < 0 {
		quantity = 0
	}

	breakdown := pricing.EstimateBreakdown(serviceType, quantity, quality, side)
	return &QuoteEstimate{
		ServiceType:       string(serviceType),
		ServiceLabel:      serviceType.Label(),
		Quantity:          quantity,
		Quality:           string(quality),
		PrintSide:         string(side),
		Currency:          s.currency,
		EstimatedPrice:    breakdown.Total,
		BasePrice:         breakdown.BasePrice,
		UnitCost:          breakdown.UnitCost,
		QualityMultiplier: breakdown.QualityMultiplier,
		SideMultiplier:    breakdown.SideMultiplier,
	}, nil
}

type QuoteDocumentResult struct {
	FileName string
	Content  []byte
}

// GenerateDocument renders the estimate as a downloadable PDF.
func (s *QuoteService) GenerateDocument(input QuoteInput) (*QuoteDocumentResult, error) {
	estimate, err := s.Estimate(input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	content, err := s.pdf.Generate(model.QuoteDocument{
		ServiceLabel:      estimate.ServiceLabel,
		Quantity:          estimate.Quantity,
		Quality:           estimate.Quality,
		Side:              estimate.PrintSide,
		BasePrice:         estimate.BasePrice,
		UnitCost:          estimate.UnitCost,
		QualityMultiplier: estimate.QualityMultiplier,
		SideMultiplier:    estimate.SideMultiplier,
		Total:             estimate.EstimatedPrice,
		Currency:          estimate.Currency,
		GeneratedAt:       now,
	})
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("quote-%s-%s.pdf", estimate.ServiceType, now.Format("20060102"))
	return &QuoteDocumentResult{FileName: fileName, Content: content}, nil
}
