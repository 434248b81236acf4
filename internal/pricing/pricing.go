package pricing

import (
	"fmt"
	"math"
	"strings"
)

// ServiceType selects a pricing configuration. The set is closed: every value
// constructed through ParseServiceType is guaranteed to key into the table.
type ServiceType string

const (
	ServiceBusinessCards ServiceType = "business-cards"
	ServiceBrochures     ServiceType = "brochures"
	ServiceFlexBanner    ServiceType = "flex-banner"
	ServicePosters       ServiceType = "posters"
	ServiceSignage       ServiceType = "signage"
	ServiceCustom        ServiceType = "custom"
)

// Quality is the material/finish tier of a print job.
type Quality string

const (
	QualityStandard Quality = "standard"
	QualityPremium  Quality = "premium"
	QualityLuxury   Quality = "luxury"
)

// Side is the print-side option.
type Side string

const (
	SideSingle Side = "single"
	SideDouble Side = "double"
)

// Config holds the pricing parameters for one service type. The table below is
// fixed for the process lifetime.
type Config struct {
	BasePrice            float64
	PerUnitPrice         float64
	QualityMultiplier    map[Quality]float64
	DoubleSideMultiplier float64
}

var table = map[ServiceType]Config{
	ServiceBusinessCards: {
		BasePrice:            200,
		PerUnitPrice:         2,
		QualityMultiplier:    map[Quality]float64{QualityStandard: 1, QualityPremium: 1.5, QualityLuxury: 2.2},
		DoubleSideMultiplier: 1.4,
	},
	ServiceBrochures: {
		BasePrice:            500,
		PerUnitPrice:         15,
		QualityMultiplier:    map[Quality]float64{QualityStandard: 1, QualityPremium: 1.6, QualityLuxury: 2.5},
		DoubleSideMultiplier: 1.5,
	},
	ServiceFlexBanner: {
		BasePrice:            800,
		PerUnitPrice:         120,
		QualityMultiplier:    map[Quality]float64{QualityStandard: 1, QualityPremium: 1.4, QualityLuxury: 1.8},
		DoubleSideMultiplier: 1.3,
	},
	ServicePosters: {
		BasePrice:            300,
		PerUnitPrice:         25,
		QualityMultiplier:    map[Quality]float64{QualityStandard: 1, QualityPremium: 1.5, QualityLuxury: 2},
		DoubleSideMultiplier: 1.2,
	},
	ServiceSignage: {
		BasePrice:            1000,
		PerUnitPrice:         200,
		QualityMultiplier:    map[Quality]float64{QualityStandard: 1, QualityPremium: 1.5, QualityLuxury: 2},
		DoubleSideMultiplier: 1.2,
	},
	ServiceCustom: {
		BasePrice:            500,
		PerUnitPrice:         50,
		QualityMultiplier:    map[Quality]float64{QualityStandard: 1, QualityPremium: 1.5, QualityLuxury: 2},
		DoubleSideMultiplier: 1.3,
	},
}

var serviceLabels = map[ServiceType]string{
	ServiceBusinessCards: "Business Cards",
	ServiceBrochures:     "Brochures & Catalogs",
	ServiceFlexBanner:    "Flex Banners",
	ServicePosters:       "Posters & Flyers",
	ServiceSignage:       "Shop Signage",
	ServiceCustom:        "Custom Print Job",
}

// ConfigFor returns the pricing configuration for a service type. Passing a
// value outside the closed enum is a caller bug and panics.
func ConfigFor(service ServiceType) Config {
	cfg, ok := table[service]
	if !ok {
		panic(fmt.Sprintf("pricing: unknown service type %q", service))
	}
	return cfg
}

// Label returns the customer-facing name of the service type.
func (s ServiceType) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return string(s)
}

// ServiceTypes lists the closed enum in display order.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceBusinessCards,
		ServiceBrochures,
		ServiceFlexBanner,
		ServicePosters,
		ServiceSignage,
		ServiceCustom,
	}
}

// Breakdown contains the intermediate values of one estimate.
type Breakdown struct {
	BasePrice         float64
	UnitCost          float64
	QualityMultiplier float64
	SideMultiplier    float64
	Total             int
}

// Estimate computes the quoted price in whole currency units.
//
// The result is deterministic for fixed inputs. A quantity of zero or less
// prices to zero: the quote is not yet computable, not an error. Rounding is
// half away from zero, so estimates reproduce across platforms.
func Estimate(service ServiceType, quantity int, quality Quality, side Side) int {
	return EstimateBreakdown(service, quantity, quality, side).Total
}

// EstimateBreakdown is Estimate with the intermediate values exposed for
// rendering quote documents.
func EstimateBreakdown(service ServiceType, quantity int, quality Quality, side Side) Breakdown {
	cfg := ConfigFor(service)
	qualityMult, ok := cfg.QualityMultiplier[quality]
	if !ok {
		panic(fmt.Sprintf("pricing: unknown quality tier %q", quality))
	}

	b := Breakdown{
		BasePrice:         cfg.BasePrice,
		QualityMultiplier: qualityMult,
		SideMultiplier:    1,
	}
	if side == SideDouble {
		b.SideMultiplier = cfg.DoubleSideMultiplier
	}
	if quantity <= 0 {
		return b
	}

	b.UnitCost = cfg.PerUnitPrice * float64(quantity)
	raw := (cfg.BasePrice + b.UnitCost) * b.QualityMultiplier * b.SideMultiplier
	b.Total = int(math.Round(raw))
	return b
}

// ParseServiceType maps a user-supplied tag onto the closed enum.
func ParseServiceType(raw string) (ServiceType, error) {
	service := ServiceType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := table[service]; !ok {
		return "", fmt.Errorf("unknown service type %q", raw)
	}
	return service, nil
}

// ParseQuality maps a user-supplied tag onto a quality tier.
func ParseQuality(raw string) (Quality, error) {
	switch Quality(strings.ToLower(strings.TrimSpace(raw))) {
	case QualityStandard:
		return QualityStandard, nil
	case QualityPremium:
		return QualityPremium, nil
	case QualityLuxury:
		return QualityLuxury, nil
	default:
		return "", fmt.Errorf("unknown quality tier %q", raw)
	}
}

// ParseSide maps a user-supplied tag onto a print-side option.
func ParseSide(raw string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(raw))) {
	case SideSingle:
		return SideSingle, nil
	case SideDouble:
		return SideDouble, nil
	default:
		return "", fmt.Errorf("unknown print side %q", raw)
	}
}
