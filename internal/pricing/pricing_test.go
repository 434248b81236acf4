package pricing

import "testing"

func TestEstimate_BusinessCardsStandardSingle(t *testing.T) {
	got := Estimate(ServiceBusinessCards, 100, QualityStandard, SideSingle)
	if got != 400 {
		t.Fatalf("estimate = %d, want 400", got)
	}
}

func TestEstimate_BusinessCardsLuxurySingle(t *testing.T) {
	got := Estimate(ServiceBusinessCards, 100, QualityLuxury, SideSingle)
	if got != 880 {
		t.Fatalf("estimate = %d, want 880", got)
	}
}

func TestEstimate_BusinessCardsLuxuryDouble(t *testing.T) {
	got := Estimate(ServiceBusinessCards, 100, QualityLuxury, SideDouble)
	if got != 1232 {
		t.Fatalf("estimate = %d, want 1232", got)
	}
}

func TestEstimate_ZeroQuantityPricesToZero(t *testing.T) {
	for _, service := range ServiceTypes() {
		if got := Estimate(service, 0, QualityLuxury, SideDouble); got != 0 {
			t.Fatalf("estimate(%s, 0) = %d, want 0", service, got)
		}
		if got := Estimate(service, -5, QualityStandard, SideSingle); got != 0 {
			t.Fatalf("estimate(%s, -5) = %d, want 0", service, got)
		}
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	first := Estimate(ServiceBrochures, 250, QualityPremium, SideDouble)
	for i := 0; i < 100; i++ {
		if got := Estimate(ServiceBrochures, 250, QualityPremium, SideDouble); got != first {
			t.Fatalf("estimate varied across calls: %d vs %d", got, first)
		}
	}
}

func TestEstimate_MonotonicInQuantity(t *testing.T) {
	for _, service := range ServiceTypes() {
		prev := Estimate(service, 0, QualityPremium, SideDouble)
		for qty := 1; qty <= 500; qty += 7 {
			got := Estimate(service, qty, QualityPremium, SideDouble)
			if got < prev {
				t.Fatalf("%s: estimate decreased from %d to %d at qty %d", service, prev, got, qty)
			}
			prev = got
		}
	}
}

func TestEstimate_QualityTierOrdering(t *testing.T) {
	for _, service := range ServiceTypes() {
		for _, side := range []Side{SideSingle, SideDouble} {
			standard := Estimate(service, 50, QualityStandard, side)
			premium := Estimate(service, 50, QualityPremium, side)
			luxury := Estimate(service, 50, QualityLuxury, side)
			if premium < standard {
				t.Fatalf("%s/%s: premium %d < standard %d", service, side, premium, standard)
			}
			if luxury < premium {
				t.Fatalf("%s/%s: luxury %d < premium %d", service, side, luxury, premium)
			}
		}
	}
}

func TestEstimate_DoubleSideNeverCheaper(t *testing.T) {
	for _, service := range ServiceTypes() {
		single := Estimate(service, 80, QualityStandard, SideSingle)
		double := Estimate(service, 80, QualityStandard, SideDouble)
		if double < single {
			t.Fatalf("%s: double side %d < single side %d", service, double, single)
		}
	}
}

func TestEstimateBreakdown_ExposesIntermediates(t *testing.T) {
	b := EstimateBreakdown(ServiceBusinessCards, 100, QualityLuxury, SideDouble)
	if b.BasePrice != 200 {
		t.Fatalf("base price = %v, want 200", b.BasePrice)
	}
	if b.UnitCost != 200 {
		t.Fatalf("unit cost = %v, want 200", b.UnitCost)
	}
	if b.QualityMultiplier != 2.2 {
		t.Fatalf("quality multiplier = %v, want 2.2", b.QualityMultiplier)
	}
	if b.SideMultiplier != 1.4 {
		t.Fatalf("side multiplier = %v, want 1.4", b.SideMultiplier)
	}
	if b.Total != 1232 {
		t.Fatalf("total = %d, want 1232", b.Total)
	}
}

func TestConfigFor_UnknownServicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown service type")
		}
	}()
	ConfigFor(ServiceType("origami"))
}

func TestParseServiceType(t *testing.T) {
	service, err := ParseServiceType("  Business-Cards ")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if service != ServiceBusinessCards {
		t.Fatalf("parsed %q, want %q", service, ServiceBusinessCards)
	}

	if _, err := ParseServiceType("t-shirts"); err == nil {
		t.Fatal("expected error for unknown service type")
	}
}

func TestParseQualityAndSide(t *testing.T) {
	if _, err := ParseQuality("luxury"); err != nil {
		t.Fatalf("parse quality returned error: %v", err)
	}
	if _, err := ParseQuality("deluxe"); err == nil {
		t.Fatal("expected error for unknown quality")
	}
	if _, err := ParseSide("double"); err != nil {
		t.Fatalf("parse side returned error: %v", err)
	}
	if _, err := ParseSide("triple"); err == nil {
		t.Fatal("expected error for unknown side")
	}
}
