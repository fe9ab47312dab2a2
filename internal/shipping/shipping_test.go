package shipping

import "testing"

func TestClassifyKnownDestinations(t *testing.T) {
	cases := []struct {
		destination string
		want        Region
	}{
		{"Quezon City", MetroManila},
		{"  makati  ", MetroManila},
		{"MANILA", MetroManila},
		{"Cavite", Luzon},
		{"cebu city", Visayas},
		{"Davao", Mindanao},
	}
	for _, tc := range cases {
		if got := Classify(tc.destination); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.destination, got, tc.want)
		}
	}
}

func TestClassifyUnknownDefaultsToLuzon(t *testing.T) {
	if got := Classify("Unknown Town"); got != Luzon {
		t.Fatalf("expected default region luzon, got %s", got)
	}
}

func TestClassifyAddressPrefersCity(t *testing.T) {
	if got := ClassifyAddress("Cebu", "Metro Manila"); got != Visayas {
		t.Fatalf("city should win over province, got %s", got)
	}
	if got := ClassifyAddress("Barangay 12", "Davao"); got != Mindanao {
		t.Fatalf("unknown city should fall back to province, got %s", got)
	}
	if got := ClassifyAddress("", ""); got != DefaultRegion {
		t.Fatalf("blank address should use default region, got %s", got)
	}
}

func TestFeeBlankDestinationIsZero(t *testing.T) {
	if got := Fee("", 0.5); got != 0 {
		t.Fatalf("blank destination should price at zero, got %d", got)
	}
	if got := Fee("   ", 2); got != 0 {
		t.Fatalf("whitespace destination should price at zero, got %d", got)
	}
}

func TestFeeMetroManilaBaseTier(t *testing.T) {
	if got := Fee("Quezon City", 0.5); got != 8500 {
		t.Fatalf("expected metro manila base tier 8500, got %d", got)
	}
}

func TestFeeOverflowBeyondHeaviestTier(t *testing.T) {
	// Unknown destinations classify as Luzon; 6 kg exceeds every tier bound.
	if got := Fee("Unknown Town", 6.0); got != 50000 {
		t.Fatalf("expected luzon overflow fee 50000, got %d", got)
	}
}

func TestFeeForRegionTierBoundsAreInclusive(t *testing.T) {
	if got := FeeForRegion(MetroManila, 1.0); got != 11500 {
		t.Fatalf("weight on the bound should use that tier, got %d", got)
	}
	if got := FeeForRegion(MetroManila, 1.01); got != 18500 {
		t.Fatalf("weight just past the bound should use the next tier, got %d", got)
	}
}

func TestFeeForRegionMonotonicInWeight(t *testing.T) {
	regions := []Region{MetroManila, Luzon, Visayas, Mindanao}
	weights := []float64{0, 0.25, 0.5, 0.75, 1, 2, 3, 4, 5, 5.5, 10, 100}
	for _, region := range regions {
		prev := int64(-1)
		for _, w := range weights {
			fee := FeeForRegion(region, w)
			if fee < prev {
				t.Fatalf("fee decreased for %s at %.2f kg: %d < %d", region, w, fee, prev)
			}
			prev = fee
		}
	}
}

func TestFeeForRegionUnknownRegionUsesDefault(t *testing.T) {
	if got := FeeForRegion(Region("mars"), 0.5); got != FeeForRegion(DefaultRegion, 0.5) {
		t.Fatalf("unknown region should price like the default, got %d", got)
	}
}

func TestOrderWeightKg(t *testing.T) {
	if got := OrderWeightKg(3, 0.5); got != 1.5 {
		t.Fatalf("expected 1.5 kg, got %f", got)
	}
	if got := OrderWeightKg(2, 0); got != 2*DefaultItemWeightKg {
		t.Fatalf("non-positive per-item weight should use the default, got %f", got)
	}
	if got := OrderWeightKg(0, 0.5); got != 0 {
		t.Fatalf("empty cart weighs nothing, got %f", got)
	}
}
