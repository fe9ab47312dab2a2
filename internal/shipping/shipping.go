// Package shipping maps a delivery destination and a total package weight to
// a flat fee in centavos via a region classification step and a weight-tier
// rate table. The tables are compiled-in configuration.
package shipping

import "strings"

// Region is a coarse geographic bucket selecting a rate table.
type Region string

const (
	MetroManila Region = "metro-manila"
	Luzon       Region = "luzon"
	Visayas     Region = "visayas"
	Mindanao    Region = "mindanao"
)

// DefaultRegion is used when a destination cannot be classified. Luzon was
// chosen over Metro Manila so unrecognized provincial addresses are not
// priced at the cheapest metro rate.
const DefaultRegion = Luzon

// DefaultItemWeightKg is the assumed weight of one cart item. Real per-SKU
// weights are not available in the catalog.
const DefaultItemWeightKg = 0.5

// tier is one weight bucket: orders weighing up to MaxKg pay FeeCents.
type tier struct {
	MaxKg    float64
	FeeCents int64
}

// rateTable holds a region's tiers in strictly increasing weight bounds,
// plus a flat overflow fee once every bound is exceeded.
type rateTable struct {
	tiers    []tier
	overflow int64
}

var rates = map[Region]rateTable{
	MetroManila: {
		tiers:    []tier{{0.5, 8500}, {1, 11500}, {3, 18500}, {5, 25500}},
		overflow: 39500,
	},
	Luzon: {
		tiers:    []tier{{0.5, 9500}, {1, 16500}, {3, 24500}, {5, 33000}},
		overflow: 50000,
	},
	Visayas: {
		tiers:    []tier{{0.5, 10000}, {1, 18000}, {3, 26000}, {5, 35000}},
		overflow: 55000,
	},
	Mindanao: {
		tiers:    []tier{{0.5, 10500}, {1, 19500}, {3, 28000}, {5, 38000}},
		overflow: 60000,
	},
}

// destinations maps normalized city and province names to regions. Matching
// free text against this table is fragile by nature; ClassifyAddress with a
// structured city/province pair is the preferred entry point.
var destinations = map[string]Region{
	"metro manila": MetroManila,
	"ncr":          MetroManila,
	"manila":       MetroManila,
	"quezon city":  MetroManila,
	"makati":       MetroManila,
	"taguig":       MetroManila,
	"pasig":        MetroManila,
	"pasay":        MetroManila,
	"mandaluyong":  MetroManila,
	"marikina":     MetroManila,
	"caloocan":     MetroManila,
	"paranaque":    MetroManila,

	"luzon":    Luzon,
	"cavite":   Luzon,
	"laguna":   Luzon,
	"batangas": Luzon,
	"rizal":    Luzon,
	"bulacan":  Luzon,
	"pampanga": Luzon,
	"baguio":   Luzon,
	"bicol":    Luzon,

	"visayas":   Visayas,
	"cebu":      Visayas,
	"cebu city": Visayas,
	"iloilo":    Visayas,
	"bacolod":   Visayas,
	"bohol":     Visayas,
	"tacloban":  Visayas,

	"mindanao":       Mindanao,
	"davao":          Mindanao,
	"davao city":     Mindanao,
	"cagayan de oro": Mindanao,
	"zamboanga":      Mindanao,
	"general santos": Mindanao,
	"butuan":         Mindanao,
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Classify maps a free-text destination to a region. Unknown destinations
// fall back to DefaultRegion.
func Classify(destination string) Region {
	if r, ok := destinations[normalize(destination)]; ok {
		return r
	}
	return DefaultRegion
}

// ClassifyAddress classifies a structured address, preferring the city over
// the province. Both unknown falls back to DefaultRegion.
func ClassifyAddress(city, province string) Region {
	if r, ok := destinations[normalize(city)]; ok {
		return r
	}
	if r, ok := destinations[normalize(province)]; ok {
		return r
	}
	return DefaultRegion
}

// FeeForRegion selects the smallest tier whose bound covers weightKg.
// Weights beyond the heaviest bound pay the region's fixed overflow fee;
// the function is total over all non-negative weights.
func FeeForRegion(region Region, weightKg float64) int64 {
	table, ok := rates[region]
	if !ok {
		table = rates[DefaultRegion]
	}
	for _, t := range table.tiers {
		if weightKg <= t.MaxKg {
			return t.FeeCents
		}
	}
	return table.overflow
}

// Fee prices a free-text destination. A blank destination returns zero,
// which callers treat as "not yet computable" rather than free shipping.
func Fee(destination string, weightKg float64) int64 {
	if strings.TrimSpace(destination) == "" {
		return 0
	}
	return FeeForRegion(Classify(destination), weightKg)
}

// OrderWeightKg derives the package weight from the cart's item count using
// a fixed per-item weight. Values of perItemKg at or below zero use
// DefaultItemWeightKg.
func OrderWeightKg(itemCount int, perItemKg float64) float64 {
	if perItemKg <= 0 {
		perItemKg = DefaultItemWeightKg
	}
	return float64(itemCount) * perItemKg
}
