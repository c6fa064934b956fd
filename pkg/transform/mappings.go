package transform

import "github.com/RubenBarrionuevo/kyero2is24/pkg/is24"

// TypeMapping collapses Kyero property types onto the four ImmoScout24
// real-estate types. Source types missing here are skipped entirely.
var TypeMapping = map[string]string{
	"villa":                is24.TypeHouseBuy,
	"apartment":            is24.TypeApartmentBuy,
	"land":                 is24.TypeLivingBuySite,
	"penthouse":            is24.TypeApartmentBuy,
	"townhouse":            is24.TypeHouseBuy,
	"country house":        is24.TypeHouseBuy,
	"residential home":     is24.TypeHouseBuy,
	"studio":               is24.TypeApartmentBuy,
	"commercial premises":  is24.TypeTradeSite,
	"shop":                 is24.TypeTradeSite,
	"restaurant":           is24.TypeTradeSite,
	"bar":                  is24.TypeTradeSite,
	"aparthotel":           is24.TypeTradeSite,
	"hostel":               is24.TypeTradeSite,
	"office":               is24.TypeTradeSite,
	"apartment complex":    is24.TypeTradeSite,
	"car park":             is24.TypeTradeSite,
	"farm":                 is24.TypeLivingBuySite,
	"commercial":           is24.TypeTradeSite,
	"storage":              is24.TypeTradeSite,
	"warehouse":            is24.TypeTradeSite,
	"ruin":                 is24.TypeHouseBuy,
	"equestrian facility":  is24.TypeTradeSite,
	"retail property":      is24.TypeTradeSite,
	"marine property":      is24.TypeTradeSite,
	"nightclub":            is24.TypeTradeSite,
	"bed and breakfast":    is24.TypeTradeSite,
	"guest house":          is24.TypeTradeSite,
}

// BuildMapping assigns the construction type for residential listings.
var BuildMapping = map[string]string{
	"villa":            "VILLA",
	"penthouse":        "APARTMENT",
	"townhouse":        "SINGLE_FAMILY_HOUSE",
	"country house":    "SINGLE_FAMILY_HOUSE",
	"residential home": "NO_INFORMATION",
	"apartment":        "APARTMENT",
	"studio":           "STUDIO",
	"ruin":             "NO_INFORMATION",
}

// RecommendedUseMapping assigns the recommended use for tradeSite listings.
var RecommendedUseMapping = map[string]string{
	"commercial premises": "RETAIL",
	"shop":                "RETAIL",
	"retail property":     "RETAIL",
	"commercial":          "RETAIL",
	"storage":             "RETAIL",
	"warehouse":           "RETAIL",
	"restaurant":          "GASTRONOMY",
	"bar":                 "GASTRONOMY",
	"aparthotel":          "GASTRONOMY",
	"hostel":              "GASTRONOMY",
	"nightclub":           "GASTRONOMY",
	"bed and breakfast":   "GASTRONOMY",
	"guest house":         "GASTRONOMY",
	"office":              "OFFICE",
	"apartment complex":   "OTHER",
	"car park":            "OTHER",
	"equestrian facility": "OTHER",
	"marine property":     "OTHER",
}

// RegionMapping translates Spanish provinces to the region names the target
// platform expects.
var RegionMapping = map[string]string{
	"Málaga": "Andalusien",
	"Cádiz":  "Andalusien",
	"Malaga": "Andalusien",
	"Cadiz":  "Andalusien",
}

// Enumerations the target schema restricts; out-of-range values fall back
// with a logged warning.
var (
	validUtilizationTradeSite = map[string]bool{
		"AGRICULTURE_FORESTRY": true,
		"LEISURE":              true,
		"NO_INFORMATION":       true,
	}
	validCommercializationType = map[string]bool{
		"BUY":   true,
		"LEASE": true,
	}
)
