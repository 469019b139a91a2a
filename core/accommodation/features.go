package accommodation

import "github.com/trezcool/safari/core/feature"

// AmenityVocabulary is the closed amenity tag universe. "Missing" and
// "unique" amenity sets are always computed against this same table, so
// they stay comparable across all records of one operation.
var AmenityVocabulary = feature.Vocabulary{
	"wifi":      {"wifi", "wi-fi", "wireless", "internet"},
	"parking":   {"parking", "garage", "car space"},
	"kitchen":   {"kitchen", "kitchenette", "cooking"},
	"laundry":   {"laundry", "washing machine", "washer", "dryer"},
	"furnished": {"furnished", "furniture"},
	"aircon":    {"aircon", "air con", "air-con", "a/c", "climatisation"},
	"heating":   {"heating", "heater", "radiator"},
	"elevator":  {"elevator", "lift"},
	"balcony":   {"balcony", "terrace", "patio"},
	"gym":       {"gym", "fitness"},
	"pool":      {"pool", "swimming"},
	"security":  {"security", "guarded", "doorman", "cctv"},
	"pets":      {"pets allowed", "pet friendly", "pet-friendly"},
	"bike":      {"bike storage", "bicycle", "bike room"},
}

var amenityMatcher = feature.NewMatcher(AmenityVocabulary)

// ExtractAmenities fills in the record's detected amenity tags.
func ExtractAmenities(acc *Accommodation) {
	acc.Amenities = amenityMatcher.Extract(acc.amenitiesText)
	acc.MissingAmenities = feature.Missing(acc.Amenities, AmenityVocabulary)
}
