package accommodation

import (
	"math"
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/safari/core/submission"
)

// NormalizeCents converts a money value of unknown unit to integer cents.
// Students enter rents either in euros ("450") or the importer already
// stored cents ("45000"); values above 1000 are assumed to be cents.
// The heuristic is ambiguous for rents of €1000-and-up entered as euros
// (and for sub-€10 amounts stored as cents); it is kept as-is for
// compatibility with existing data.
func NormalizeCents(v float64) int {
	if v <= 0 {
		return 0
	}
	if v > 1000 {
		return int(math.Round(v))
	}
	return int(math.Round(v * 100))
}

// normalizeRating accepts 1-5 numeric ratings only; anything else is null.
func normalizeRating(v float64, ok bool) null.Float64 {
	if !ok || v < 1 || v > 5 {
		return null.Float64{}
	}
	return null.Float64From(v)
}

// New normalizes a raw ACCOMMODATION submission into a canonical record.
// Missing or malformed fields default (0, null, empty) rather than error:
// statistics must never crash on partial student-entered data.
func New(sub submission.Submission) Accommodation {
	m := sub.DataMap()

	acc := Accommodation{
		ID:                sub.ID,
		Name:              submission.Str(m, "name", "title", "accommodationName"),
		Type:              submission.Str(m, "type", "accommodationType"),
		City:              submission.Str(m, "city", "destinationCity"),
		Country:           submission.Str(m, "country", "destinationCountry"),
		Neighborhood:      submission.Str(m, "neighborhood", "neighbourhood", "area"),
		Description:       submission.Str(m, "description", "comments", "review"),
		StudentName:       submission.Str(m, "studentName", "author"),
		StudentUniversity: submission.Str(m, "studentUniversity", "university"),
	}

	if v, ok := submission.Num(m, "monthlyRent", "monthly_rent", "rent", "monthlyPrice", "price"); ok {
		acc.MonthlyRentCents = NormalizeCents(v)
	}
	if v, ok := submission.Num(m, "deposit", "depositAmount"); ok {
		acc.DepositCents = NormalizeCents(v)
	}
	if v, ok := submission.Num(m, "utilities", "utilitiesCost", "monthlyUtilities"); ok {
		acc.UtilitiesCents = NormalizeCents(v)
	}

	ratings := m
	if sub, ok := m["ratings"].(map[string]interface{}); ok {
		ratings = sub
	}
	acc.Ratings = Ratings{
		Overall:       normalizeRating(submission.Num(ratings, "overall", "overallRating", "rating")),
		Location:      normalizeRating(submission.Num(ratings, "location", "locationRating")),
		Cleanliness:   normalizeRating(submission.Num(ratings, "cleanliness", "cleanlinessRating")),
		ValueForMoney: normalizeRating(submission.Num(ratings, "valueForMoney", "valueForMoneyRating")),
	}

	// amenity detection searches the amenities free text and the description
	amenities := submission.Strs(m, "amenities", "features")
	acc.amenitiesText = strings.Join(append(amenities, acc.Description), " ")

	return acc
}
