package accommodation

import (
	"fmt"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/safari/core/feature"
)

// Comparison size bounds.
const (
	MinCompare = 2
	MaxCompare = 4
)

// Recommendation thresholds; explicit business rules, not statistics.
const (
	priceGapCents      = 20000 // > €200/month
	goodRating         = 4.0
	goodValueScore     = 7
	wellEquippedMinLen = 6
)

type (
	// Pick references one record singled out by the summary.
	Pick struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	Summary struct {
		Cheapest           Pick         `json:"cheapest"`
		MostExpensive      Pick         `json:"mostExpensive"`
		HighestRated       Pick         `json:"highestRated"`
		BestValue          Pick         `json:"bestValue"`
		PriceGapCents      int          `json:"priceGapCents"`
		HighestRating      null.Float64 `json:"highestRating"`
		BestValueScore     int          `json:"bestValueScore"`
		AverageRentCents   int          `json:"averageRentCents"`
		SharedAmenities    []string     `json:"sharedAmenities"`
		ComparedVocabulary []string     `json:"comparedVocabulary"`
	}

	ComparisonResult struct {
		Accommodations  []Accommodation `json:"accommodations"`
		Summary         Summary         `json:"summary"`
		Recommendations []string        `json:"recommendations"`
	}
)

func pick(acc Accommodation) Pick { return Pick{ID: acc.ID, Name: acc.Name} }

// Compare produces the cross-record summary for 2-4 normalized records.
// Callers validate the set size; ties always go to the first element.
func Compare(records []Accommodation) ComparisonResult {
	// unique features are relative to the other records of this set
	for i := range records {
		others := make([][]string, 0, len(records)-1)
		for j := range records {
			if j != i {
				others = append(others, records[j].Amenities)
			}
		}
		records[i].UniqueFeatures = feature.Unique(records[i].Amenities, others...)
	}
	for i := range records {
		ComputeScores(&records[i])
	}

	cheapest, mostExpensive := records[0], records[0]
	bestValue := records[0]
	var rentSum int
	for _, rec := range records {
		rentSum += rec.MonthlyRentCents
		if rec.MonthlyRentCents < cheapest.MonthlyRentCents {
			cheapest = rec
		}
		if rec.MonthlyRentCents > mostExpensive.MonthlyRentCents {
			mostExpensive = rec
		}
		if rec.Scores.Value > bestValue.Scores.Value {
			bestValue = rec
		}
	}

	// highest rated among records that have a rating at all;
	// falls back to the first record when none does
	highestRated := records[0]
	var seenRated bool
	for _, rec := range records {
		if !rec.Scores.AverageRating.Valid {
			continue
		}
		if !seenRated || rec.Scores.AverageRating.Float64 > highestRated.Scores.AverageRating.Float64 {
			highestRated = rec
			seenRated = true
		}
	}

	shared := records[0].Amenities
	for _, rec := range records[1:] {
		shared = intersect(shared, rec.Amenities)
	}

	summary := Summary{
		Cheapest:           pick(cheapest),
		MostExpensive:      pick(mostExpensive),
		HighestRated:       pick(highestRated),
		BestValue:          pick(bestValue),
		PriceGapCents:      mostExpensive.MonthlyRentCents - cheapest.MonthlyRentCents,
		HighestRating:      highestRated.Scores.AverageRating,
		BestValueScore:     bestValue.Scores.Value,
		AverageRentCents:   rentSum / len(records),
		SharedAmenities:    shared,
		ComparedVocabulary: AmenityVocabulary.Tags(),
	}

	return ComparisonResult{
		Accommodations:  records,
		Summary:         summary,
		Recommendations: recommendations(records, summary, cheapest, mostExpensive, highestRated, bestValue),
	}
}

// recommendations emits a templated line per threshold crossed.
func recommendations(
	records []Accommodation,
	summary Summary,
	cheapest, mostExpensive, highestRated, bestValue Accommodation,
) []string {
	recs := make([]string, 0, 4)

	if summary.PriceGapCents > priceGapCents {
		recs = append(recs, fmt.Sprintf(
			"%s is €%d/month cheaper than %s",
			cheapest.Name, summary.PriceGapCents/100, mostExpensive.Name,
		))
	}
	if summary.HighestRating.Valid && summary.HighestRating.Float64 >= goodRating {
		recs = append(recs, fmt.Sprintf(
			"%s has the highest rating (%.1f/5)", highestRated.Name, summary.HighestRating.Float64,
		))
	}
	if summary.BestValueScore >= goodValueScore {
		recs = append(recs, fmt.Sprintf("%s offers the best value for money", bestValue.Name))
	}

	bestEquipped := records[0]
	for _, rec := range records[1:] {
		if len(rec.Amenities) > len(bestEquipped.Amenities) {
			bestEquipped = rec
		}
	}
	if len(bestEquipped.Amenities) >= wellEquippedMinLen {
		recs = append(recs, fmt.Sprintf(
			"%s is the best equipped with %d amenities", bestEquipped.Name, len(bestEquipped.Amenities),
		))
	}
	return recs
}

func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, tag := range b {
		set[tag] = true
	}
	out := make([]string, 0, len(a))
	for _, tag := range a {
		if set[tag] {
			out = append(out, tag)
		}
	}
	return out
}
