package accommodation

import (
	"fmt"
	"math"

	"github.com/volatiletech/null/v8"
)

// maxRentCents is the fixed affordability ceiling (€1500/month).
const maxRentCents = 150000

// Budget category thresholds, in cents.
const (
	budgetMaxCents  = 50000 // < €500 -> Budget
	premiumMinCents = 80000 // > €800 -> Premium
)

// AffordabilityScore maps monthly rent to 0-10, non-increasing in rent,
// clamped at both ends.
func AffordabilityScore(rentCents int) int {
	score := int(math.Round((1 - float64(rentCents)/maxRentCents) * 10))
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// AverageRating is the mean of whichever ratings are present, rounded to
// one decimal; null when none are.
func AverageRating(r Ratings) null.Float64 {
	var sum float64
	var n int
	for _, rating := range []null.Float64{r.Overall, r.Location, r.Cleanliness, r.ValueForMoney} {
		if rating.Valid {
			sum += rating.Float64
			n++
		}
	}
	if n == 0 {
		return null.Float64{}
	}
	return null.Float64From(math.Round(sum/float64(n)*10) / 10)
}

func valueScore(avg null.Float64, rentCents, affordability int) int {
	if !avg.Valid || rentCents <= 0 {
		return 5 // neutral default
	}
	return int(math.Round(((avg.Float64/5)*0.6 + (float64(affordability)/10)*0.4) * 10))
}

func proximityScore(location null.Float64) int {
	if !location.Valid {
		return 5
	}
	return int(math.Round(location.Float64 * 2))
}

func budgetCategory(rentCents int) string {
	switch {
	case rentCents < budgetMaxCents:
		return CategoryBudget
	case rentCents > premiumMinCents:
		return CategoryPremium
	default:
		return CategoryMidRange
	}
}

// WouldRecommend requires both the overall and value-for-money ratings to
// be present; absence of either means false.
func WouldRecommend(r Ratings) bool {
	return r.Overall.Valid && r.ValueForMoney.Valid &&
		r.Overall.Float64 >= 4.0 && r.ValueForMoney.Float64 >= 3.5
}

// Pros/cons are an explicit ordered rule list, evaluated top to bottom;
// every matching rule appends its message.
type scoreRule struct {
	match   func(acc *Accommodation) bool
	message func(acc *Accommodation) string
}

var prosRules = []scoreRule{
	{
		match:   func(a *Accommodation) bool { return a.MonthlyRentCents > 0 && a.MonthlyRentCents < budgetMaxCents },
		message: func(a *Accommodation) string { return "Affordable monthly rent" },
	},
	{
		match:   func(a *Accommodation) bool { return a.Ratings.Overall.Valid && a.Ratings.Overall.Float64 >= 4.5 },
		message: func(a *Accommodation) string { return "Excellent overall rating" },
	},
	{
		match:   func(a *Accommodation) bool { return a.Ratings.Location.Valid && a.Ratings.Location.Float64 >= 4.0 },
		message: func(a *Accommodation) string { return "Great location" },
	},
	{
		match: func(a *Accommodation) bool {
			return a.Ratings.Cleanliness.Valid && a.Ratings.Cleanliness.Float64 >= 4.0
		},
		message: func(a *Accommodation) string { return "Clean and well maintained" },
	},
	{
		match:   func(a *Accommodation) bool { return len(a.Amenities) >= wellEquippedMinLen },
		message: func(a *Accommodation) string { return fmt.Sprintf("Well equipped (%d amenities)", len(a.Amenities)) },
	},
	{
		match:   func(a *Accommodation) bool { return len(a.UniqueFeatures) >= 2 },
		message: func(a *Accommodation) string { return fmt.Sprintf("%d features the others lack", len(a.UniqueFeatures)) },
	},
}

var consRules = []scoreRule{
	{
		match:   func(a *Accommodation) bool { return a.MonthlyRentCents > premiumMinCents },
		message: func(a *Accommodation) string { return "Premium price point" },
	},
	{
		match:   func(a *Accommodation) bool { return a.Ratings.Overall.Valid && a.Ratings.Overall.Float64 < 3.0 },
		message: func(a *Accommodation) string { return "Below average rating" },
	},
	{
		match:   func(a *Accommodation) bool { return len(a.Amenities) <= 2 },
		message: func(a *Accommodation) string { return "Few amenities listed" },
	},
	{
		match:   func(a *Accommodation) bool { return a.DepositCents > a.MonthlyRentCents && a.MonthlyRentCents > 0 },
		message: func(a *Accommodation) string { return "High deposit required" },
	},
}

func applyRules(rules []scoreRule, acc *Accommodation) []string {
	out := make([]string, 0, len(rules))
	for _, rule := range rules {
		if rule.match(acc) {
			out = append(out, rule.message(acc))
		}
	}
	return out
}

// ComputeScores fills in the derived score set. Amenity extraction (and,
// within a comparison, unique-feature computation) must have run first since
// several rules read those sets.
func ComputeScores(acc *Accommodation) {
	affordability := AffordabilityScore(acc.MonthlyRentCents)
	avg := AverageRating(acc.Ratings)

	acc.Scores = ScoreSet{
		Affordability:  affordability,
		Value:          valueScore(avg, acc.MonthlyRentCents, affordability),
		Proximity:      proximityScore(acc.Ratings.Location),
		BudgetCategory: budgetCategory(acc.MonthlyRentCents),
		AverageRating:  avg,
		WouldRecommend: WouldRecommend(acc.Ratings),
		Pros:           applyRules(prosRules, acc),
		Cons:           applyRules(consRules, acc),
	}
}
