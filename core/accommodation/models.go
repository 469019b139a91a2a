package accommodation

import "github.com/volatiletech/null/v8"

// Budget categories.
const (
	CategoryBudget   = "Budget"
	CategoryMidRange = "Mid-range"
	CategoryPremium  = "Premium"
)

type (
	// Ratings holds the 1-5 student ratings. Absent or out-of-range values
	// are null and are dropped from averages, never coerced.
	Ratings struct {
		Overall       null.Float64 `json:"overall"`
		Location      null.Float64 `json:"location"`
		Cleanliness   null.Float64 `json:"cleanliness"`
		ValueForMoney null.Float64 `json:"valueForMoney"`
	}

	// ScoreSet holds the derived indicators. Scores are recomputed per
	// request and never persisted.
	ScoreSet struct {
		Affordability  int          `json:"affordabilityScore"` // 0-10
		Value          int          `json:"valueScore"`         // 0-10
		Proximity      int          `json:"proximityScore"`     // 0-10
		BudgetCategory string       `json:"budgetCategory"`
		AverageRating  null.Float64 `json:"averageRating"` // 1 decimal
		WouldRecommend bool         `json:"wouldRecommend"`
		Pros           []string     `json:"pros"`
		Cons           []string     `json:"cons"`
	}

	// Accommodation is the canonical record an ACCOMMODATION submission
	// normalizes into. All money fields are integer cents.
	Accommodation struct {
		ID                string   `json:"id"`
		Name              string   `json:"name"`
		Type              string   `json:"type"` // apartment, dorm, shared flat, ...
		City              string   `json:"city"`
		Country           string   `json:"country"`
		Neighborhood      string   `json:"neighborhood,omitempty"`
		MonthlyRentCents  int      `json:"monthlyRentCents"`
		DepositCents      int      `json:"depositCents,omitempty"`
		UtilitiesCents    int      `json:"utilitiesCents,omitempty"`
		Ratings           Ratings  `json:"ratings"`
		Description       string   `json:"description"`
		StudentName       string   `json:"studentName,omitempty"`
		StudentUniversity string   `json:"studentUniversity,omitempty"`
		Amenities         []string `json:"amenities"`
		MissingAmenities  []string `json:"missingAmenities,omitempty"`
		UniqueFeatures    []string `json:"uniqueFeatures,omitempty"`
		Scores            ScoreSet `json:"scores"`

		amenitiesText string // raw free text fed to feature extraction
	}
)
