package accommodation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"
)

func TestAffordabilityScore(t *testing.T) {
	tests := []struct {
		name string
		rent int
		want int
	}{
		{name: "free", rent: 0, want: 10},
		{name: "cheap", rent: 30000, want: 8},
		{name: "mid", rent: 75000, want: 5},
		{name: "ceiling", rent: 150000, want: 0},
		{name: "above ceiling clamps to zero", rent: 200000, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AffordabilityScore(tt.rent))
		})
	}
}

func TestAffordabilityScore_monotonic(t *testing.T) {
	prev := AffordabilityScore(0)
	for rent := 0; rent <= 300000; rent += 5000 {
		score := AffordabilityScore(rent)
		assert.LessOrEqual(t, score, prev, "affordability must not increase with rent (rent=%d)", rent)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 10)
		prev = score
	}
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings Ratings
		want    null.Float64
	}{
		{name: "none present", ratings: Ratings{}, want: null.Float64{}},
		{
			name:    "single rating",
			ratings: Ratings{Overall: null.Float64From(4)},
			want:    null.Float64From(4),
		},
		{
			name: "mean rounded to one decimal",
			ratings: Ratings{
				Overall:  null.Float64From(5),
				Location: null.Float64From(5), Cleanliness: null.Float64From(4),
			},
			want: null.Float64From(4.7), // 14/3 = 4.67 -> 4.7
		},
		{
			name: "null fields dropped, not zeroed",
			ratings: Ratings{
				Overall:       null.Float64From(4),
				ValueForMoney: null.Float64From(3),
			},
			want: null.Float64From(3.5),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageRating(tt.ratings))
		})
	}
}

func TestWouldRecommend(t *testing.T) {
	tests := []struct {
		name    string
		ratings Ratings
		want    bool
	}{
		{
			name:    "both above thresholds",
			ratings: Ratings{Overall: null.Float64From(4), ValueForMoney: null.Float64From(3.5)},
			want:    true,
		},
		{
			name:    "overall too low",
			ratings: Ratings{Overall: null.Float64From(3.9), ValueForMoney: null.Float64From(5)},
			want:    false,
		},
		{
			name:    "value for money too low",
			ratings: Ratings{Overall: null.Float64From(5), ValueForMoney: null.Float64From(3.4)},
			want:    false,
		},
		{
			name:    "only overall present",
			ratings: Ratings{Overall: null.Float64From(5)},
			want:    false,
		},
		{
			name:    "only value for money present",
			ratings: Ratings{ValueForMoney: null.Float64From(5)},
			want:    false,
		},
		{name: "none present", ratings: Ratings{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WouldRecommend(tt.ratings))
		})
	}
}

func TestComputeScores(t *testing.T) {
	acc := Accommodation{
		MonthlyRentCents: 45000,
		Ratings: Ratings{
			Overall: null.Float64From(4), Location: null.Float64From(4),
			Cleanliness: null.Float64From(4), ValueForMoney: null.Float64From(4),
		},
	}
	ComputeScores(&acc)

	assert.Equal(t, 7, acc.Scores.Affordability) // round((1-0.3)*10)
	assert.Equal(t, 8, acc.Scores.Value)         // round((0.8*0.6+0.7*0.4)*10)
	assert.Equal(t, 8, acc.Scores.Proximity)     // round(4*2)
	assert.Equal(t, CategoryBudget, acc.Scores.BudgetCategory)
	assert.Equal(t, null.Float64From(4.0), acc.Scores.AverageRating)
	assert.True(t, acc.Scores.WouldRecommend)
}

func TestComputeScores_defaults(t *testing.T) {
	acc := Accommodation{} // nothing known
	ComputeScores(&acc)

	assert.Equal(t, 5, acc.Scores.Value)     // neutral default without rating
	assert.Equal(t, 5, acc.Scores.Proximity) // default without location rating
	assert.False(t, acc.Scores.AverageRating.Valid)
	assert.False(t, acc.Scores.WouldRecommend)
}

func TestBudgetCategory(t *testing.T) {
	tests := []struct {
		name string
		rent int
		want string
	}{
		{name: "budget", rent: 49999, want: CategoryBudget},
		{name: "mid low boundary", rent: 50000, want: CategoryMidRange},
		{name: "mid high boundary", rent: 80000, want: CategoryMidRange},
		{name: "premium", rent: 80001, want: CategoryPremium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, budgetCategory(tt.rent))
		})
	}
}

func TestProsConsRules(t *testing.T) {
	acc := Accommodation{
		MonthlyRentCents: 85000,
		DepositCents:     100000,
		Ratings:          Ratings{Overall: null.Float64From(2.5)},
	}
	ComputeScores(&acc)

	assert.Empty(t, acc.Scores.Pros)
	// rules append in declared order
	assert.Equal(t, []string{
		"Premium price point",
		"Below average rating",
		"Few amenities listed",
		"High deposit required",
	}, acc.Scores.Cons)

	cheap := Accommodation{
		MonthlyRentCents: 40000,
		Ratings:          Ratings{Overall: null.Float64From(4.5), Location: null.Float64From(4)},
		Amenities:        []string{"balcony", "furnished", "heating", "kitchen", "laundry", "wifi"},
	}
	ComputeScores(&cheap)
	assert.Equal(t, []string{
		"Affordable monthly rent",
		"Excellent overall rating",
		"Great location",
		"Well equipped (6 amenities)",
	}, cheap.Scores.Pros)
	assert.Empty(t, cheap.Scores.Cons)
}

func TestProsRules_wellEquippedThreshold(t *testing.T) {
	// the pros rule and the comparison recommendation share one threshold
	acc := Accommodation{Amenities: make([]string, wellEquippedMinLen-1)}
	ComputeScores(&acc)
	assert.NotContains(t, acc.Scores.Pros, "Well equipped (5 amenities)")

	acc = Accommodation{Amenities: make([]string, wellEquippedMinLen)}
	ComputeScores(&acc)
	assert.Contains(t, acc.Scores.Pros, "Well equipped (6 amenities)")
}
