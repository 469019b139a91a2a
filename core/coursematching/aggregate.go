package coursematching

import (
	"math"
	"sort"
	"strconv"

	"github.com/trezcool/safari/core/feature"
)

const topDestinationsLen = 5

// BuildStats folds all experiences into the overall summary. Averages are
// running sums divided by the count at the end, not per record.
func BuildStats(exps []Experience) Stats {
	stats := Stats{
		TotalExperiences:    len(exps),
		DifficultyBreakdown: make(map[string]int, 5),
		CommonExamTypes:     []string{},
		TopDestinations:     []DestinationCount{},
	}
	if len(exps) == 0 {
		return stats
	}

	var difficultySum int
	var ectsSum float64
	var ectsCount int
	examSets := make([][]string, 0, len(exps))
	byCity := make(map[string]int)

	for _, exp := range exps {
		difficultySum += exp.DifficultyScore
		stats.DifficultyBreakdown[strconv.Itoa(exp.DifficultyScore)]++
		if exp.ECTS > 0 {
			ectsSum += exp.ECTS
			ectsCount++
		}
		examSets = append(examSets, exp.ExamTypes)
		if exp.City != "" {
			byCity[exp.City]++
		}
	}

	stats.AverageDifficulty = round1(float64(difficultySum) / float64(len(exps)))
	if ectsCount > 0 {
		stats.AverageECTS = round1(ectsSum / float64(ectsCount))
	}
	stats.CommonExamTypes = feature.Union(examSets...)

	for city, count := range byCity {
		stats.TopDestinations = append(stats.TopDestinations, DestinationCount{City: city, Count: count})
	}
	sort.Slice(stats.TopDestinations, func(i, j int) bool {
		if stats.TopDestinations[i].Count != stats.TopDestinations[j].Count {
			return stats.TopDestinations[i].Count > stats.TopDestinations[j].Count
		}
		return stats.TopDestinations[i].City < stats.TopDestinations[j].City
	})
	if len(stats.TopDestinations) > topDestinationsLen {
		stats.TopDestinations = stats.TopDestinations[:topDestinationsLen]
	}

	return stats
}

// BuildInsights folds one destination's experiences into its summary.
func BuildInsights(city, country string, exps []Experience) Insights {
	insights := Insights{
		Destination:      city,
		Country:          country,
		TotalExperiences: len(exps),
		CommonExamTypes:  []string{},
		HostUniversities: []string{},
		CommonChallenges: []string{},
	}
	if len(exps) == 0 {
		return insights
	}

	var difficultySum int
	var ectsSum float64
	var ectsCount int
	examSets := make([][]string, 0, len(exps))
	seenUni := make(map[string]bool)

	for _, exp := range exps {
		difficultySum += exp.DifficultyScore
		if exp.ECTS > 0 {
			ectsSum += exp.ECTS
			ectsCount++
		}
		examSets = append(examSets, exp.ExamTypes)
		if exp.FoundDifficult == "yes" {
			insights.StudentsWhoFoundDifficult++
		}
		if exp.HostUniversity != "" && !seenUni[exp.HostUniversity] {
			seenUni[exp.HostUniversity] = true
			insights.HostUniversities = append(insights.HostUniversities, exp.HostUniversity)
		}
		for _, challenge := range exp.Challenges {
			if len(insights.CommonChallenges) < 3 {
				insights.CommonChallenges = append(insights.CommonChallenges, challenge)
			}
		}
	}

	insights.AverageDifficulty = round1(float64(difficultySum) / float64(len(exps)))
	if ectsCount > 0 {
		insights.AverageECTS = round1(ectsSum / float64(ectsCount))
	}
	insights.CommonExamTypes = feature.Union(examSets...)
	sort.Strings(insights.HostUniversities)

	return insights
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
