package coursematching

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/submission"
)

type Service struct {
	repo submission.Repository
}

func NewService(repo submission.Repository) *Service {
	return &Service{repo: repo}
}

// Experiences lists all course-matching experiences with overall stats.
// Staff callers also see records that have not been approved yet.
func (svc *Service) Experiences(includeUnapproved bool) ([]Experience, Stats, error) {
	subs, err := svc.repo.FilterSubmissions(submission.QueryFilter{
		Types:       []string{submission.TypeCourseMatching},
		VisibleOnly: !includeUnapproved,
	})
	if err != nil {
		return nil, Stats{}, errors.Wrap(err, "filtering course-matching submissions")
	}

	exps := make([]Experience, 0, len(subs))
	for _, sub := range subs {
		exps = append(exps, New(sub))
	}
	return exps, BuildStats(exps), nil
}

// DestinationInsights summarizes the course-matching experiences of one
// destination city (optionally narrowed by country).
func (svc *Service) DestinationInsights(city, country string) (Insights, error) {
	city = core.CleanString(city)
	country = core.CleanString(country)
	if city == "" {
		return Insights{}, core.NewValidationError(errors.New("a destination city is required"))
	}

	subs, err := svc.repo.FilterSubmissions(submission.QueryFilter{
		Types:       []string{submission.TypeCourseMatching},
		VisibleOnly: true,
	})
	if err != nil {
		return Insights{}, errors.Wrap(err, "filtering course-matching submissions")
	}

	matches := make([]Experience, 0, len(subs))
	for _, sub := range subs {
		exp := New(sub)
		if !strings.EqualFold(exp.City, city) {
			continue
		}
		if country != "" && !strings.EqualFold(exp.Country, country) {
			continue
		}
		matches = append(matches, exp)
	}
	if len(matches) == 0 {
		return Insights{}, core.NewNotFoundError("no course-matching data for this destination")
	}

	return BuildInsights(city, country, matches), nil
}
