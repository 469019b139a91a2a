package accommodation

import (
	"fmt"

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

// Compare resolves 2-4 accommodation ids and produces the comparison view.
// The id count is validated on the supplied list; unknown ids are dropped
// and the comparison proceeds as long as at least two records resolve.
func (svc *Service) Compare(ids []string) (ComparisonResult, error) {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = core.CleanString(id); id != "" {
			cleaned = append(cleaned, id)
		}
	}
	if len(cleaned) < MinCompare || len(cleaned) > MaxCompare {
		return ComparisonResult{}, core.NewValidationError(
			fmt.Errorf("between %d and %d accommodation ids are required", MinCompare, MaxCompare),
			core.FieldError{Field: "ids", Error: fmt.Sprintf("got %d ids", len(cleaned))},
		)
	}

	subs, err := svc.repo.GetSubmissionsByID(cleaned...)
	if err != nil {
		return ComparisonResult{}, errors.Wrap(err, "fetching submissions by id")
	}

	records := make([]Accommodation, 0, len(subs))
	for _, sub := range subs {
		if sub.Type != submission.TypeAccommodation || !sub.IsVisible() {
			continue
		}
		acc := New(sub)
		ExtractAmenities(&acc)
		records = append(records, acc)
	}
	if len(records) < MinCompare {
		return ComparisonResult{}, core.NewNotFoundError("no matching accommodations found")
	}

	return Compare(records), nil
}
